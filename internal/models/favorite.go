package models

import (
	"encoding/json"
	"strconv"
)

// FavoriteSet is the set of attraction IDs the current user has marked
// favorite. It is fetched fresh for every listing render and never cached.
type FavoriteSet map[int]struct{}

// NewFavoriteSet builds a set from the given IDs.
func NewFavoriteSet(ids ...int) FavoriteSet {
	s := make(FavoriteSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s FavoriteSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set.
func (s FavoriteSet) Add(id int) {
	s[id] = struct{}{}
}

// Remove deletes id from the set.
func (s FavoriteSet) Remove(id int) {
	delete(s, id)
}

// Toggle flips membership of id and reports the new state.
func (s FavoriteSet) Toggle(id int) bool {
	if s.Has(id) {
		s.Remove(id)
		return false
	}
	s.Add(id)
	return true
}

// IDs returns the members of the set in unspecified order.
func (s FavoriteSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

// favoriteIDKeys lists the object keys a favorites entry may carry its
// attraction ID under, in precedence order.
var favoriteIDKeys = []string{"id", "attraction_id", "attractionId"}

// ParseFavoriteSet normalizes a favorites response body into a FavoriteSet.
// The data array may contain bare integer IDs or attraction-like objects
// keyed by one of favoriteIDKeys. Malformed entries are skipped; anything
// that is not an array yields an empty set. It never returns an error.
func ParseFavoriteSet(data json.RawMessage) FavoriteSet {
	set := make(FavoriteSet)
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return set
	}
	for _, entry := range entries {
		if id, ok := parseFavoriteID(entry); ok {
			set.Add(id)
		}
	}
	return set
}

// parseFavoriteID extracts an attraction ID from one favorites entry.
func parseFavoriteID(entry json.RawMessage) (int, bool) {
	var id int
	if err := json.Unmarshal(entry, &id); err == nil {
		return id, true
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(entry, &obj); err != nil {
		return 0, false
	}
	for _, key := range favoriteIDKeys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &id); err == nil {
			return id, true
		}
		// Some responses carry the ID as a numeric string.
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if parsed, err := strconv.Atoi(s); err == nil {
				return parsed, true
			}
		}
	}
	return 0, false
}
