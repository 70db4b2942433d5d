package models

import "encoding/json"

// Attraction represents a single tourist attraction from the listing or
// detail endpoints.
type Attraction struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Transport   string   `json:"transport"`
	MRT         string   `json:"mrt,omitempty"` // nearest station label, empty when none
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Images      []string `json:"images"`
}

// PlaceholderImage is shown when an attraction carries no image URLs.
const PlaceholderImage = "static/img/placeholder.jpg"

// NoStationLabel replaces a missing MRT label wherever a card or table
// row renders the nearest station.
const NoStationLabel = "no nearby station"

// CoverImage returns the first image URL or the placeholder path.
func (a Attraction) CoverImage() string {
	if len(a.Images) > 0 && a.Images[0] != "" {
		return a.Images[0]
	}
	return PlaceholderImage
}

// AttractionResponse represents one raw attraction entry. The server is
// inconsistent about the mrt field: depending on the endpoint it is a plain
// string, an array of station names, or null.
type AttractionResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Transport   string          `json:"transport"`
	MRT         json.RawMessage `json:"mrt"`
	Lat         float64         `json:"lat"`
	Lng         float64         `json:"lng"`
	Images      []string        `json:"images"`
}

// ToAttraction converts the raw response to an Attraction.
func (r *AttractionResponse) ToAttraction() *Attraction {
	a := &Attraction{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Address:     r.Address,
		Transport:   r.Transport,
		Lat:         r.Lat,
		Lng:         r.Lng,
		Images:      r.Images,
	}
	a.MRT = normalizeMRT(r.MRT)
	return a
}

// normalizeMRT accepts a string, an array of strings, or null and returns
// the first non-empty station label.
func normalizeMRT(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, entry := range list {
			if entry != "" {
				return entry
			}
		}
	}
	return ""
}

// AttractionsResponse represents the full listing response.
// An absent or empty data array signals exhaustion, not an error.
type AttractionsResponse struct {
	NextPage *int                 `json:"nextPage"`
	Data     []AttractionResponse `json:"data"`
}

// AttractionPage is one page of attractions together with the cursor for
// the next one. NextPage is nil when the server did not provide a cursor.
type AttractionPage struct {
	Attractions []Attraction `json:"attractions"`
	NextPage    *int         `json:"nextPage,omitempty"`
}

// ToPage converts the raw listing response into a page of attractions,
// preserving server order.
func (r *AttractionsResponse) ToPage() *AttractionPage {
	page := &AttractionPage{
		Attractions: make([]Attraction, 0, len(r.Data)),
		NextPage:    r.NextPage,
	}
	for i := range r.Data {
		page.Attractions = append(page.Attractions, *r.Data[i].ToAttraction())
	}
	return page
}

// Empty reports whether the page carries no records.
func (p *AttractionPage) Empty() bool {
	return len(p.Attractions) == 0
}
