package models

import (
	"encoding/json"
	"sort"
	"testing"
)

func TestParseFavoriteSet(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []int
	}{
		{name: "bare ids", body: `[1,2]`, want: []int{1, 2}},
		{name: "mixed object keys", body: `[{"id":1},{"attraction_id":2}]`, want: []int{1, 2}},
		{name: "camelCase key", body: `[{"attractionId":3}]`, want: []int{3}},
		{name: "numeric string id", body: `[{"id":"7"}]`, want: []int{7}},
		{name: "bare and object mixed", body: `[4,{"id":5}]`, want: []int{4, 5}},
		{name: "malformed entry skipped", body: `[1,{"name":"no id"},"x",2]`, want: []int{1, 2}},
		{name: "not an array", body: `{"id":1}`, want: nil},
		{name: "garbage", body: `"nope"`, want: nil},
		{name: "empty array", body: `[]`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := ParseFavoriteSet(json.RawMessage(tt.body))
			got := set.IDs()
			sort.Ints(got)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestFavoriteSet_Toggle(t *testing.T) {
	set := NewFavoriteSet(1)

	if on := set.Toggle(1); on {
		t.Error("toggling a member should report inactive")
	}
	if set.Has(1) {
		t.Error("1 should have been removed")
	}

	if on := set.Toggle(2); !on {
		t.Error("toggling a non-member should report active")
	}
	if !set.Has(2) {
		t.Error("2 should have been added")
	}
}
