package models

import (
	"encoding/json"
	"testing"
)

func TestNormalizeMRT(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain string", raw: `"劍潭"`, want: "劍潭"},
		{name: "array takes first", raw: `["圓山","劍潭"]`, want: "圓山"},
		{name: "array skips empty", raw: `["","劍潭"]`, want: "劍潭"},
		{name: "empty array", raw: `[]`, want: ""},
		{name: "null", raw: `null`, want: ""},
		{name: "absent", raw: ``, want: ""},
		{name: "garbage", raw: `42`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeMRT(json.RawMessage(tt.raw))
			if got != tt.want {
				t.Errorf("normalizeMRT(%s) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAttractionResponse_ToAttraction(t *testing.T) {
	resp := AttractionResponse{
		ID:       10,
		Name:     "平安鐘",
		Category: "公共藝術",
		Address:  "臺北市大安區忠孝東路",
		MRT:      json.RawMessage(`"忠孝復興"`),
		Images:   []string{"https://example.com/a.jpg", "https://example.com/b.jpg"},
	}

	a := resp.ToAttraction()
	if a.ID != 10 {
		t.Errorf("ID = %d, want 10", a.ID)
	}
	if a.MRT != "忠孝復興" {
		t.Errorf("MRT = %q, want 忠孝復興", a.MRT)
	}
	if a.CoverImage() != "https://example.com/a.jpg" {
		t.Errorf("CoverImage = %q", a.CoverImage())
	}
}

func TestAttraction_CoverImage_Placeholder(t *testing.T) {
	tests := []struct {
		name   string
		images []string
	}{
		{name: "nil images", images: nil},
		{name: "empty images", images: []string{}},
		{name: "blank first image", images: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Attraction{Images: tt.images}
			if got := a.CoverImage(); got != PlaceholderImage {
				t.Errorf("CoverImage = %q, want placeholder", got)
			}
		})
	}
}

func TestAttractionsResponse_ToPage(t *testing.T) {
	body := `{
		"nextPage": 1,
		"data": [
			{"id": 1, "name": "first", "mrt": "劍潭", "images": ["x.jpg"]},
			{"id": 2, "name": "second", "mrt": null}
		]
	}`

	var resp AttractionsResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	page := resp.ToPage()
	if len(page.Attractions) != 2 {
		t.Fatalf("got %d attractions, want 2", len(page.Attractions))
	}
	// Server order is preserved, never re-sorted.
	if page.Attractions[0].ID != 1 || page.Attractions[1].ID != 2 {
		t.Errorf("order = [%d %d], want [1 2]", page.Attractions[0].ID, page.Attractions[1].ID)
	}
	if page.NextPage == nil || *page.NextPage != 1 {
		t.Errorf("NextPage = %v, want 1", page.NextPage)
	}
	if page.Empty() {
		t.Error("page with records reported Empty")
	}
}

func TestAttractionsResponse_ToPage_Exhausted(t *testing.T) {
	var resp AttractionsResponse
	if err := json.Unmarshal([]byte(`{"nextPage": null, "data": []}`), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	page := resp.ToPage()
	if !page.Empty() {
		t.Error("empty data should report Empty")
	}
	if page.NextPage != nil {
		t.Errorf("NextPage = %v, want nil", page.NextPage)
	}
}
