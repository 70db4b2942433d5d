package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/taipei-trip/trip-cli/internal/api"
	"github.com/taipei-trip/trip-cli/internal/feed"
	"github.com/taipei-trip/trip-cli/internal/models"
	"github.com/taipei-trip/trip-cli/internal/testutil"
)

func TestScroll_LookaheadArmsNextFetch(t *testing.T) {
	m := newTestModel()
	seedPage(&m, 12, 1)

	// Walk the cursor down until it enters the lookahead band
	var cmd tea.Cmd
	for i := 0; i < 12-lookaheadRows; i++ {
		newModel, c := m.Update(keyRune('j'))
		m = newModel.(Model)
		cmd = c
	}

	testutil.AssertEqual(t, m.listCursor, 12-lookaheadRows)
	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertTrue(t, m.feed.InFlight())
}

func TestScroll_TriggerDroppedWhileInFlight(t *testing.T) {
	m := newTestModel()
	seedPage(&m, 12, 1)

	// First trigger arms the fetch
	m.listCursor = 10
	newModel, cmd := m.Update(keyRune('j'))
	m = newModel.(Model)
	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertTrue(t, m.feed.InFlight())

	// Further scrolling while in flight produces no second fetch
	newModel, cmd = m.Update(keyRune('j'))
	m = newModel.(Model)
	testutil.AssertTrue(t, cmd == nil)
}

func TestScroll_NoFetchAfterExhaustion(t *testing.T) {
	m := newTestModel()
	seedPage(&m, 6, 1)

	// Server signals the end with an empty page
	plan, _ := m.feed.TriggerFetch()
	m.feed.Apply(feed.Result{Epoch: plan.Epoch})
	testutil.AssertTrue(t, m.feed.Exhausted())

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = newModel.(Model)

	testutil.AssertTrue(t, cmd == nil)
	testutil.AssertFalse(t, m.feed.InFlight())
}

func TestScroll_UpNeverTriggers(t *testing.T) {
	m := newTestModel()
	seedPage(&m, 12, 1)
	m.listCursor = 11

	newModel, cmd := m.Update(keyRune('k'))
	m = newModel.(Model)

	testutil.AssertEqual(t, m.listCursor, 10)
	testutil.AssertTrue(t, cmd == nil)
}

func TestRetryKey_RearmsAfterError(t *testing.T) {
	m := newTestModel()
	seedPage(&m, 6, 1)

	plan, _ := m.feed.TriggerFetch()
	m.feed.Apply(feed.Result{Epoch: plan.Epoch, Err: api.ErrTimeout})
	testutil.AssertError(t, m.feed.Err())

	newModel, cmd := m.Update(keyRune('r'))
	m = newModel.(Model)

	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertTrue(t, m.feed.InFlight())
	// The failed page is retried at the same cursor
	testutil.AssertEqual(t, m.feed.Cursor(), 1)
}

func TestSearch_SwitchesModeAndClearsList(t *testing.T) {
	m := newTestModel()
	seedPage(&m, 12, 1)
	seedPage(&m, 12, 2)
	m.listCursor = 20

	m.focus = focusSearch
	m.searchInput.Focus()
	m.searchInput.SetValue("公園")

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	testutil.AssertEqual(t, m.feed.Mode().Keyword, "公園")
	testutil.AssertLen(t, m.feed.Records(), 0)
	testutil.AssertEqual(t, m.listCursor, 0)
	testutil.AssertEqual(t, m.focus, focusList)
	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertTrue(t, m.feed.InFlight())
}

func TestSearch_RefreshesFavorites(t *testing.T) {
	server := testutil.NewJSONServer(`{"nextPage": null, "data": []}`)
	defer server.Close()

	client, _ := api.NewClient(api.WithBaseURL(server.URL))
	m := New(client, nil)
	m.width = 100
	m.height = 40

	m.focus = focusSearch
	m.searchInput.Focus()
	m.searchInput.SetValue("公園")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// The new generation's first page goes out together with a fresh
	// favorites snapshot
	var sawFavorites, sawPage bool
	for _, produced := range collectMsgs(cmd) {
		switch produced.(type) {
		case favoritesResultMsg:
			sawFavorites = true
		case pageResultMsg:
			sawPage = true
		}
	}
	testutil.AssertTrue(t, sawFavorites)
	testutil.AssertTrue(t, sawPage)
}

func TestSearch_EmptyKeywordResetsToBrowse(t *testing.T) {
	m := newTestModel()
	m.feed.SetMode("公園")

	m.focus = focusSearch
	m.searchInput.Focus()
	m.searchInput.SetValue("   ")

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	testutil.AssertTrue(t, m.feed.Mode().Browsing())
	testutil.AssertTrue(t, cmd != nil)
}

func TestSearch_StaleBrowseResponseDropped(t *testing.T) {
	m := newTestModel()

	// Browse page 0 goes out
	plan, _ := m.feed.TriggerFetch()

	// User searches mid-flight
	m.focus = focusSearch
	m.searchInput.Focus()
	m.searchInput.SetValue("夜市")
	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	// The browse response lands late and is discarded
	newModel, _ = m.Update(pageResultMsg{result: feed.Result{
		Epoch:       plan.Epoch,
		Attractions: []models.Attraction{{ID: 1, Name: "平安鐘"}},
	}})
	m = newModel.(Model)
	testutil.AssertLen(t, m.feed.Records(), 0)

	// The keyword response lands and renders
	next := 1
	newModel, _ = m.Update(pageResultMsg{result: feed.Result{
		Epoch:       m.feed.Epoch(),
		Attractions: []models.Attraction{{ID: 9, Name: "士林夜市"}},
		NextPage:    &next,
	}})
	m = newModel.(Model)

	testutil.AssertLen(t, m.feed.Records(), 1)
	testutil.AssertEqual(t, m.feed.Records()[0].Name, "士林夜市")
}

func TestFavoriteKey_GuestOpensAuthDialog(t *testing.T) {
	m := newTestModel()
	seedPage(&m, 3, 1)

	newModel, _ := m.Update(keyRune('f'))
	m = newModel.(Model)

	testutil.AssertEqual(t, m.focus, focusAuth)
	testutil.AssertEqual(t, m.afterAuth, focusList)
	testutil.AssertLen(t, m.favorites.IDs(), 0)
}

func TestFavoriteKey_OptimisticToggle(t *testing.T) {
	m := newTestModel()
	m.client.SetToken("jwt")
	seedPage(&m, 3, 1)
	m.listCursor = 1

	newModel, cmd := m.Update(keyRune('f'))
	m = newModel.(Model)

	// The heart flips before the server answers
	id := m.feed.Records()[1].ID
	testutil.AssertTrue(t, m.favorites.Has(id))
	testutil.AssertTrue(t, cmd != nil)

	// A second press flips it back
	newModel, cmd = m.Update(keyRune('f'))
	m = newModel.(Model)
	testutil.AssertFalse(t, m.favorites.Has(id))
	testutil.AssertTrue(t, cmd != nil)
}

func TestEnterOpensDetail(t *testing.T) {
	m := newTestModel()
	seedPage(&m, 3, 1)
	m.listCursor = 2

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	testutil.AssertEqual(t, m.focus, focusDetail)
	testutil.AssertEqual(t, m.detailID, m.feed.Records()[2].ID)
	testutil.AssertTrue(t, m.detailLoading)
	testutil.AssertTrue(t, cmd != nil)
}

func TestMemberKey_GuestOpensAuthDialog(t *testing.T) {
	m := newTestModel()
	seedPage(&m, 3, 1)

	newModel, _ := m.Update(keyRune('m'))
	m = newModel.(Model)

	testutil.AssertEqual(t, m.focus, focusAuth)
	testutil.AssertEqual(t, m.afterAuth, focusMember)
}
