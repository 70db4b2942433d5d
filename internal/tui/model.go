package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taipei-trip/trip-cli/internal/api"
	"github.com/taipei-trip/trip-cli/internal/feed"
	"github.com/taipei-trip/trip-cli/internal/models"
	"github.com/taipei-trip/trip-cli/internal/session"
)

type focusPanel int

const (
	focusSearch focusPanel = iota
	focusMRT
	focusList
	focusDetail
	focusAuth
	focusBooking
	focusMember
)

// lookaheadRows is how many cards above the trailing sentinel a fetch is
// already armed, so scrolling rarely lands on a visible wait.
const lookaheadRows = 4

// loadingCardCount is how many placeholder cards are shown while a page
// fetch is outstanding.
const loadingCardCount = 3

// Model is the root Bubble Tea model for the TUI.
type Model struct {
	client *api.Client
	store  *session.Store
	width  int
	height int

	searchInput textinput.Model
	focus       focusPanel

	// Card list - driven by the feed controller
	feed       *feed.Controller
	listCursor int

	// MRT quick-filter bar
	mrts      []string
	mrtCursor int
	mrtErr    error

	// Favorites
	favorites models.FavoriteSet

	// Transient status line
	statusMsg string

	// Detail panel
	detailID      int
	detail        *models.Attraction
	detailLoading bool
	detailErr     error
	imageIndex    int

	// Auth panel
	auth authForm
	// Panel to open once sign-in succeeds
	afterAuth focusPanel

	// Booking panel
	booking        bookingForm
	pendingBooking *models.Booking
	bookingErr     error

	// Member panel
	member        *models.Member
	memberLoading bool
	memberErr     error
}

// New creates a new TUI model.
func New(client *api.Client, store *session.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "Search attractions..."
	ti.CharLimit = 30
	ti.Width = 40

	return Model{
		client:    client,
		store:     store,
		feed:      feed.NewController(),
		favorites: models.FavoriteSet{},

		searchInput: ti,
		focus:       focusList,
		afterAuth:   focusList,
	}
}

// Init loads the first listing page, the MRT bar, and the favorites
// snapshot.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		fetchMRTs(m.client),
		fetchFavorites(m.client),
	}
	if plan, ok := m.feed.TriggerFetch(); ok {
		cmds = append(cmds, fetchPage(m.client, plan))
	}
	return tea.Batch(cmds...)
}

// maybeFetchMore arms the next page fetch once the cursor moves into the
// lookahead band above the sentinel. The controller drops the trigger when
// a fetch is already in flight or the mode is exhausted.
func (m Model) maybeFetchMore() tea.Cmd {
	records := m.feed.Records()
	if m.listCursor < len(records)-lookaheadRows {
		return nil
	}
	if plan, ok := m.feed.TriggerFetch(); ok {
		return fetchPage(m.client, plan)
	}
	return nil
}
