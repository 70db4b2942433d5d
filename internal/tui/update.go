package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taipei-trip/trip-cli/internal/feed"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case pageResultMsg:
		return m.handlePageResult(msg)

	case mrtsResultMsg:
		m.mrtErr = msg.err
		if msg.err == nil {
			m.mrts = msg.stations
		}
		return m, nil

	case favoritesResultMsg:
		m.favorites = msg.set
		return m, nil

	case favoriteToggleMsg:
		if msg.err != nil {
			// The marker keeps its optimistic state; only surface the miss.
			m.statusMsg = "favorite not saved: " + msg.err.Error()
		}
		return m, nil

	case detailResultMsg:
		return m.handleDetailResult(msg)

	case authResultMsg:
		return m.handleAuthResult(msg)

	case registerResultMsg:
		m.auth.busy = false
		if msg.err != nil {
			m.auth.err = msg.err
			return m, nil
		}
		m.auth.mode = authSignIn
		m.auth.notice = "Account created, sign in"
		m.auth.focusField(0)
		return m, nil

	case bookingSavedMsg:
		return m.handleBookingSaved(msg)

	case bookingResultMsg:
		m.bookingErr = msg.err
		if msg.err == nil {
			m.pendingBooking = msg.booking
		}
		return m, nil

	case memberResultMsg:
		m.memberLoading = false
		m.memberErr = msg.err
		if msg.err == nil {
			m.member = msg.member
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Pass remaining messages to the focused textinput
	switch m.focus {
	case focusSearch:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	case focusAuth:
		fields := m.auth.fields()
		var cmd tea.Cmd
		*fields[m.auth.cursor], cmd = fields[m.auth.cursor].Update(msg)
		return m, cmd
	case focusBooking:
		if m.booking.field == bookingFieldDate {
			var cmd tea.Cmd
			m.booking.date, cmd = m.booking.date.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) handlePageResult(msg pageResultMsg) (tea.Model, tea.Cmd) {
	switch m.feed.Apply(msg.result) {
	case feed.OutcomeStale:
		// A response from an abandoned mode; nothing to render.
		return m, nil

	case feed.OutcomeError:
		m.statusMsg = "load failed: " + m.feed.Err().Error() + " (scroll or press r to retry)"
		return m, nil

	case feed.OutcomeExhausted:
		return m, nil
	}

	// Appended. Clamp the cursor into the grown list and keep filling the
	// lookahead band if the user is already parked near the sentinel. The
	// favorites snapshot is refetched with every rendered page so the heart
	// markers track the server, not the state at startup.
	if m.listCursor >= len(m.feed.Records()) {
		m.listCursor = len(m.feed.Records()) - 1
	}
	m.statusMsg = ""
	return m, tea.Batch(m.maybeFetchMore(), fetchFavorites(m.client))
}

func (m Model) handleDetailResult(msg detailResultMsg) (tea.Model, tea.Cmd) {
	// Ignore if the user already opened a different attraction
	if msg.id != m.detailID {
		return m, nil
	}
	m.detailLoading = false
	m.detailErr = msg.err
	if msg.err == nil {
		m.detail = msg.attraction
		m.imageIndex = 0
	}
	return m, nil
}

func (m Model) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	m.auth.busy = false
	if msg.err != nil {
		m.auth.err = msg.err
		return m, nil
	}

	m.client.SetToken(msg.token)
	if m.store != nil {
		_ = m.store.SetToken(msg.token)
	}
	m.statusMsg = "Signed in"
	m.focus = m.afterAuth
	m.afterAuth = focusList

	cmds := []tea.Cmd{fetchFavorites(m.client)}
	if m.focus == focusBooking {
		cmds = append(cmds, fetchBooking(m.client), textinput.Blink)
	}
	if m.focus == focusMember {
		m.memberLoading = true
		cmds = append(cmds, fetchMember(m.client), fetchBooking(m.client))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleBookingSaved(msg bookingSavedMsg) (tea.Model, tea.Cmd) {
	m.booking.busy = false
	if msg.err != nil {
		if msg.deleted {
			m.bookingErr = msg.err
		} else {
			m.booking.err = msg.err
		}
		return m, nil
	}

	if msg.deleted {
		m.pendingBooking = nil
		m.statusMsg = "Booking removed"
		return m, nil
	}

	if m.store != nil {
		_ = m.store.SetPendingBooking(nil)
	}
	m.statusMsg = "Booking saved"
	m.focus = focusList
	return m, fetchBooking(m.client)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKeys(msg)
	case focusMRT:
		return m.handleMRTKeys(msg)
	case focusList:
		return m.handleListKeys(msg)
	case focusDetail:
		return m.handleDetailKeys(msg)
	case focusAuth:
		return m.handleAuthKeys(msg)
	case focusBooking:
		return m.handleBookingKeys(msg)
	case focusMember:
		return m.handleMemberKeys(msg)
	}

	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// An empty box is a reset back to browsing, not a no-op.
		return m.runSearch(m.searchInput.Value())

	case "esc":
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			return m, nil
		}
		m.focus = focusList
		m.searchInput.Blur()
		return m, nil

	case "tab":
		m.focus = focusMRT
		m.searchInput.Blur()
		return m, nil

	case "shift+tab":
		m.focus = focusList
		m.searchInput.Blur()
		return m, nil
	}

	// Forward to textinput
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// runSearch switches the feed's mode and starts the first page of the new
// generation. A fetch still in flight for the old mode keeps its old epoch
// and will be dropped on arrival.
func (m Model) runSearch(keyword string) (tea.Model, tea.Cmd) {
	plan := m.feed.SetMode(keyword)
	m.listCursor = 0
	m.detail = nil
	m.statusMsg = ""
	m.focus = focusList
	m.searchInput.Blur()
	return m, tea.Batch(fetchPage(m.client, plan), fetchFavorites(m.client))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	records := m.feed.Records()

	// Clamp before navigating; the list may have been swapped under us.
	if len(records) > 0 {
		if m.listCursor < 0 {
			m.listCursor = 0
		}
		if m.listCursor >= len(records) {
			m.listCursor = len(records) - 1
		}
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/", "esc":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case "tab":
		m.focus = focusMRT
		return m, nil

	case "shift+tab":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case "j", "down":
		if m.listCursor < len(records)-1 {
			m.listCursor++
		}
		return m, m.maybeFetchMore()

	case "k", "up":
		if m.listCursor > 0 {
			m.listCursor--
		}
		return m, nil

	case "pgdown":
		if len(records) > 0 {
			pageSize := m.height - 10
			if pageSize < 1 {
				pageSize = 10
			}
			m.listCursor += pageSize
			if m.listCursor >= len(records) {
				m.listCursor = len(records) - 1
			}
		}
		return m, m.maybeFetchMore()

	case "pgup":
		if len(records) > 0 {
			pageSize := m.height - 10
			if pageSize < 1 {
				pageSize = 10
			}
			m.listCursor -= pageSize
			if m.listCursor < 0 {
				m.listCursor = 0
			}
		}
		return m, nil

	case "home":
		m.listCursor = 0
		return m, nil

	case "end":
		if len(records) > 0 {
			m.listCursor = len(records) - 1
		}
		return m, m.maybeFetchMore()

	case "r":
		// Manual retry after a failed page fetch
		if plan, ok := m.feed.TriggerFetch(); ok {
			m.statusMsg = ""
			return m, fetchPage(m.client, plan)
		}
		return m, nil

	case "f":
		if len(records) > 0 {
			return m.toggleFavorite(records[m.listCursor].ID)
		}
		return m, nil

	case "m":
		return m.openMember()

	case "enter":
		if len(records) > 0 {
			return m.openDetail(records[m.listCursor].ID)
		}
	}

	return m, nil
}

func (m Model) openDetail(id int) (tea.Model, tea.Cmd) {
	m.focus = focusDetail
	m.detailID = id
	m.detail = nil
	m.detailErr = nil
	m.detailLoading = true
	m.imageIndex = 0
	return m, fetchDetail(m.client, id)
}

// toggleFavorite flips the heart immediately and fires the write without
// waiting for it. A guest is diverted to the auth dialog instead.
func (m Model) toggleFavorite(id int) (tea.Model, tea.Cmd) {
	if !m.client.Authenticated() {
		m.afterAuth = m.focus
		m.focus = focusAuth
		m.auth = newAuthForm()
		return m, textinput.Blink
	}

	added := m.favorites.Toggle(id)
	return m, sendFavoriteToggle(m.client, id, added)
}

func (m Model) openMember() (tea.Model, tea.Cmd) {
	if !m.client.Authenticated() {
		m.afterAuth = focusMember
		m.focus = focusAuth
		m.auth = newAuthForm()
		return m, textinput.Blink
	}

	m.focus = focusMember
	m.memberLoading = true
	m.memberErr = nil
	return m, tea.Batch(fetchMember(m.client), fetchBooking(m.client))
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc", "backspace":
		m.focus = focusList
		m.detail = nil
		return m, nil

	case "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case "h", "left":
		if m.detail != nil && len(m.detail.Images) > 0 {
			m.imageIndex = (m.imageIndex - 1 + len(m.detail.Images)) % len(m.detail.Images)
		}
		return m, nil

	case "l", "right":
		if m.detail != nil && len(m.detail.Images) > 0 {
			m.imageIndex = (m.imageIndex + 1) % len(m.detail.Images)
		}
		return m, nil

	case "f":
		if m.detail != nil {
			return m.toggleFavorite(m.detail.ID)
		}
		return m, nil

	case "b":
		if m.detail == nil {
			return m, nil
		}
		if !m.client.Authenticated() {
			m.afterAuth = focusBooking
			m.booking = newBookingForm(m.detail.ID, m.detail.Name)
			m.focus = focusAuth
			m.auth = newAuthForm()
			return m, textinput.Blink
		}
		m.booking = newBookingForm(m.detail.ID, m.detail.Name)
		m.focus = focusBooking
		return m, tea.Batch(fetchBooking(m.client), textinput.Blink)
	}

	return m, nil
}

func (m Model) handleMemberKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc", "tab":
		m.focus = focusList
		return m, nil

	case "d":
		if m.pendingBooking != nil {
			return m, removeBooking(m.client)
		}
		return m, nil

	case "g":
		m.memberLoading = true
		return m, tea.Batch(fetchMember(m.client), fetchBooking(m.client))
	}

	return m, nil
}
