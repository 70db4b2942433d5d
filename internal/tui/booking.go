package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taipei-trip/trip-cli/internal/api"
	"github.com/taipei-trip/trip-cli/internal/models"
)

// bookingTimes exposes the server's accepted half-day slots.
func bookingTimes() []string {
	return api.BookingTimes
}

// Half-day tour prices in TWD.
const (
	priceMorning   = 2000
	priceAfternoon = 2500
)

var errPastDate = errors.New("date must be today or later")

type bookingField int

const (
	bookingFieldDate bookingField = iota
	bookingFieldTime
	bookingFieldConfirm
)

// bookingForm picks a date and a half-day slot for the attraction open in
// the detail panel.
type bookingForm struct {
	attractionID   int
	attractionName string
	date           textinput.Model
	timeCursor     int // index into api.BookingTimes
	field          bookingField
	busy           bool
	err            error
}

func newBookingForm(id int, name string) bookingForm {
	date := textinput.New()
	date.Placeholder = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	date.CharLimit = 10
	date.Width = 12
	date.Focus()

	return bookingForm{attractionID: id, attractionName: name, date: date}
}

func (f bookingForm) price() int {
	if f.timeCursor == 0 {
		return priceMorning
	}
	return priceAfternoon
}

// request validates the form and builds the booking request.
func (f bookingForm) request() (models.BookingRequest, error) {
	raw := strings.TrimSpace(f.date.Value())
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return models.BookingRequest{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)
	}
	today := time.Now().Format("2006-01-02")
	if day.Format("2006-01-02") < today {
		return models.BookingRequest{}, errPastDate
	}

	return models.BookingRequest{
		AttractionID: f.attractionID,
		Date:         day.Format("2006-01-02"),
		Time:         bookingTimes()[f.timeCursor],
		Price:        f.price(),
	}, nil
}

// handleBookingKeys handles key events while the booking panel is open.
func (m Model) handleBookingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusDetail
		return m, nil

	case "tab", "down":
		m.booking.field = nextBookingField(m.booking.field, 1)
		m.syncBookingFocus()
		return m, textinput.Blink

	case "shift+tab", "up":
		m.booking.field = nextBookingField(m.booking.field, -1)
		m.syncBookingFocus()
		return m, textinput.Blink

	case "left", "h":
		if m.booking.field == bookingFieldTime && m.booking.timeCursor > 0 {
			m.booking.timeCursor--
		}
		if m.booking.field != bookingFieldDate {
			return m, nil
		}

	case "right", "l":
		if m.booking.field == bookingFieldTime && m.booking.timeCursor < len(bookingTimes())-1 {
			m.booking.timeCursor++
		}
		if m.booking.field != bookingFieldDate {
			return m, nil
		}

	case " ":
		if m.booking.field == bookingFieldTime {
			m.booking.timeCursor = (m.booking.timeCursor + 1) % len(bookingTimes())
			return m, nil
		}

	case "enter":
		if m.booking.field != bookingFieldConfirm {
			m.booking.field = nextBookingField(m.booking.field, 1)
			m.syncBookingFocus()
			return m, textinput.Blink
		}
		return m.submitBooking()
	}

	if m.booking.field == bookingFieldDate {
		var cmd tea.Cmd
		m.booking.date, cmd = m.booking.date.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) syncBookingFocus() {
	if m.booking.field == bookingFieldDate {
		m.booking.date.Focus()
	} else {
		m.booking.date.Blur()
	}
}

func (m Model) submitBooking() (tea.Model, tea.Cmd) {
	if m.booking.busy {
		return m, nil
	}

	req, err := m.booking.request()
	if err != nil {
		m.booking.err = err
		return m, nil
	}

	m.booking.busy = true
	m.booking.err = nil
	return m, saveBooking(m.client, req)
}

func nextBookingField(f bookingField, delta int) bookingField {
	next := int(f) + delta
	if next < int(bookingFieldDate) {
		return bookingFieldDate
	}
	if next > int(bookingFieldConfirm) {
		return bookingFieldConfirm
	}
	return bookingField(next)
}

// renderBooking renders the booking panel.
func (m Model) renderBooking(width int) string {
	f := m.booking

	var b strings.Builder
	b.WriteString(styleHeader.Render("BOOK A TOUR"))
	b.WriteString("\n")
	b.WriteString(styleName.Render(" " + f.attractionName))
	b.WriteString("\n\n")

	b.WriteString(" Date: " + f.date.View() + "\n\n")

	b.WriteString(" Time: ")
	for i, slot := range bookingTimes() {
		label := slot
		active := i == f.timeCursor
		focused := f.field == bookingFieldTime && active
		b.WriteString(renderChip(label, active, focused))
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	b.WriteString(" Price: " + stylePrice.Render(fmt.Sprintf("TWD %d", f.price())))
	b.WriteString("\n\n")

	confirm := " Confirm "
	if f.field == bookingFieldConfirm {
		b.WriteString(" " + styleChipCursor.Render(confirm))
	} else {
		b.WriteString(" " + styleMuted.Render("["+strings.TrimSpace(confirm)+"]"))
	}
	b.WriteString("\n\n")

	switch {
	case f.busy:
		b.WriteString(styleLoading.Render(" Saving booking..."))
	case f.err != nil:
		b.WriteString(styleError.Render(" " + f.err.Error()))
	case m.pendingBooking != nil:
		b.WriteString(styleMuted.Render(" Replaces your current pending booking"))
	}

	return b.String()
}
