package tui

import (
	"github.com/taipei-trip/trip-cli/internal/feed"
	"github.com/taipei-trip/trip-cli/internal/models"
)

// pageResultMsg carries one finished listing page fetch. The epoch inside
// the result lets the controller discard responses from an abandoned mode.
type pageResultMsg struct {
	result feed.Result
}

// mrtsResultMsg carries the MRT station names for the quick-filter bar.
type mrtsResultMsg struct {
	stations []string
	err      error
}

// favoritesResultMsg carries the favorites snapshot. It never carries an
// error: failures degrade to an empty set.
type favoritesResultMsg struct {
	set models.FavoriteSet
}

// favoriteToggleMsg reports the server outcome of a favorite toggle. The
// local set was already flipped when the request went out and is not
// rolled back on failure.
type favoriteToggleMsg struct {
	id    int
	added bool
	err   error
}

// detailResultMsg carries one attraction's detail fetch.
type detailResultMsg struct {
	id         int
	attraction *models.Attraction
	err        error
}

// authResultMsg carries a finished sign-in attempt.
type authResultMsg struct {
	token string
	err   error
}

// registerResultMsg carries a finished sign-up attempt.
type registerResultMsg struct {
	err error
}

// bookingSavedMsg reports a booking create or delete.
type bookingSavedMsg struct {
	deleted bool
	err     error
}

// bookingResultMsg carries the pending booking, nil when none exists.
type bookingResultMsg struct {
	booking *models.Booking
	err     error
}

// memberResultMsg carries the member dashboard payload.
type memberResultMsg struct {
	member *models.Member
	err    error
}
