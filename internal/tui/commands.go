package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/taipei-trip/trip-cli/internal/api"
	"github.com/taipei-trip/trip-cli/internal/feed"
	"github.com/taipei-trip/trip-cli/internal/models"
)

const apiTimeout = 10 * time.Second

// fetchPage returns a tea.Cmd that executes one fetch plan. The plan's
// epoch rides along so the controller can tell a live result from a stale
// one.
func fetchPage(client *api.Client, plan feed.Plan) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		page, err := client.ListAttractions(ctx, api.PageRequest{
			Page:    plan.Page,
			Keyword: plan.Keyword,
		})
		res := feed.Result{Epoch: plan.Epoch, Err: err}
		if err == nil {
			res.Attractions = page.Attractions
			res.NextPage = page.NextPage
		}
		return pageResultMsg{result: res}
	}
}

// fetchMRTs returns a tea.Cmd that loads the station quick-filter bar.
func fetchMRTs(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		stations, err := client.GetMRTs(ctx)
		return mrtsResultMsg{stations: stations, err: err}
	}
}

// fetchFavorites returns a tea.Cmd that loads the favorites snapshot.
func fetchFavorites(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		return favoritesResultMsg{set: client.FavoriteSnapshot(ctx)}
	}
}

// sendFavoriteToggle returns a tea.Cmd that persists an already-applied
// favorite flip. The marker stays flipped even when the request fails.
func sendFavoriteToggle(client *api.Client, id int, added bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		var err error
		if added {
			err = client.AddFavorite(ctx, id)
		} else {
			err = client.RemoveFavorite(ctx, id)
		}
		return favoriteToggleMsg{id: id, added: added, err: err}
	}
}

// fetchDetail returns a tea.Cmd that fetches one attraction's detail.
func fetchDetail(client *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		attraction, err := client.GetAttraction(ctx, id)
		return detailResultMsg{id: id, attraction: attraction, err: err}
	}
}

// submitLogin returns a tea.Cmd that exchanges credentials for a token.
func submitLogin(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		token, err := client.Login(ctx, email, password)
		return authResultMsg{token: token, err: err}
	}
}

// submitRegister returns a tea.Cmd that creates an account.
func submitRegister(client *api.Client, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		return registerResultMsg{err: client.Register(ctx, name, email, password)}
	}
}

// saveBooking returns a tea.Cmd that creates or replaces the pending booking.
func saveBooking(client *api.Client, req models.BookingRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		return bookingSavedMsg{err: client.CreateBooking(ctx, req)}
	}
}

// fetchBooking returns a tea.Cmd that loads the pending booking.
func fetchBooking(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		booking, err := client.GetBooking(ctx)
		return bookingResultMsg{booking: booking, err: err}
	}
}

// removeBooking returns a tea.Cmd that clears the pending booking.
func removeBooking(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		return bookingSavedMsg{deleted: true, err: client.DeleteBooking(ctx)}
	}
}

// fetchMember returns a tea.Cmd that loads the member dashboard.
func fetchMember(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		member, err := client.GetMember(ctx)
		return memberResultMsg{member: member, err: err}
	}
}
