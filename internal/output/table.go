package output

import (
	"fmt"
	"io"

	"github.com/taipei-trip/trip-cli/internal/models"
)

// TableOptions configures the table output
type TableOptions struct {
	Colors      *Colors
	ShowAddress bool
	Favorites   models.FavoriteSet
}

// RenderAttractions renders a listing page as a formatted table
func RenderAttractions(w io.Writer, attractions []models.Attraction, opts TableOptions) {
	if len(attractions) == 0 {
		_, _ = fmt.Fprintln(w, "No attractions found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	for _, a := range attractions {
		// Favorite marker (fixed 2-char width)
		marker := "  "
		if opts.Favorites.Has(a.ID) {
			marker = c.Favorite("♥ ")
		}

		// ID (right-aligned, 4 chars)
		idStr := fmt.Sprintf("%4d", a.ID)

		// MRT station (pad to 8 runes; CJK names stay short, the fallback
		// label runs long)
		mrt := a.MRT
		if mrt == "" {
			mrt = models.NoStationLabel
		}
		mrtStr := fmt.Sprintf("%-8s", mrt)

		// Format the line: ID MARK NAME  MRT  CATEGORY
		_, _ = fmt.Fprintf(w, "%s %s%s  %s  %s\n",
			c.Muted(idStr),
			marker,
			c.Name(a.Name),
			c.MRT(mrtStr),
			c.Category(a.Category),
		)

		if opts.ShowAddress && a.Address != "" {
			_, _ = fmt.Fprintf(w, "        %s\n", c.Muted(a.Address))
		}
	}
}

// RenderAttractionDetail renders one attraction with its full fields
func RenderAttractionDetail(w io.Writer, a *models.Attraction, opts TableOptions) {
	if a == nil {
		_, _ = fmt.Fprintln(w, "No attraction data found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", c.Header(fmt.Sprintf("#%d", a.ID)), c.Name(a.Name))
	_, _ = fmt.Fprintf(w, "%s %s", c.Muted("Category:"), c.Category(a.Category))
	if a.MRT != "" {
		_, _ = fmt.Fprintf(w, "   %s %s", c.Muted("MRT:"), c.MRT(a.MRT))
	} else {
		_, _ = fmt.Fprintf(w, "   %s %s", c.Muted("MRT:"), c.Muted(models.NoStationLabel))
	}
	_, _ = fmt.Fprintln(w)

	if a.Address != "" {
		_, _ = fmt.Fprintf(w, "%s %s\n", c.Muted("Address:"), c.Address(a.Address))
	}
	if a.Transport != "" {
		_, _ = fmt.Fprintf(w, "%s %s\n", c.Muted("Transport:"), a.Transport)
	}
	if a.Description != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", a.Description)
	}
	_, _ = fmt.Fprintf(w, "\n%s %s\n", c.Muted("Cover:"), a.CoverImage())
	if len(a.Images) > 0 {
		_, _ = fmt.Fprintf(w, "%s %d\n", c.Muted("Images:"), len(a.Images))
	}
}

// RenderMRTs renders the station quick-filter list
func RenderMRTs(w io.Writer, stations []string, opts TableOptions) {
	if len(stations) == 0 {
		_, _ = fmt.Fprintln(w, "No stations found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	_, _ = fmt.Fprintln(w, c.Header("MRT stations:"))
	_, _ = fmt.Fprintln(w)
	for _, s := range stations {
		_, _ = fmt.Fprintf(w, "  %s\n", c.MRT(s))
	}
}

// RenderBooking renders the pending booking
func RenderBooking(w io.Writer, b *models.Booking, opts TableOptions) {
	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	if b == nil {
		_, _ = fmt.Fprintln(w, "No pending booking.")
		return
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", c.Header("Booking:"), c.Name(b.Attraction.Name))
	_, _ = fmt.Fprintf(w, "  %s %s %s\n", c.Muted("Date:"), b.Date, b.Time)
	_, _ = fmt.Fprintf(w, "  %s %s\n", c.Muted("Price:"), c.Price("TWD %d", b.Price))
	if b.Attraction.Address != "" {
		_, _ = fmt.Fprintf(w, "  %s %s\n", c.Muted("Address:"), b.Attraction.Address)
	}
}

// RenderOrder renders an order with its trip and payment state
func RenderOrder(w io.Writer, o *models.Order, opts TableOptions) {
	if o == nil {
		_, _ = fmt.Fprintln(w, "No order data found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", c.Header("Order:"), c.Name(o.Number))
	_, _ = fmt.Fprintf(w, "  %s %s\n", c.Muted("Status:"), c.FormatPayment(o.Paid(), o.Payment.Message))
	_, _ = fmt.Fprintf(w, "  %s %s %s %s\n",
		c.Muted("Trip:"), o.Trip.Attraction.Name, o.Trip.Date, o.Trip.Time)
	_, _ = fmt.Fprintf(w, "  %s %s\n", c.Muted("Price:"), c.Price("TWD %d", o.Price))
	_, _ = fmt.Fprintf(w, "  %s %s <%s> %s\n",
		c.Muted("Contact:"), o.Contact.Name, o.Contact.Email, o.Contact.Phone)
}

// RenderMember renders the member dashboard with order history
func RenderMember(w io.Writer, m *models.Member, opts TableOptions) {
	if m == nil {
		_, _ = fmt.Fprintln(w, "No member data found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	_, _ = fmt.Fprintf(w, "%s %s %s\n", c.Header("Member:"), c.Name(m.Name), c.Muted("<"+m.Email+">"))
	_, _ = fmt.Fprintln(w)

	if len(m.Orders) == 0 {
		_, _ = fmt.Fprintln(w, "No orders yet.")
		return
	}

	_, _ = fmt.Fprintln(w, c.Header("Orders:"))
	for _, o := range m.Orders {
		_, _ = fmt.Fprintf(w, "  %s  %s  %s  %s\n",
			c.Name(o.Number),
			o.Trip.Attraction.Name,
			c.Price("TWD %d", o.Price),
			c.FormatPayment(o.Paid(), o.Payment.Message),
		)
	}
}
