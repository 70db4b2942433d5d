package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/taipei-trip/trip-cli/internal/models"
)

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Layout: header + search bar + MRT bar + panels + status bar
	header := renderHeader()
	searchBar := m.renderSearchBar()
	mrtBar := m.renderMRTBar()
	statusBar := m.renderStatusBar()

	headerHeight := lipgloss.Height(header)
	searchHeight := lipgloss.Height(searchBar)
	mrtHeight := lipgloss.Height(mrtBar)
	statusHeight := lipgloss.Height(statusBar)
	panelHeight := m.height - headerHeight - searchHeight - mrtHeight - statusHeight
	if panelHeight < 3 {
		panelHeight = 3
	}

	var panels string
	if m.focus == focusList || m.focus == focusSearch || m.focus == focusMRT {
		// Full-width card list while browsing
		listBorder := stylePanelNormal
		if m.focus == focusList {
			listBorder = stylePanelFocused
		}
		panels = listBorder.
			Width(m.width - 2).
			Height(panelHeight - 2).
			Render(m.renderCardList(m.width-4, panelHeight-2))
	} else {
		// Split: card list on the left, the open panel on the right
		leftWidth := m.width*40/100 - 2
		rightWidth := m.width - leftWidth - 4
		if leftWidth < 20 {
			leftWidth = 20
		}
		if rightWidth < 20 {
			rightWidth = 20
		}

		leftPanel := stylePanelNormal.
			Width(leftWidth).
			Height(panelHeight - 2).
			Render(m.renderCardList(leftWidth-2, panelHeight-2))

		rightPanel := stylePanelFocused.
			Width(rightWidth).
			Height(panelHeight - 2).
			Render(m.renderRightPanel(rightWidth - 2))

		panels = lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, searchBar, mrtBar, panels, statusBar)
}

// renderHeader renders the brand line.
func renderHeader() string {
	title := "" +
		" _____     _         _   ___               _____    _      \n" +
		"|_   _|_ _(_)_ __  __(_) |   \\ __ _ _  _  |_   _| _(_)_ __ \n" +
		"  | |/ _` | | '_ \\/ -_) | |) / _` | || |   | || '_| | '_ \\\n" +
		"  |_|\\__,_|_| .__/\\___|_|___/\\__,_|\\_, |   |_||_| |_| .__/\n" +
		"            |_|                    |__/             |_|   "

	return styleLogo.Render(title)
}

// renderSearchBar renders the keyword input at the top.
func (m Model) renderSearchBar() string {
	border := stylePanelNormal
	if m.focus == focusSearch {
		border = stylePanelFocused
	}

	label := styleHeader.Render("Search: ")
	content := label + m.searchInput.View()

	return border.Width(m.width - 2).Render(content)
}

// renderCardList renders the attraction cards with the trailing sentinel.
func (m Model) renderCardList(width, height int) string {
	title := "ATTRACTIONS"
	if keyword := m.feed.Mode().Keyword; keyword != "" {
		title += " matching \"" + keyword + "\""
	}
	titleStr := styleHeader.Render(title)

	records := m.feed.Records()
	if len(records) == 0 {
		body := ""
		switch {
		case m.feed.InFlight():
			body = styleLoading.Render(" Loading attractions...")
		case m.feed.Err() != nil:
			body = styleError.Render(" Error: "+m.feed.Err().Error()) + "\n" +
				styleMuted.Render(" Press r to retry")
		case m.feed.Exhausted():
			body = styleMuted.Render(" No attractions found")
		default:
			body = styleMuted.Render(" Nothing loaded yet")
		}
		return titleStr + "\n" + body
	}

	var b strings.Builder
	b.WriteString(titleStr)
	b.WriteString("\n")

	maxVisible := height - 2
	if maxVisible < 1 {
		maxVisible = 1
	}

	// The sentinel occupies the final row, after any loading placeholders.
	extraRows := 1
	if m.feed.InFlight() {
		extraRows += loadingCardCount
	}
	start, end := visibleRange(m.listCursor, len(records)+extraRows, maxVisible)

	for i := start; i < end; i++ {
		switch {
		case i < len(records):
			b.WriteString(m.renderCardLine(records[i], width, i == m.listCursor && m.focus == focusList))
		case i < len(records)+extraRows-1:
			b.WriteString(styleLoading.Render("   ░░░ loading ░░░"))
		default:
			b.WriteString(m.renderSentinel())
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderSentinel renders the last row of the list. It is always the final
// row no matter how many pages have been appended above it.
func (m Model) renderSentinel() string {
	switch {
	case m.feed.Exhausted():
		return styleMuted.Render("   — end of results —")
	case m.feed.InFlight():
		return styleLoading.Render("   … loading more …")
	case m.feed.Err() != nil:
		return styleError.Render("   load failed, press r to retry")
	default:
		return styleMuted.Render("   ···")
	}
}

// renderCardLine renders a single attraction card row: marker, name,
// station, category, and the cover image URL (placeholder when none).
func (m Model) renderCardLine(a models.Attraction, width int, selected bool) string {
	marker := "  "
	if m.favorites.Has(a.ID) {
		marker = styleFavorite.Render("♥ ")
	}

	mrt := a.MRT
	if mrt == "" {
		mrt = models.NoStationLabel
	}

	name := truncate(a.Name, width/3)
	entry := fmt.Sprintf("%s%s  %s %s  %s",
		marker,
		styleName.Render(name),
		styleMRT.Render("["+mrt+"]"),
		styleCategory.Render(a.Category),
		styleMuted.Render(truncate(a.CoverImage(), width/3)),
	)

	if selected {
		return styleSelected.Render(">") + " " + entry
	}
	return "  " + entry
}

// renderRightPanel renders whichever panel is open next to the list.
func (m Model) renderRightPanel(width int) string {
	switch m.focus {
	case focusDetail:
		return m.renderDetail(width)
	case focusAuth:
		return m.renderAuth(width)
	case focusBooking:
		return m.renderBooking(width)
	case focusMember:
		return m.renderMember(width)
	}
	return ""
}

// renderDetail renders the attraction detail panel with the image strip.
func (m Model) renderDetail(width int) string {
	if m.detailLoading {
		return styleHeader.Render("ATTRACTION") + "\n" + styleLoading.Render(" Loading...")
	}
	if m.detailErr != nil {
		return styleHeader.Render("ATTRACTION") + "\n" + styleError.Render(" Error: "+m.detailErr.Error())
	}
	if m.detail == nil {
		return styleHeader.Render("ATTRACTION") + "\n" + styleMuted.Render(" Nothing selected")
	}

	a := m.detail
	var b strings.Builder

	name := a.Name
	if m.favorites.Has(a.ID) {
		name = styleFavorite.Render("♥ ") + styleName.Render(name)
	} else {
		name = styleName.Render(name)
	}
	b.WriteString(name)
	b.WriteString("\n")
	b.WriteString(styleCategory.Render(a.Category))
	if a.MRT != "" {
		b.WriteString("  " + styleMRT.Render("["+a.MRT+"]"))
	} else {
		b.WriteString("  " + styleMuted.Render("["+models.NoStationLabel+"]"))
	}
	b.WriteString("\n\n")

	if len(a.Images) > 0 {
		b.WriteString(styleMuted.Render(fmt.Sprintf("Image %d/%d  (h/l to flip)", m.imageIndex+1, len(a.Images))))
		b.WriteString("\n")
		b.WriteString(styleMuted.Render(truncate(a.Images[m.imageIndex], width-2)))
		b.WriteString("\n\n")
	} else {
		b.WriteString(styleMuted.Render(truncate(models.PlaceholderImage, width-2)))
		b.WriteString("\n\n")
	}

	if a.Address != "" {
		b.WriteString(styleHeader.Render("Address: ") + a.Address + "\n")
	}
	if a.Transport != "" {
		b.WriteString(styleHeader.Render("Transport: ") + a.Transport + "\n")
	}
	if a.Description != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Render(a.Description))
	}

	b.WriteString("\n\n")
	b.WriteString(styleMuted.Render("f:favorite  b:book this attraction"))

	return b.String()
}

// renderMember renders the member dashboard panel.
func (m Model) renderMember(width int) string {
	title := styleHeader.Render("MEMBER")

	if m.memberLoading {
		return title + "\n" + styleLoading.Render(" Loading...")
	}
	if m.memberErr != nil {
		return title + "\n" + styleError.Render(" Error: "+m.memberErr.Error())
	}
	if m.member == nil {
		return title + "\n" + styleMuted.Render(" No member data")
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styleName.Render(m.member.Name) + "  " + styleMuted.Render("<"+m.member.Email+">"))
	b.WriteString("\n\n")

	b.WriteString(styleHeader.Render("Pending booking"))
	b.WriteString("\n")
	if m.bookingErr != nil {
		b.WriteString(styleError.Render(" " + m.bookingErr.Error()))
	} else if m.pendingBooking == nil {
		b.WriteString(styleMuted.Render(" none"))
	} else {
		pb := m.pendingBooking
		b.WriteString(fmt.Sprintf(" %s  %s %s  %s",
			styleName.Render(pb.Attraction.Name),
			pb.Date, pb.Time,
			stylePrice.Render(fmt.Sprintf("TWD %d", pb.Price)),
		))
		b.WriteString("\n" + styleMuted.Render(" d:remove booking"))
	}
	b.WriteString("\n\n")

	b.WriteString(styleHeader.Render("Orders"))
	b.WriteString("\n")
	if len(m.member.Orders) == 0 {
		b.WriteString(styleMuted.Render(" none yet"))
	} else {
		for _, o := range m.member.Orders {
			status := styleError.Render("unpaid")
			if o.Paid() {
				status = styleSuccess.Render("paid")
			}
			b.WriteString(fmt.Sprintf(" %s  %s  %s  %s\n",
				styleMuted.Render(o.Number),
				truncate(o.Trip.Attraction.Name, width/3),
				stylePrice.Render(fmt.Sprintf("TWD %d", o.Price)),
				status,
			))
		}
	}

	return b.String()
}

// renderStatusBar renders context-aware keyboard hints at the bottom.
func (m Model) renderStatusBar() string {
	if m.statusMsg != "" {
		return styleStatusBar.Width(m.width).Render(" " + m.statusMsg)
	}

	var hints string
	switch m.focus {
	case focusSearch:
		hints = "Enter:search (empty resets)  Tab:stations  Esc:back  Ctrl+C:quit"
	case focusMRT:
		hints = "h/l:move  Enter:filter by station  Tab:list  Esc:search  q:quit"
	case focusList:
		hints = "j/k:scroll  Enter:detail  f:favorite  m:member  /:search  q:quit"
	case focusDetail:
		hints = "h/l:images  f:favorite  b:book  Esc:back  q:quit"
	case focusAuth:
		hints = "Tab:next field  Enter:submit  Ctrl+T:sign in/up  Esc:cancel"
	case focusBooking:
		hints = "Tab:next field  Space:time slot  Enter:confirm  Esc:back"
	case focusMember:
		hints = "d:remove booking  g:refresh  Esc:back  q:quit"
	}

	return styleStatusBar.Width(m.width).Render(" " + hints)
}

// visibleRange calculates the start and end indices for a scrollable list.
func visibleRange(cursor, total, maxVisible int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}

	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// truncate truncates a string to the given rune count.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "~"
}
