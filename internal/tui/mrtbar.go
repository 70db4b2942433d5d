package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// renderMRTBar renders the horizontal station chip bar. Picking a chip
// drops the station name into the search box and runs it as a keyword
// search, so the bar and free-text search share one code path.
func (m Model) renderMRTBar() string {
	border := stylePanelNormal
	if m.focus == focusMRT {
		border = stylePanelFocused
	}

	if m.mrtErr != nil {
		return border.Width(m.width - 2).Render(styleError.Render("MRT bar unavailable: " + m.mrtErr.Error()))
	}
	if len(m.mrts) == 0 {
		return border.Width(m.width - 2).Render(styleMuted.Render("Loading MRT stations..."))
	}

	activeKeyword := m.feed.Mode().Keyword

	var chips []string
	start, end := mrtWindow(m.mrtCursor, len(m.mrts), m.width)
	if start > 0 {
		chips = append(chips, styleMuted.Render("«"))
	}
	for i := start; i < end; i++ {
		station := m.mrts[i]
		focused := m.focus == focusMRT && i == m.mrtCursor
		chips = append(chips, renderChip(station, station == activeKeyword, focused))
	}
	if end < len(m.mrts) {
		chips = append(chips, styleMuted.Render("»"))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(chips, " "))
	return border.Width(m.width - 2).Render(bar)
}

// mrtWindow returns the chip range that fits the terminal width, keeping
// the cursor inside the window.
func mrtWindow(cursor, total, width int) (int, int) {
	// Rough budget: CJK station names render ~10 cells per chip.
	perChip := 10
	maxVisible := (width - 6) / perChip
	if maxVisible < 1 {
		maxVisible = 1
	}
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

// renderChip renders a single chip with cursor highlighting.
func renderChip(label string, active bool, focused bool) string {
	if focused {
		if active {
			return styleChipCursor.Render("[" + label + "]")
		}
		return styleChipCursor.Render(" " + label + " ")
	}
	if active {
		return styleMRT.Render("[" + label + "]")
	}
	return styleMuted.Render(" " + label + " ")
}

// handleMRTKeys handles key events when the station bar is focused.
func (m Model) handleMRTKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		if m.mrtCursor > 0 {
			m.mrtCursor--
		}
		return m, nil

	case "l", "right":
		if m.mrtCursor < len(m.mrts)-1 {
			m.mrtCursor++
		}
		return m, nil

	case " ", "enter":
		if len(m.mrts) == 0 {
			return m, nil
		}
		station := m.mrts[m.mrtCursor]
		m.searchInput.SetValue(station)
		return m.runSearch(station)

	case "tab":
		m.focus = focusList
		return m, nil

	case "shift+tab", "esc", "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "q":
		return m, tea.Quit
	}

	return m, nil
}
