package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tserr/internal/model"
	"tserr/internal/scan"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")) // Pinkish

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey

	contextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	targetLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")). // Orange
			Bold(true)
)

// maxDetailLines bounds how many raw diagnostic lines the right panel
// lists for one entry; the rest is summarized with a count.
const maxDetailLines = 8

func (m AppModel) View() string {
	width := m.WindowSize.Width
	height := m.WindowSize.Height

	// Layout dimensions
	// Subtracting 6 for horizontal margin (borders x2 + buffer)
	// Subtracting 6 for vertical margin (title, footer, borders)
	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2
	if interiorHeight < 2 {
		interiorHeight = 2
	}

	borderColor := lipgloss.Color("63")

	// LEFT PANEL: ranked list
	var leftView strings.Builder
	if m.ShowFiles {
		leftView.WriteString(titleStyle.Render("Files with most errors"))
	} else {
		leftView.WriteString(titleStyle.Render("Error codes"))
	}
	leftView.WriteString("\n\n")

	// Windowing Logic for Left Panel
	// Header is 2 lines (Title + 1 blank line)
	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx := 0
	endIdx := len(m.FilteredIndices)

	if len(m.FilteredIndices) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - (visibleItems / 2)
		}
		if startIdx < 0 {
			startIdx = 0
		}
		if startIdx+visibleItems > len(m.FilteredIndices) {
			startIdx = len(m.FilteredIndices) - visibleItems
		}
		endIdx = startIdx + visibleItems
	}

	tallies := m.tallies()
	for i := startIdx; i < endIdx; i++ {
		idx := m.FilteredIndices[i]
		t := tallies[idx]

		statusIcon := model.IconOK
		if m.ShowFiles && scan.IsExcluded(t.Key) {
			statusIcon = model.IconExcluded // hidden from the stdout report
		} else if idx == 0 {
			statusIcon = model.IconTop
		} else if idx == len(tallies)-1 {
			statusIcon = model.IconBottom
		}

		line := fmt.Sprintf("%2d. %s %s: %d errors", idx+1, statusIcon, t.Key, t.Count())

		// Truncate
		if len(line) > leftWidth-2 {
			line = line[:leftWidth-5] + "..."
		}

		if i == m.SelectedIdx {
			leftView.WriteString(selectedStyle.Render(line))
		} else {
			leftView.WriteString(normalStyle.Render(line))
		}
		leftView.WriteString("\n")
	}

	if len(m.FilteredIndices) == 0 {
		leftView.WriteString(dimStyle.Render("  (no entries match)"))
		leftView.WriteString("\n")
	}

	// RIGHT PANEL: details of the selection
	m.DetailsViewport.Width = rightWidth
	m.DetailsViewport.Height = interiorHeight
	m.DetailsViewport.SetContent(m.detailContent(rightWidth - 2))

	leftBox := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(leftView.String())

	rightBox := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(m.DetailsViewport.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)

	// HEADER + FOOTER
	header := titleStyle.Render(fmt.Sprintf("tserr %s", model.Version)) +
		dimStyle.Render(fmt.Sprintf("  %s (%d lines)", m.Summary.Input, m.Summary.TotalLines))

	var footer string
	if m.InputMode {
		footer = "Filter: " + m.InputBuffer.View()
	} else {
		footer = dimStyle.Render("↑/↓ move · f codes/files · / filter · q quit")
		if m.SearchActive {
			footer += dimStyle.Render(fmt.Sprintf(" · filter: %q", m.InputBuffer.Value()))
		}
	}

	return header + "\n" + body + "\n" + footer
}

// detailContent renders the right panel: the raw diagnostic lines for
// the selected entry, then the source code the first diagnostic points
// at.
func (m AppModel) detailContent(width int) string {
	if width < 10 {
		width = 10
	}
	if len(m.FilteredIndices) == 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return dimStyle.Render("Nothing selected.")
	}

	t := m.tallies()[m.FilteredIndices[m.SelectedIdx]]

	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Key))
	b.WriteString(fmt.Sprintf("  %d errors\n\n", t.Count()))

	shown := len(t.Matches)
	if shown > maxDetailLines {
		shown = maxDetailLines
	}
	for _, match := range t.Matches[:shown] {
		b.WriteString(dimStyle.Render(truncate(match.Text, width)))
		b.WriteString("\n")
	}
	if t.Count() > maxDetailLines {
		b.WriteString(dimStyle.Render(fmt.Sprintf("... and %d more\n", t.Count()-maxDetailLines)))
	}

	// Source context for the first diagnostic that carries a position.
	for _, match := range t.Matches {
		if match.File == "" || match.Row == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(contextStyle.Render(fmt.Sprintf("%s:%d:%d", match.File, match.Row, match.Col)))
		b.WriteString("\n")
		b.WriteString(renderContext(model.GetLineContext(match.File, match.Row), width))
		break
	}

	return b.String()
}

func renderContext(ctx model.LineContext, width int) string {
	if ctx.ErrorMsg != "" {
		return dimStyle.Render(ctx.ErrorMsg) + "\n"
	}

	var b strings.Builder
	writeLine := func(num int, text string, target bool) {
		line := fmt.Sprintf("%4d │ %s", num, text)
		line = truncate(line, width)
		if target {
			b.WriteString(targetLineStyle.Render(line))
		} else {
			b.WriteString(contextStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if ctx.HasBefore2 {
		writeLine(ctx.LineNumber-2, ctx.Before2, false)
	}
	if ctx.HasBefore1 {
		writeLine(ctx.LineNumber-1, ctx.Before1, false)
	}
	writeLine(ctx.LineNumber, ctx.Target, true)
	if ctx.HasAfter1 {
		writeLine(ctx.LineNumber+1, ctx.After1, false)
	}
	if ctx.HasAfter2 {
		writeLine(ctx.LineNumber+2, ctx.After2, false)
	}
	return b.String()
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
