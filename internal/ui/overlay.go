package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lagreeflow/lagree/internal/theme"
)

// compositeOverlay renders an overlay centered on top of a dimmed background.
// Used by the exit confirmation shown over a running workout.
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := dimBackground(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, lipgloss.Width(line))
	}

	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	leftPad := theme.DimmedStyle.Render(strings.Repeat(" ", startX))
	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		rightPad := theme.DimmedStyle.Render(strings.Repeat(" ", max(width-startX-lipgloss.Width(line), 0)))
		bgLines[y] = leftPad + line + rightPad
	}

	return strings.Join(bgLines, "\n")
}

// bottomAnchoredOverlay renders an overlay at the bottom of a dimmed background.
// Used by the command palette.
func bottomAnchoredOverlay(background, overlay string, width, height int) string {
	bgLines := dimBackground(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	startY := max(height-len(overlayLines), 0)
	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bgLines[y] = line
	}

	return strings.Join(bgLines, "\n")
}

// dimBackground strips styling from every line, dims it and pads it to the
// full terminal size
func dimBackground(background string, width, height int) []string {
	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	for i := range lines {
		dimmed := theme.DimmedStyle.Render(stripAnsi(lines[i]))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		lines[i] = dimmed
	}
	return lines
}

// stripAnsi removes ANSI escape codes from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			// SGR and most CSI sequences end with a letter
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
