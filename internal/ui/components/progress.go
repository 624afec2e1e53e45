package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizchat/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for a 0-100 rate.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar. Filled cells are drawn with block glyphs
// so the bar stays readable when colors are stripped.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Label.Render(p.Label)
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent / 100)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat("█", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat("░", empty))

	if p.ShowPercent {
		result += theme.RateStyle(p.Percent).Render(fmt.Sprintf(" %4.0f%%", p.Percent))
	}

	return result
}
