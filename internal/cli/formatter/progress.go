package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45% from a whole
// percentage. The bar is green above 66, yellow from 33, red below.
func RenderProgress(pct int, width int) string {
	return fmt.Sprintf("[%s] %3d%%", RenderCompactBar(pct, width, progressStyleFor(pct)), clampPct(pct))
}

// RenderBudgetBar renders a time-usage bar. Unlike progress, a fuller bar
// is worse: red past 100, yellow past 80.
func RenderBudgetBar(fill float64, ratio float64, width int) string {
	style := StyleGreen
	switch {
	case ratio > 1:
		style = StyleRed
	case ratio > 0.8:
		style = StyleYellow
	}
	pct := int(fill + 0.5)
	return fmt.Sprintf("[%s] %3.0f%%", RenderCompactBar(pct, width, style), ratio*100)
}

type renderer interface {
	Render(strs ...string) string
}

// RenderCompactBar renders only the blocks, without brackets or percentage.
func RenderCompactBar(pct int, width int, style renderer) string {
	pct = clampPct(pct)
	if width < 2 {
		width = 2
	}
	filled := pct * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	if style == nil {
		return bar
	}
	return style.Render(bar)
}

func progressStyleFor(pct int) renderer {
	switch {
	case pct < 33:
		return StyleRed
	case pct < 66:
		return StyleYellow
	default:
		return StyleGreen
	}
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
