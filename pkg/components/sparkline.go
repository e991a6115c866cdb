package components

import "strings"

// Sparkline block characters: 8 vertical levels per cell.
var sparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a single-line chart of recent values, used for the
// gamma history under the velocity slider. Values scale between min and
// the observed maximum; min fixes the floor at gamma's lower bound of 1.
func Sparkline(data []float64, width int, min float64, color string) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	max := min
	for _, v := range data {
		if v > max {
			max = v
		}
	}
	span := max - min
	if span <= 0 {
		span = 1
	}

	var b strings.Builder
	for _, v := range data {
		frac := (v - min) / span
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		idx := int(frac * 7)
		b.WriteRune(sparkBlocks[idx])
	}
	return Colored(color, b.String())
}
