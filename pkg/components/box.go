package components

import "strings"

// BorderStyle selects the box-drawing character set.
type BorderStyle int

const (
	// BorderRounded uses single-line characters with rounded corners.
	BorderRounded BorderStyle = iota
	// BorderSingle uses plain single-line characters.
	BorderSingle
	// BorderHeavy uses thick characters, used for the focused panel.
	BorderHeavy
)

type borderChars struct {
	tl, tr, bl, br, h, v string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {"╭", "╮", "╰", "╯", "─", "│"},
	BorderSingle:  {"┌", "┐", "└", "┘", "─", "│"},
	BorderHeavy:   {"┏", "┓", "┗", "┛", "━", "┃"},
}

// BoxStyle controls a rendered box: border set, an optional title in the
// top border, and a border color.
type BoxStyle struct {
	Border BorderStyle
	Title  string
	FG     string // hex border color
}

// RenderBox wraps content in a border at the given outer dimensions.
// Content lines are truncated or padded to the interior; missing lines
// are filled blank. Widths below 2 render nothing.
func RenderBox(content string, width, height int, style BoxStyle) string {
	if width < 2 || height < 2 {
		return ""
	}
	chars := borderSets[style.Border]
	pre := Color(style.FG)
	suf := ""
	if pre != "" {
		suf = Reset()
	}

	innerW := width - 2
	innerH := height - 2

	top := chars.tl + titledBorder(style.Title, chars.h, innerW) + chars.tr
	bottom := chars.bl + strings.Repeat(chars.h, innerW) + chars.br

	contentLines := strings.Split(content, "\n")
	lines := make([]string, 0, height)
	lines = append(lines, pre+top+suf)
	for i := 0; i < innerH; i++ {
		inner := ""
		if i < len(contentLines) {
			inner = contentLines[i]
		}
		inner = PadRight(Truncate(inner, innerW), innerW)
		lines = append(lines, pre+chars.v+suf+inner+pre+chars.v+suf)
	}
	lines = append(lines, pre+bottom+suf)
	return strings.Join(lines, "\n")
}

// titledBorder embeds a title into a horizontal border run.
func titledBorder(title, h string, width int) string {
	if title == "" || width < 4 {
		return strings.Repeat(h, width)
	}
	t := " " + title + " "
	if len([]rune(t)) > width-2 {
		t = string([]rune(t)[:width-2])
	}
	rest := width - len([]rune(t)) - 1
	if rest < 0 {
		rest = 0
	}
	return h + t + strings.Repeat(h, rest)
}
