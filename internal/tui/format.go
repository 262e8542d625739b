package tui

import (
	"fmt"
	"strings"
)

// FormatClock renders a second count as HH:MM:SS.
func FormatClock(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// FormatFinishedCount is the footer tally of today's finished countdowns.
func FormatFinishedCount(n int) string {
	switch n {
	case 0:
		return "No countdowns finished today"
	case 1:
		return "1 countdown finished today"
	default:
		return fmt.Sprintf("%d countdowns finished today", n)
	}
}

const bigGlyphRows = 5

var bigGlyphs = map[rune][bigGlyphRows]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" ██", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
}

// renderBigClock draws text in the block font; unknown runes are skipped.
func renderBigClock(text string) string {
	var rows [bigGlyphRows]strings.Builder
	first := true
	for _, r := range text {
		g, ok := bigGlyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			if !first {
				rows[i].WriteByte(' ')
			}
			rows[i].WriteString(g[i])
		}
		first = false
	}
	lines := make([]string, bigGlyphRows)
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}
