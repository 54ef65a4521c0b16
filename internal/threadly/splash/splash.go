// Package splash renders the transient screen shown between login and the home view.
package splash

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

const (
	Title   = "Threadly"
	Tagline = "Stitching People Together, One Thread at a Time"

	defaultWidth = 64
)

// Screen is a stateless splash view.
type Screen struct {
	// Width is the banner width in columns; zero uses the default.
	Width int
}

// Render writes the splash banner to w.
func (s Screen) Render(w io.Writer) error {
	width := s.Width
	if width <= 0 {
		width = defaultWidth
	}
	if minWidth := utf8.RuneCountInString(Tagline) + 4; width < minWidth {
		width = minWidth
	}

	border := color.New(color.FgGreen)
	title := color.New(color.FgHiWhite, color.Bold)

	var b strings.Builder
	line := "+" + strings.Repeat("-", width-2) + "+"
	blank := "|" + strings.Repeat(" ", width-2) + "|"

	b.WriteString(border.Sprint(line) + "\n")
	b.WriteString(border.Sprint(blank) + "\n")
	b.WriteString(border.Sprint("|") + title.Sprint(center(Title, width-2)) + border.Sprint("|") + "\n")
	b.WriteString(border.Sprint("|") + center(Tagline, width-2) + border.Sprint("|") + "\n")
	b.WriteString(border.Sprint(blank) + "\n")
	b.WriteString(border.Sprint(line) + "\n")

	_, err := fmt.Fprint(w, b.String())
	return err
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
