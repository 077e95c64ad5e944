package mlog

import (
	"io"
	"strings"

	"github.com/dogmatiq/iago/must"
)

// Line is a single log line.
//
// It is rendered as the labelled IDs, followed by the icons and then the
// non-empty text segments separated by SeparatorIcon.
type Line struct {
	IDs   []IconWithLabel
	Icons []Icon
	Text  []string
}

// String returns the line as a string.
func (l Line) String() string {
	var b strings.Builder
	l.mustWriteTo(&b)
	return b.String()
}

func (l Line) mustWriteTo(w io.Writer) {
	for _, id := range l.IDs {
		must.WriteTo(w, id)
		must.WriteString(w, "  ")
	}

	for _, icon := range l.Icons {
		must.WriteTo(w, icon)
		must.WriteString(w, " ")
	}

	sep := ""
	for _, t := range l.Text {
		if t != "" {
			must.WriteString(w, " "+sep+t)
			sep = SeparatorIcon.String() + " "
		}
	}
}

// String returns a log line as a string.
func String(
	ids []IconWithLabel,
	icons []Icon,
	text ...string,
) string {
	return Line{ids, icons, text}.String()
}
