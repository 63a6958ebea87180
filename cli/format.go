package cli

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Grouped output layout: blocks of groupSize digits, groupsPerLine per line.
const (
	groupSize     = 10
	groupsPerLine = 5
)

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// groupDigits lays out "3.dddd…" as space-separated blocks, continuation
// lines indented under the first fractional digit.
//
//	3.1415926535 8979323846 2643383279 5028841971 6939937510
//	  5820974944 5923078164 …
func groupDigits(pi string) string {
	if len(pi) <= 2 {
		return pi
	}
	head, frac := pi[:2], pi[2:]

	var b strings.Builder
	b.Grow(len(pi) + len(pi)/groupSize + 2*len(pi)/(groupSize*groupsPerLine) + 2)
	b.WriteString(head)
	for i := 0; i < len(frac); i += groupSize {
		if i > 0 {
			if (i/groupSize)%groupsPerLine == 0 {
				b.WriteString("\n  ")
			} else {
				b.WriteByte(' ')
			}
		}
		end := i + groupSize
		if end > len(frac) {
			end = len(frac)
		}
		b.WriteString(frac[i:end])
	}

	return b.String()
}
