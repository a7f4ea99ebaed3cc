package ll

import (
	"fmt"
	"html"
	"io"
)

// TableAsHTML exports an LL(1) parse table in HTML-format. Rows are
// non-terminals, columns are terminals. Cells show a rule number, "sync" or
// nothing for error entries.
func TableAsHTML(t *ParseTable, w io.Writer) error {
	if t == nil {
		return fmt.Errorf("no parse table to export")
	}
	g := t.g
	ew := &errWriter{w: w}
	ew.write("<html><body>\n")
	ew.write(fmt.Sprintf("<p>LL(1) table for %s, %d entries</p>\n", html.EscapeString(g.Name), t.EntryCount()))
	ew.write("<table border=1 cellspacing=0 cellpadding=5>\n")
	ew.write("<tr bgcolor=#cccccc><td></td>\n")
	for _, a := range g.terminals {
		ew.write(fmt.Sprintf("<td>%s</td>", html.EscapeString(a.Name)))
	}
	ew.write("</tr>\n")
	var td string // table cell
	for _, A := range g.nonterminals {
		ew.write(fmt.Sprintf("<tr><td>%s</td>\n", html.EscapeString(A.Name)))
		for _, a := range g.terminals {
			switch v := t.Entry(A.Name, a.Name); v {
			case ErrorAction:
				td = "&nbsp;"
			case SyncAction:
				td = "sync"
			default:
				td = fmt.Sprintf("%d", v)
			}
			ew.write("<td>")
			ew.write(td)
			ew.write("</td>\n")
		}
		ew.write("</tr>\n")
	}
	ew.write("</table>\n<p>\n")
	for _, r := range g.rules {
		ew.write(fmt.Sprintf("%d: %s<br/>\n", r.Serial, html.EscapeString(r.String())))
	}
	ew.write("</p></body></html>\n")
	return ew.err
}

// errWriter remembers the first write error and skips all subsequent writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) write(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}
