package doorssh

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"

	"github.com/stlalpha/nfoview/internal/nfo"
	"github.com/stlalpha/nfoview/internal/nfo/internal/nlog"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	sgrByColor  = [8]string{"30", "31", "32", "33", "34", "35", "36", "37"}
)

// Handler builds the ssh.Session handler for a Catalog, rendering the
// chosen file's grid (and, for ANSI art, its color map re-expressed as
// ANSI SGR sequences) to the connected terminal.
func Handler(cat *Catalog) func(ssh.Session) {
	return func(raw ssh.Session) {
		trace := uuid.NewString()
		sess := WrapSession(raw)
		done := make(chan struct{})
		sess.SetReadInterrupt(done)
		defer close(done)

		nlog.Debug("session %s connected from %s", trace, raw.RemoteAddr())
		defer nlog.Debug("session %s disconnected", trace)

		files := cat.Files()
		fmt.Fprintln(sess, headerStyle.Render("NFO Viewer"))
		fmt.Fprintln(sess, borderStyle.Render(menuText(files)))
		fmt.Fprint(sess, "\r\nselect a file by number (or 'q' to quit): ")

		reader := bufio.NewReader(sess)
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" || line == "q" {
			return
		}

		idx, err := strconv.Atoi(line)
		if err != nil || idx < 1 || idx > len(files) {
			fmt.Fprintln(sess, "invalid selection")
			return
		}

		name := files[idx-1]
		path := filepath.Join(cat.dir, name)
		doc, loadErr := nfo.LoadFile(path)
		if loadErr != nil {
			fmt.Fprintf(sess, "could not render %s: %v\r\n", name, loadErr)
			return
		}
		renderDocument(sess, doc)
	}
}

func menuText(files []string) string {
	var sb strings.Builder
	for i, f := range files {
		fmt.Fprintf(&sb, "%3d) %s\n", i+1, f)
	}
	if len(files) == 0 {
		sb.WriteString("(no files available)")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderDocument writes a document's grid to w, re-deriving ANSI SGR
// sequences from the color map when the document is ANSI art. Only the
// eight base colors (indices 0-7) and bold, underline and inverse are
// re-emitted; other color indices get no color code, and faint, blink
// and strikethrough are dropped.
func renderDocument(w interface{ Write([]byte) (int, error) }, doc *nfo.Document) {
	cm := doc.ColorMap()
	var sb strings.Builder
	lastAttr := nfo.CellAttr{}
	haveAttr := false

	for r := 0; r < doc.GridHeight(); r++ {
		for c := 0; c < doc.GridWidth(); c++ {
			cp := doc.GridChar(r, c)
			if cp == 0 {
				cp = ' '
			}
			if cm != nil {
				attr := cm.At(r, c)
				if !haveAttr || attr != lastAttr {
					sb.WriteString(sgrFor(attr))
					lastAttr = attr
					haveAttr = true
				}
			}
			sb.WriteRune(cp)
		}
		if cm != nil {
			sb.WriteString("\x1b[0m")
			haveAttr = false
		}
		sb.WriteString("\r\n")
	}
	w.Write([]byte(sb.String()))
}

func sgrFor(a nfo.CellAttr) string {
	var parts []string
	parts = append(parts, "0")
	if a.Bold {
		parts = append(parts, "1")
	}
	if a.Underline {
		parts = append(parts, "4")
	}
	if a.Inverse {
		parts = append(parts, "7")
	}
	if int(a.Foreground) < len(sgrByColor) {
		parts = append(parts, sgrByColor[a.Foreground])
	}
	if int(a.Background) < len(sgrByColor) {
		bg, _ := strconv.Atoi(sgrByColor[a.Background])
		parts = append(parts, strconv.Itoa(bg+10))
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}
