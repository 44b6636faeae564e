// Command nfocat loads a single NFO/ANSI file and prints its decoded
// grid, plus optional metadata and export output, to stdout.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/stlalpha/nfoview/internal/nfo"
	"github.com/stlalpha/nfoview/internal/nfo/internal/nlog"
)

func main() {
	var (
		charset  = flag.String("charset", "auto", "source charset: auto, utf8, utf16, cp437, cp437strict, windows1252")
		noWrap   = flag.Bool("no-wrap", false, "disable long-line wrapping")
		info     = flag.Bool("info", false, "print metadata instead of the grid")
		export   = flag.String("export", "", "export mode instead of printing the grid: utf8, utf16le, cp437")
		boxed    = flag.Bool("boxed", false, "export mode: substitute zero cells with spaces")
		debug    = flag.Bool("debug", false, "enable debug logging")
		stripped = flag.Bool("stripped", false, "print paragraph-reflowed prose instead of the grid")
	)
	flag.Parse()
	nlog.DebugEnabled = *debug

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: nfocat [flags] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	opts := []nfo.Option{nfo.WithLineWrap(!*noWrap)}
	if cs, approach, ok := parseCharset(*charset); ok {
		opts = append(opts, nfo.WithCharset(cs, approach))
	}

	doc, err := nfo.LoadFile(path, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nfocat: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *info:
		printInfo(doc)
	case *stripped:
		fmt.Println(doc.StrippedText())
	case *export != "":
		printExport(doc, *export, *boxed)
	default:
		printGrid(doc)
	}
}

func parseCharset(s string) (nfo.SourceCharset, nfo.Approach, bool) {
	switch s {
	case "auto", "":
		return nfo.Auto, nfo.ApproachTry, false
	case "utf8":
		return nfo.UTF8, nfo.ApproachTry, true
	case "utf16":
		return nfo.UTF16, nfo.ApproachTry, true
	case "cp437":
		return nfo.CP437, nfo.ApproachTry, true
	case "cp437strict":
		return nfo.CP437Strict, nfo.ApproachFalse, true
	case "windows1252":
		return nfo.Windows1252, nfo.ApproachFalse, true
	default:
		return nfo.Auto, nfo.ApproachTry, false
	}
}

func printInfo(doc *nfo.Document) {
	fmt.Printf("charset:   %s\n", doc.CharsetName())
	fmt.Printf("ansi art:  %v\n", doc.IsAnsiArt())
	fmt.Printf("grid:      %d x %d\n", doc.GridWidth(), doc.GridHeight())
	total := 0
	for r := 0; r < doc.GridHeight(); r++ {
		total += len(doc.LinksForRow(r))
	}
	fmt.Printf("links:     %d\n", total)
}

func printGrid(doc *nfo.Document) {
	for r := 0; r < doc.GridHeight(); r++ {
		row := make([]rune, doc.GridWidth())
		for c := range row {
			cp := doc.GridChar(r, c)
			if cp == 0 {
				cp = ' '
			}
			row[c] = cp
		}
		fmt.Println(string(row))
	}
}

func printExport(doc *nfo.Document, mode string, boxed bool) {
	opts := nfo.ExportOptions{Boxed: boxed}
	switch mode {
	case "utf8":
		os.Stdout.Write(doc.ExportUTF8(opts))
	case "utf16le":
		os.Stdout.Write(doc.ExportUTF16LE(opts))
	case "cp437":
		b, notConverted := doc.ExportCP437(opts)
		os.Stdout.Write(b)
		if notConverted > 0 {
			fmt.Fprintf(os.Stderr, "nfocat: %d characters could not be represented in CP437\n", notConverted)
		}
	default:
		fmt.Fprintf(os.Stderr, "nfocat: unknown export mode %q\n", mode)
		os.Exit(2)
	}
}
