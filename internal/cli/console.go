package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Plain-text console helpers shared by all commands.

const separatorWidth = 60

func printSeparator(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", separatorWidth))
}

func printHeader(w io.Writer, title string) {
	printSeparator(w)
	fmt.Fprintln(w, title)
	printSeparator(w)
}

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintf(w, "✓ %s\n", msg)
}

func printError(w io.Writer, msg string) {
	fmt.Fprintf(w, "✗ %s\n", msg)
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-22s %s\n", label+" :", value)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
