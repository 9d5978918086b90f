package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"slate/internal/interp"
)

// printResult writes a dispatch result. On a terminal, tabular results render
// as a table instead of the raw JSON payload embedded in the message.
func printResult(w io.Writer, result interp.Result) {
	if result.Table != nil && stdoutIsTerminal() {
		if headline := firstLine(result.Message); headline != "" {
			fmt.Fprintln(w, headline)
		}
		fmt.Fprintln(w, renderTable(result.Table.Headers, result.Table.Rows))
		return
	}
	fmt.Fprintln(w, result.Message)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return strings.TrimSpace(text)
}
