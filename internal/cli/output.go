package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output formats command results as text or JSON.
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter.
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format. Text output takes a
// pre-rendered string so each command controls its own layout.
func (o *Output) Print(data any, text string) {
	if o.format == "json" {
		enc := json.NewEncoder(o.w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(data)
		return
	}
	fmt.Fprint(o.w, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(o.w)
	}
}
