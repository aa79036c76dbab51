// Package display writes lookup results to stdout in the selected format.
// Nothing but results is ever written here; diagnostics go to the logger.
package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/backmassage/subbrik/internal/brik"
	"github.com/backmassage/subbrik/internal/config"
)

// WriteList writes every sub-brick of x in ascending index order. Plain
// output is one name per line; json and yaml emit a list of {index, name}.
func WriteList(w io.Writer, x *brik.Index, f config.Format) error {
	switch f {
	case config.FormatJSON:
		return writeJSON(w, x.SubBricks())
	case config.FormatYAML:
		return writeYAML(w, x.SubBricks())
	}
	for _, name := range x.Names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// WriteLookup writes the index of name, or nothing at all when x has no
// such sub-brick. Plain output is the bare integer.
func WriteLookup(w io.Writer, x *brik.Index, name string, f config.Format) error {
	i, ok := x.Lookup(name)
	if !ok {
		return nil
	}
	sb := brik.SubBrick{Index: i, Name: name}
	switch f {
	case config.FormatJSON:
		return writeJSON(w, sb)
	case config.FormatYAML:
		return writeYAML(w, sb)
	}
	_, err := fmt.Fprintln(w, i)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	_, err = w.Write(b)
	return err
}
