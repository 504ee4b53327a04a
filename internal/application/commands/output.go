package commands

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/bravo68web/codecommit/internal/protocol"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type printer struct {
	w      io.Writer
	format string
}

func newPrinter(cmd *cli.Command) *printer {
	return &printer{w: cmd.Root().Writer, format: cmd.Root().String("output")}
}

// result prints a single value: its debug form as text, or its wire form as JSON.
func (p *printer) result(v fmt.Stringer) error {
	if p.format == outputJSON {
		return p.json(v)
	}
	_, err := fmt.Fprintln(p.w, v.String())
	return err
}

// list prints one line per item as text, or v as JSON.
func (p *printer) list(v any, lines []string) error {
	if p.format == outputJSON {
		return p.json(v)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(p.w, l); err != nil {
			return err
		}
	}
	return nil
}

// done reports a call that returns no body.
func (p *printer) done(msg string) error {
	if p.format == outputJSON {
		_, err := fmt.Fprintln(p.w, "{}")
		return err
	}
	_, err := fmt.Fprintln(p.w, msg)
	return err
}

func (p *printer) json(v any) error {
	data, err := protocol.API.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
