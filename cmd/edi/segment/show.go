// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"fmt"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/edi/cmd/edi/cli"
	"github.com/bureau-foundation/edi/lib/refdes"
	"github.com/bureau-foundation/edi/lib/segment"
)

type showParams struct {
	InputOptions
	cli.JSONOutput
	Empty bool   `json:"-" flag:"empty" desc:"include empty values"`
	Color string `json:"-" flag:"color" desc:"style output: auto, always, or never" default:"auto"`
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "List every reference designator with its value",
		Description: `List every addressable leaf value of a segment with its reference
designator, in document order. Simple elements are listed as TST01;
composite sub-elements as TST04-1, TST04-2, and so on. When the
segment id or element count cannot form a reference designator (an id
outside 2-3 alphanumeric characters, or more than 99 elements), values
are labeled by position instead (01, 04-1) and a warning is logged.

Empty values are skipped unless --empty is given. Output is styled
when stdout is a terminal, or always/never with --color.`,
		Usage: "edi segment show [text] [flags]",
		Examples: []cli.Example{
			{
				Description: "Every value of a segment",
				Command:     "edi segment show 'TST*AA:1:1*BB:5*ZZ~'",
			},
			{
				Description: "Values as JSON, including empty ones",
				Command:     "edi segment show --json --empty 'NM1*IL*1*DOE*JOHN****MI*123~'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			return runShow(&params, args, standardStreams())
		},
	}
}

func runShow(params *showParams, args []string, endpoints streams) error {
	positional, err := optionalArg("show", args)
	if err != nil {
		return err
	}
	s, err := params.open(endpoints)
	if err != nil {
		return err
	}
	seg, err := s.read(&params.InputOptions, positional, endpoints.stdin)
	if err != nil {
		return err
	}

	rows, err := valueRows(seg, s.logger)
	if err != nil {
		return err
	}
	if !params.Empty {
		kept := rows[:0]
		for _, row := range rows {
			if row.Value != "" {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	if done, err := params.EmitJSON(endpoints.stdout, rows); done {
		return err
	}
	renderer, err := newRenderer(endpoints.stdout, params.Color)
	if err != nil {
		return err
	}
	return writeValueTable(endpoints.stdout, renderer, rows)
}

// valueRow is one listed value. Ref is a reference designator, or a
// bare position when the segment cannot be addressed by designator.
type valueRow struct {
	Ref   string `json:"ref"`
	Value string `json:"value"`
}

// valueRows lists the leaf values of seg by reference designator,
// falling back to positional labels when the segment id or element
// count is outside what a designator can express.
func valueRows(seg *segment.Segment, logger *slog.Logger) ([]valueRow, error) {
	values, err := seg.Values()
	if err == nil {
		rows := make([]valueRow, len(values))
		for i, value := range values {
			rows[i] = valueRow{Ref: value.RefDes.String(), Value: value.Value}
		}
		return rows, nil
	}
	if !errors.Is(err, refdes.ErrMalformed) {
		return nil, err
	}

	logger.Warn("segment cannot be addressed by reference designator; labeling values by position",
		"id", seg.ID(),
		"elements", seg.Len(),
		"error", err,
	)
	var rows []valueRow
	for i, element := range seg.Elements() {
		position := fmt.Sprintf("%02d", i+1)
		switch element := element.(type) {
		case segment.Simple:
			rows = append(rows, valueRow{Ref: position, Value: element.Value()})
		case segment.Composite:
			for j, value := range element.Values() {
				rows = append(rows, valueRow{Ref: position + "-" + strconv.Itoa(j+1), Value: value})
			}
		}
	}
	return rows, nil
}

// newRenderer returns a lipgloss renderer for w. "auto" (or empty)
// detects the color profile from w; "always" forces 256 colors and
// "never" plain text, regardless of NO_COLOR.
func newRenderer(w io.Writer, color string) (*lipgloss.Renderer, error) {
	renderer := lipgloss.NewRenderer(w)
	switch color {
	case "", "auto":
	case "always":
		renderer.SetColorProfile(termenv.ANSI256)
	case "never":
		renderer.SetColorProfile(termenv.Ascii)
	default:
		return nil, fmt.Errorf("--color %q: want auto, always, or never", color)
	}
	return renderer, nil
}

// writeValueTable writes rows as two aligned columns, styled by
// renderer.
func writeValueTable(w io.Writer, renderer *lipgloss.Renderer, rows []valueRow) error {
	headerStyle := renderer.NewStyle().Bold(true)
	refStyle := renderer.NewStyle().Foreground(lipgloss.Color("6"))
	emptyStyle := renderer.NewStyle().Faint(true)

	width := len("REF")
	for _, row := range rows {
		width = max(width, utf8.RuneCountInString(row.Ref))
	}

	var builder strings.Builder
	builder.WriteString(headerStyle.Render(pad("REF", width)))
	builder.WriteString("  ")
	builder.WriteString(headerStyle.Render("VALUE"))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(refStyle.Render(pad(row.Ref, width)))
		builder.WriteString("  ")
		if row.Value == "" {
			builder.WriteString(emptyStyle.Render("(empty)"))
		} else {
			builder.WriteString(row.Value)
		}
		builder.WriteString("\n")
	}

	_, err := fmt.Fprint(w, builder.String())
	return err
}

func pad(text string, width int) string {
	return text + strings.Repeat(" ", width-utf8.RuneCountInString(text))
}
