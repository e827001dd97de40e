// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/edi/cmd/edi/cli"
	"github.com/bureau-foundation/edi/lib/codec"
	"github.com/bureau-foundation/edi/lib/delimiter"
	"github.com/bureau-foundation/edi/lib/segment"
)

type encodeParams struct {
	InputOptions
	Hex      bool              `json:"-" flag:"hex,x" desc:"write hex instead of binary CBOR"`
	Compress codec.Compression `json:"-" flag:"compress" desc:"compress the record: none, lz4, or zstd"`
}

func encodeCommand() *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode a segment as a CBOR structural record",
		Description: `Parse a segment and write its structural record as deterministic CBOR.

The record holds the segment id, the delimiter set, whether a terminator
was present, and every element (a value, or the components of a
composite). It is the record "edi segment parse --json" prints. Binary
output is refused when stdout is a terminal; use --hex there.

Records written by successive runs concatenate into a CBOR sequence
that "edi segment decode" reads back. With --compress the record is
written as a zstd or LZ4 frame; decode detects either.`,
		Usage: "edi segment encode [text] [flags]",
		Examples: []cli.Example{
			{
				Description: "Hex-encoded record",
				Command:     "edi segment encode --hex 'TST*AA:1:1*BB:5*ZZ~'",
			},
			{
				Description: "Round-trip through CBOR",
				Command:     "edi segment encode 'TST*AA:1:1*BB:5*ZZ~' | edi segment decode",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("encode", &params)
		},
		Run: func(args []string) error {
			if !params.Hex && cli.IsTerminal(os.Stdout) {
				return fmt.Errorf("encode: refusing to write binary CBOR to a terminal (use --hex)")
			}
			return runEncode(&params, args, standardStreams())
		},
	}
}

func runEncode(params *encodeParams, args []string, endpoints streams) error {
	positional, err := optionalArg("encode", args)
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

	data, err := codec.MarshalSegment(seg)
	if err != nil {
		return err
	}
	data, err = codec.Compress(data, params.Compress)
	if err != nil {
		return err
	}
	if params.Hex {
		_, err = fmt.Fprintln(endpoints.stdout, hex.EncodeToString(data))
		return err
	}
	_, err = endpoints.stdout.Write(data)
	return err
}

type decodeParams struct {
	cli.JSONOutput
	Hex      bool          `json:"-" flag:"hex,x" desc:"treat input as hex-encoded CBOR"`
	Diag     bool          `json:"-" flag:"diag" desc:"print CBOR diagnostic notation instead of segments"`
	To       delimiter.Set `json:"-" flag:"to" desc:"write segments with this delimiter set instead of their own"`
	LogLevel string        `json:"-" flag:"log-level" desc:"log level: debug, info, warn, error"`
}

func decodeCommand() *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode CBOR structural records back to segment text",
		Description: `Read a CBOR sequence of segment records and print each segment.

Input is the file named by the positional argument, or stdin. A zstd
or LZ4 frame (from "edi segment encode --compress" or an archive tool)
is decompressed first. Each record is validated: its delimiter set must be complete and no value
may contain one of its delimiters. Segments are printed one per line
with the delimiters recorded in them unless --to is given.

With --json the records are printed as a JSON array. With --diag the
raw input is printed in CBOR diagnostic notation.`,
		Usage: "edi segment decode [file] [flags]",
		Examples: []cli.Example{
			{
				Description: "Decode records from a file",
				Command:     "edi segment decode segments.cbor",
			},
			{
				Description: "Inspect a hex record",
				Command:     "echo 83... | edi segment decode --hex --diag",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("decode", &params)
		},
		Run: func(args []string) error {
			return runDecode(&params, args, standardStreams())
		},
	}
}

func runDecode(params *decodeParams, args []string, endpoints streams) error {
	path, err := optionalArg("decode", args)
	if err != nil {
		return err
	}
	logger, err := params.logger(endpoints)
	if err != nil {
		return err
	}
	data, err := readBinaryInput(path, endpoints.stdin, params.Hex)
	if err != nil {
		return err
	}
	data, compression, err := codec.Decompress(data)
	if err != nil {
		return err
	}
	logger.Debug("decode input", "bytes", len(data), "compression", compression.String())

	if params.Diag {
		return writeDiagnostics(endpoints.stdout, data)
	}

	segments, err := codec.ReadSegments(bytes.NewReader(data))
	if err != nil {
		return err
	}

	if params.OutputJSON {
		records := make([]segment.Record, 0, len(segments))
		for _, seg := range segments {
			records = append(records, seg.Record())
		}
		return cli.WriteJSON(endpoints.stdout, records)
	}

	logger.Debug("segments decoded", "count", len(segments))
	for _, seg := range segments {
		text := seg.String()
		if !params.To.IsZero() {
			text = seg.Format(segment.WithDelimiters(params.To))
		}
		if err := writeSegment(endpoints.stdout, text); err != nil {
			return err
		}
	}
	return nil
}

// logger returns the endpoint logger, or a command logger at
// --log-level (default info).
func (p *decodeParams) logger(endpoints streams) (*slog.Logger, error) {
	if endpoints.logger != nil {
		return endpoints.logger, nil
	}
	level := slog.LevelInfo
	if p.LogLevel != "" {
		if err := level.UnmarshalText([]byte(p.LogLevel)); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
	}
	return cli.NewCommandLogger(level), nil
}

// writeDiagnostics prints each item of a CBOR sequence in diagnostic
// notation, one per line.
func writeDiagnostics(w io.Writer, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty input: expected CBOR data")
	}
	remaining := data
	for len(remaining) > 0 {
		notation, rest, err := codec.DiagnoseFirst(remaining)
		if err != nil {
			offset := len(data) - len(remaining)
			return fmt.Errorf("diagnose CBOR at byte %d: %w", offset, err)
		}
		if _, err := fmt.Fprintln(w, notation); err != nil {
			return err
		}
		remaining = rest
	}
	return nil
}

// readBinaryInput reads path, or stdin when path is empty. In hex mode
// whitespace is stripped and the remainder hex-decoded.
func readBinaryInput(path string, stdin io.Reader, hexMode bool) ([]byte, error) {
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	} else {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	if !hexMode {
		return data, nil
	}

	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}
