// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bureau-foundation/edi/cmd/edi/cli"
	"github.com/bureau-foundation/edi/lib/config"
	"github.com/bureau-foundation/edi/lib/delimiter"
	"github.com/bureau-foundation/edi/lib/segment"
)

// InputOptions are the flags shared by every command that reads a
// segment. Embed it in a command's params struct.
type InputOptions struct {
	ConfigPath  string        `json:"-" flag:"config" desc:"config file (default: $EDI_CONFIG, else built-in profiles)"`
	Profile     string        `json:"-" flag:"profile,p" desc:"delimiter profile (default: the config's default_profile)"`
	Delimiters  delimiter.Set `json:"-" flag:"delimiters,d" desc:"delimiter set as terminator, element, sub-element (e.g. '~*:'); overrides --profile"`
	Text        string        `json:"-" flag:"text,t" desc:"segment text (default: positional argument or stdin)"`
	KeepNewline bool          `json:"-" flag:"keep-newline" desc:"do not trim one trailing newline from the input"`
	LogLevel    string        `json:"-" flag:"log-level" desc:"log level: debug, info, warn, error (default: the config's log_level)"`
}

// session is the resolved state a command runs with: configuration,
// the input delimiter set, and a logger at the configured level.
type session struct {
	config     *config.Config
	delimiters delimiter.Set
	logger     *slog.Logger
}

// loadConfig resolves the configuration: --config, then EDI_CONFIG,
// then the built-in defaults.
func (o *InputOptions) loadConfig() (*config.Config, error) {
	switch {
	case o.ConfigPath != "":
		return config.LoadFile(o.ConfigPath)
	case os.Getenv(config.EnvironmentVariable) != "":
		return config.Load()
	default:
		return config.Default(), nil
	}
}

// streams are the I/O endpoints a command runs against.
type streams struct {
	stdin  io.Reader
	stdout io.Writer

	// logger, when nil, is replaced by a command logger on stderr at
	// the resolved level.
	logger *slog.Logger
}

func standardStreams() streams {
	return streams{stdin: os.Stdin, stdout: os.Stdout}
}

// open resolves configuration, log level, and delimiters.
func (o *InputOptions) open(endpoints streams) (*session, error) {
	logger := endpoints.logger
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if o.LogLevel != "" {
		if err := level.UnmarshalText([]byte(o.LogLevel)); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
	}
	if logger == nil {
		logger = cli.NewCommandLogger(level)
	}

	delimiters := o.Delimiters
	if delimiters.IsZero() {
		delimiters, err = lookupProfile(cfg, o.Profile)
		if err != nil {
			return nil, err
		}
	}

	s := &session{config: cfg, delimiters: delimiters, logger: logger}
	if err := s.checkDelimiters(delimiters); err != nil {
		return nil, err
	}
	return s, nil
}

// lookupProfile is [config.Config.Profile] with a suggestion for a
// mistyped profile name.
func lookupProfile(cfg *config.Config, name string) (delimiter.Set, error) {
	set, err := cfg.Profile(name)
	if err != nil && name != "" {
		if suggestion := cli.Suggest(name, cfg.ProfileNames()); suggestion != "" {
			return set, fmt.Errorf("%w (did you mean %q?)", err, suggestion)
		}
	}
	return set, err
}

// checkDelimiters rejects an ambiguous set under strict_delimiters and
// otherwise logs a warning per collision.
func (s *session) checkDelimiters(set delimiter.Set) error {
	if s.config.StrictDelimiters {
		return set.CheckUnambiguous()
	}
	for _, collision := range set.Collisions() {
		s.logger.Warn("ambiguous delimiter set",
			"delimiters", set.String(),
			"collision", collision.String(),
		)
	}
	return nil
}

// readText returns the segment text from --text, the positional
// argument, or stdin, in that order of preference. One trailing "\n"
// or "\r\n" is trimmed unless --keep-newline is set.
func (o *InputOptions) readText(positional string, stdin io.Reader) (string, error) {
	text := o.Text
	switch {
	case text != "" && positional != "":
		return "", fmt.Errorf("segment text given both as --text and as argument %q", positional)
	case text == "" && positional != "":
		text = positional
	case text == "":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	if !o.KeepNewline {
		if trimmed, ok := strings.CutSuffix(text, "\r\n"); ok {
			text = trimmed
		} else {
			text = strings.TrimSuffix(text, "\n")
		}
	}
	return text, nil
}

// read resolves the segment text and parses it with the session
// delimiters. A segment id that is not 2 or 3 characters long is
// parsed anyway and reported as a warning.
func (s *session) read(options *InputOptions, positional string, stdin io.Reader) (*segment.Segment, error) {
	text, err := options.readText(positional, stdin)
	if err != nil {
		return nil, err
	}

	seg := segment.Parse(text, s.delimiters)
	if !seg.IsIDValid() {
		s.logger.Warn("segment id is not 2 or 3 characters", "id", seg.ID())
	}
	return seg, nil
}

// optionalArg returns args[0], or "" when args is empty, after checking
// that at most one argument was given.
func optionalArg(command string, args []string) (string, error) {
	if err := cli.MaxArgs(command, args, 1); err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}
	return args[0], nil
}

// writeSegment prints the segment text followed by a newline.
func writeSegment(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}
