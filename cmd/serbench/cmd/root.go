// Package cmd implements the serbench command line.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arloliu/serbench/bench"
	"github.com/arloliu/serbench/format"
	"github.com/arloliu/serbench/report"
	"github.com/arloliu/serbench/sample"
)

type rootFlags struct {
	output      string
	formats     []string
	compressors []string
	wide        bool
	stats       bool
	noColor     bool
	logLevel    string
}

// NewRootCmd creates the serbench root command.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "serbench",
		Short: "Compare serialized and compressed record sizes",
		Long: `serbench encodes a sample record with several serialization formats,
compresses every encoding with several compressors, verifies each round trip,
and prints the resulting sizes and their reduction relative to JSON.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&flags.output, "output", "o", string(report.FormatTable), "Output format: table or json")
	f.StringSliceVar(&flags.formats, "formats", nil, "Serialization formats to measure (default borsh,cbor,msgpack,protobuf)")
	f.StringSliceVar(&flags.compressors, "compressors", nil, "Compressors to apply (default brotli,gzip,deflate,zlib,lz4,snappy,s2,zstd)")
	f.BoolVar(&flags.wide, "wide", false, "Measure the 128-bit record (borsh only)")
	f.BoolVar(&flags.stats, "stats", false, "Show compress and decompress timings")
	f.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	f.StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	return rootCmd
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, flags *rootFlags) error {
	log, err := newLogger(cmd, flags)
	if err != nil {
		return err
	}

	// Redirected output gets a plain table without escape sequences.
	if !isTerminal(cmd.OutOrStdout()) {
		pterm.DisableStyling()
	} else if flags.noColor {
		pterm.DisableColor()
	}

	outFormat, err := report.ParseFormat(flags.output)
	if err != nil {
		return err
	}

	opts, err := runnerOptions(flags)
	if err != nil {
		return err
	}

	runner, err := bench.NewRunner(log, opts...)
	if err != nil {
		return err
	}

	rep, err := runner.Run()
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	return report.Write(cmd.OutOrStdout(), rep, outFormat, report.WithStats(flags.stats))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func newLogger(cmd *cobra.Command, flags *rootFlags) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(flags.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: flags.noColor})

	return log, nil
}

func runnerOptions(flags *rootFlags) ([]bench.Option, error) {
	var opts []bench.Option

	formats := flags.formats
	if flags.wide {
		opts = append(opts, bench.WithRecord(sample.NewWide()))
		if len(formats) == 0 {
			formats = []string{format.SerializationBorsh.String()}
		}
	}

	if len(formats) > 0 {
		types := make([]format.SerializationType, 0, len(formats))
		for _, name := range formats {
			t, err := format.ParseSerializationType(name)
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
		opts = append(opts, bench.WithFormats(types...))
	}

	if len(flags.compressors) > 0 {
		types := make([]format.CompressionType, 0, len(flags.compressors))
		for _, name := range flags.compressors {
			// "none" is implied by the uncompressed rows
			if strings.EqualFold(strings.TrimSpace(name), format.CompressionNone.String()) {
				continue
			}

			t, err := format.ParseCompressionType(name)
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
		opts = append(opts, bench.WithCompressions(types...))
	}

	return opts, nil
}
