// Package report renders benchmark reports.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/arloliu/serbench/bench"
	"github.com/arloliu/serbench/internal/options"
)

// Format is an output format.
type Format string

const (
	// FormatTable renders an aligned text table.
	FormatTable Format = "table"
	// FormatJSON renders an indented JSON document.
	FormatJSON Format = "json"
)

// Table column headers.
const (
	HeaderMethod     = "Method"
	HeaderBytes      = "Bytes"
	HeaderReduction  = "Reduction from json (%)"
	HeaderCompress   = "Compress"
	HeaderDecompress = "Decompress"
)

// ParseFormat parses an output format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table or json)", s)
	}
}

// Config holds rendering options.
type Config struct {
	stats bool
}

// Option configures rendering.
type Option = options.Option[*Config]

// WithStats adds compress and decompress timing columns to the table.
// JSON output always carries timings.
func WithStats(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.stats = enabled
	})
}

// Write renders rep to w in the given format. Rows are written in report order.
func Write(w io.Writer, rep *bench.Report, f Format, opts ...Option) error {
	if rep == nil {
		return errors.New("report is nil")
	}

	config := &Config{}
	if err := options.Apply(config, opts...); err != nil {
		return err
	}

	switch f {
	case FormatTable:
		return writeTable(w, rep, config)
	case FormatJSON:
		return writeJSON(w, rep)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

func writeTable(w io.Writer, rep *bench.Report, config *Config) error {
	header := []string{HeaderMethod, HeaderBytes, HeaderReduction}
	if config.stats {
		header = append(header, HeaderCompress, HeaderDecompress)
	}

	data := make(pterm.TableData, 0, len(rep.Results)+1)
	data = append(data, header)

	for _, res := range rep.Results {
		row := []string{res.Method, strconv.Itoa(res.Bytes), strconv.Itoa(res.Reduction)}
		if config.stats {
			row = append(row,
				time.Duration(res.Stats.CompressionTimeNs).String(),
				time.Duration(res.Stats.DecompressionTimeNs).String(),
			)
		}
		data = append(data, row)
	}

	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderRowSeparator("-").
		WithData(data).
		Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	return nil
}

type jsonReport struct {
	Baseline int          `json:"baseline"`
	Results  []jsonResult `json:"results"`
}

type jsonResult struct {
	Method              string `json:"method"`
	Format              string `json:"format"`
	Compression         string `json:"compression"`
	Bytes               int    `json:"bytes"`
	Reduction           int    `json:"reduction"`
	Digest              string `json:"digest"`
	CompressionTimeNs   int64  `json:"compression_time_ns"`
	DecompressionTimeNs int64  `json:"decompression_time_ns"`
}

func writeJSON(w io.Writer, rep *bench.Report) error {
	doc := jsonReport{
		Baseline: rep.Baseline,
		Results:  make([]jsonResult, 0, len(rep.Results)),
	}

	for _, res := range rep.Results {
		doc.Results = append(doc.Results, jsonResult{
			Method:              res.Method,
			Format:              res.Format.String(),
			Compression:         res.Compression.String(),
			Bytes:               res.Bytes,
			Reduction:           res.Reduction,
			Digest:              fmt.Sprintf("%016x", res.Digest),
			CompressionTimeNs:   res.Stats.CompressionTimeNs,
			DecompressionTimeNs: res.Stats.DecompressionTimeNs,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write json report: %w", err)
	}

	return nil
}
