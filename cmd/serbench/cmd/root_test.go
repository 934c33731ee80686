package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_DefaultTable(t *testing.T) {
	stdout, _, err := execute(t)
	require.NoError(t, err)

	require.Contains(t, stdout, "Reduction from json (%)")
	for _, method := range []string{"json", "borsh", "cbor", "borsh(brotli)", "cbor(snappy)", "borsh(lz4)"} {
		require.Contains(t, stdout, method)
	}
}

func TestRoot_JSONSelection(t *testing.T) {
	stdout, _, err := execute(t, "-o", "json", "--formats", "borsh,cbor", "--compressors", "brotli,snap")
	require.NoError(t, err)

	var doc struct {
		Baseline int `json:"baseline"`
		Results  []struct {
			Method    string `json:"method"`
			Reduction int    `json:"reduction"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	require.Equal(t, 149, doc.Baseline)
	require.Len(t, doc.Results, 1+2*3)

	methods := make([]string, 0, len(doc.Results))
	for _, r := range doc.Results {
		methods = append(methods, r.Method)
	}
	require.ElementsMatch(t, []string{
		"json", "borsh", "borsh(brotli)", "borsh(snappy)", "cbor", "cbor(brotli)", "cbor(snappy)",
	}, methods)
}

func TestRoot_Wide(t *testing.T) {
	stdout, _, err := execute(t, "--wide", "--compressors", "none,gzip", "-o", "json")
	require.NoError(t, err)
	require.Contains(t, stdout, `"borsh(gzip)"`)
	require.Contains(t, stdout, `"bytes": 84`)
}

func TestRoot_Stats(t *testing.T) {
	stdout, _, err := execute(t, "--stats", "--formats", "borsh", "--compressors", "zstd")
	require.NoError(t, err)
	require.Contains(t, strings.SplitN(stdout, "\n", 2)[0], "Decompress")
}

func TestRoot_DebugLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "--log-level", "debug", "--no-color", "--formats", "borsh", "--compressors", "lz4")
	require.NoError(t, err)
	require.Contains(t, stderr, "Measured")
	require.Contains(t, stderr, "component=bench")
	require.NotContains(t, stdout, "Measured")
}

func TestRoot_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown output", []string{"-o", "xml"}},
		{"unknown format", []string{"--formats", "xml"}},
		{"json as format", []string{"--formats", "json"}},
		{"unknown compressor", []string{"--compressors", "bzip2"}},
		{"bad log level", []string{"--log-level", "loud"}},
		{"positional args", []string{"extra"}},
		{"wide with protobuf", []string{"--wide", "--formats", "protobuf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			require.Contains(t, stderr, "Error:")
		})
	}
}

func TestRoot_RedirectedTableHasNoEscapes(t *testing.T) {
	pterm.EnableStyling()
	t.Cleanup(pterm.EnableStyling)

	stdout, _, err := execute(t, "--formats", "borsh", "--compressors", "snappy")
	require.NoError(t, err)

	require.Contains(t, stdout, "borsh(snappy)")
	require.NotContains(t, stdout, "\x1b[")
}

func TestIsTerminal(t *testing.T) {
	require.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	require.False(t, isTerminal(f))
}
