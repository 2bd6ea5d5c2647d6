package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navedge/awareness"
	"github.com/katalvlaran/navedge/schema"
)

const scene = `{
	"origin": {"x": 3.5, "y": 0.5},
	"segments": [
		{"start": {"x": 0, "y": 0}, "end": {"x": 1, "y": 0}},
		{"start": {"x": 1, "y": 0}, "end": {"x": 1, "y": 1}},
		{"start": {"x": 1, "y": 1}, "end": {"x": 0, "y": 1}},
		{"start": {"x": 0, "y": 1}, "end": {"x": 0, "y": 0}},
		{"start": {"x": 6, "y": 0}, "end": {"x": 7, "y": 0}},
		{"start": {"x": 7, "y": 0}, "end": {"x": 7, "y": 1}},
		{"start": {"x": 7, "y": 1}, "end": {"x": 6, "y": 1}},
		{"start": {"x": 6, "y": 1}, "end": {"x": 6, "y": 0}}
	]
}`

type output struct {
	Generation uint64            `json:"generation"`
	Radius     float64           `json:"radius"`
	Edges      []struct {
		Type string `json:"type"`
	} `json:"edges"`
	Entries    []struct {
		Width float64 `json:"width"`
	} `json:"entries"`
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (output, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	var out output
	if err == nil {
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out), stdout.String())
	}

	return out, err
}

func TestRun_AnalyzeFile(t *testing.T) {
	out, err := runCLI(t, "", "-input", writeFile(t, "scene.json", scene))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), out.Generation)
	assert.Len(t, out.Edges, 8)
	require.Len(t, out.Entries, 2)
	assert.InDelta(t, 5, out.Entries[0].Width, 1e-9)
}

func TestRun_AnalyzeStdinPretty(t *testing.T) {
	out, err := runCLI(t, scene, "-input", "-", "-pretty")
	require.NoError(t, err)
	assert.Len(t, out.Entries, 2)
}

// TestRun_Config applies a width limit from YAML.
func TestRun_Config(t *testing.T) {
	cfg := writeFile(t, "navedge.yaml", "max_passage_width: 4\n")
	out, err := runCLI(t, scene, "-input", "-", "-config", cfg)
	require.NoError(t, err)
	assert.Empty(t, out.Entries)

	bad := writeFile(t, "bad.yaml", "corner_angle: 720\n")
	_, err = runCLI(t, scene, "-input", "-", "-config", bad)
	assert.ErrorIs(t, err, awareness.ErrInvalidConfig)
}

// TestRun_Radius queries only the segments near the origin.
func TestRun_Radius(t *testing.T) {
	doc := strings.Replace(scene, `"origin": {"x": 3.5, "y": 0.5},`, `"origin": {"x": 0.5, "y": 0.5}, "radius": 2,`, 1)
	out, err := runCLI(t, doc, "-input", "-")
	require.NoError(t, err)
	assert.Equal(t, 2.0, out.Radius)
	assert.Len(t, out.Edges, 4)

	far := strings.Replace(scene, `"origin": {"x": 3.5, "y": 0.5},`, `"origin": {"x": 900, "y": 900}, "radius": 2,`, 1)
	_, err = runCLI(t, far, "-input", "-")
	assert.ErrorIs(t, err, awareness.ErrNoBoundaryData)
}

func TestRun_Errors(t *testing.T) {
	_, err := runCLI(t, "")
	assert.Error(t, err, "needs -input or -serve")

	_, err = runCLI(t, `{"segments": 3}`, "-input", "-")
	assert.ErrorIs(t, err, schema.ErrInvalidDocument)

	_, err = runCLI(t, "", "-input", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestRun_AnalyzeInterior applies the document's interior polygons to a
// one-shot analysis.
func TestRun_AnalyzeInterior(t *testing.T) {
	doc := `{
	"segments": [
		{"start": {"x": 0, "y": 0}, "end": {"x": 1, "y": 0}},
		{"start": {"x": 1, "y": 0}, "end": {"x": 1, "y": 1}},
		{"start": {"x": 1, "y": 1}, "end": {"x": 0, "y": 1}},
		{"start": {"x": 0, "y": 1}, "end": {"x": 0, "y": 0}}
	],
	"interior": [[{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 1, "y": 1}, {"x": 0, "y": 1}]]
}`
	out, err := runCLI(t, doc, "-input", "-")
	require.NoError(t, err)
	require.Len(t, out.Edges, 4)
	for _, e := range out.Edges {
		assert.Equal(t, "Wall", e.Type)
	}
}

// TestRun_ServeListenError reports a bad listen address instead of hanging.
func TestRun_ServeListenError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- run(context.Background(), []string{"-serve", "127.0.0.1:99999"}, strings.NewReader(""), &stdout, &stderr)
	}()
	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "httpapi: listen")
		assert.False(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return on a listen error")
	}
}

// TestRun_ServeStopsOnCancel starts and stops the HTTP API.
func TestRun_ServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	err := run(ctx, []string{"-serve", "127.0.0.1:0", "-input", "-"}, strings.NewReader(scene), &stdout, &stderr)
	assert.NoError(t, err)
}
