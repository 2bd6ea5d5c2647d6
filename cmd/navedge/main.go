// Command navedge analyzes boundary documents.
//
// Usage:
//
//	navedge -input scene.json [-config navedge.yaml] [-pretty]
//	navedge -serve :8080 [-input scene.json] [-config navedge.yaml]
//
// Without -serve the document is analyzed once and the snapshot is written to
// stdout as JSON ("-" reads the document from stdin). With -serve the HTTP API
// is started; a given -input becomes the source for POST /v1/rebuild.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/navedge/awareness"
	"github.com/katalvlaran/navedge/httpapi"
	"github.com/katalvlaran/navedge/schema"
)

// options are the parsed command-line flags.
type options struct {
	configPath string
	inputPath  string
	serveAddr  string
	pretty     bool
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("navedge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML config file (defaults apply when empty)")
	fs.StringVar(&o.inputPath, "input", "", "boundary document, - for stdin")
	fs.StringVar(&o.serveAddr, "serve", "", "listen address for the HTTP API")
	fs.BoolVar(&o.pretty, "pretty", false, "indent JSON output")
	fs.BoolVar(&o.verbose, "v", false, "log snapshot summaries to stderr")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.serveAddr == "" && o.inputPath == "" {
		return options{}, errors.New("navedge: one of -input or -serve is required")
	}

	return o, nil
}

func loadConfig(path string) (awareness.Config, error) {
	if path == "" {
		return awareness.DefaultConfig(), nil
	}

	return awareness.LoadConfigFile(path)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// analyze runs a single document through a fresh analyzer and writes the snapshot.
// A document radius limits the input to segments near the origin.
func analyze(ctx context.Context, o options, cfg awareness.Config, v *schema.Validator, stdin io.Reader, stdout, stderr io.Writer) error {
	data, err := readInput(o.inputPath, stdin)
	if err != nil {
		return fmt.Errorf("navedge: read input: %w", err)
	}
	doc, err := v.Decode(data)
	if err != nil {
		return err
	}
	if doc.Radius > 0 {
		cfg.SearchRadius = doc.Radius
	}

	opts := []awareness.Option{
		awareness.WithConfig(cfg),
		awareness.WithLocator(doc.Locator()),
		awareness.WithSource(awareness.StaticSource{Segments: doc.Segments}),
	}
	if o.verbose {
		opts = append(opts, awareness.WithLogger(log.New(stderr, "", log.LstdFlags)))
	}
	a, err := awareness.NewAnalyzer(opts...)
	if err != nil {
		return err
	}

	var snap *awareness.Snapshot
	if doc.Radius > 0 {
		if snap, err = a.Rebuild(ctx, doc.Origin); err != nil {
			return err
		}
	} else {
		snap = a.Analyze(awareness.Input{Origin: doc.Origin, Segments: doc.Segments, Locator: doc.Locator()})
	}

	return writeJSON(stdout, snap, o.pretty)
}

// serve runs the HTTP API until ctx is cancelled or the listener fails.
func serve(ctx context.Context, o options, cfg awareness.Config, v *schema.Validator, stdin io.Reader) error {
	opts := []awareness.Option{
		awareness.WithConfig(cfg),
		awareness.WithLogger(log.Default()),
	}
	if o.inputPath != "" {
		data, err := readInput(o.inputPath, stdin)
		if err != nil {
			return fmt.Errorf("navedge: read input: %w", err)
		}
		doc, err := v.Decode(data)
		if err != nil {
			return err
		}
		opts = append(opts,
			awareness.WithSource(awareness.StaticSource{Segments: doc.Segments}),
			awareness.WithLocator(doc.Locator()),
		)
	}
	a, err := awareness.NewAnalyzer(opts...)
	if err != nil {
		return err
	}

	return httpapi.NewServer(o.serveAddr, a, v).ListenAndServe(ctx)
}

// run is main without the process exit, for tests.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}
	v, err := schema.NewValidator()
	if err != nil {
		return err
	}
	if o.serveAddr != "" {
		return serve(ctx, o, cfg, v, stdin)
	}

	return analyze(ctx, o, cfg, v, stdin, stdout, stderr)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(v)
}
