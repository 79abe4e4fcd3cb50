// Command genealogy-convert converts between hierarchical genealogy records
// and the flat relational XML document, in either direction.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"genealogycore/internal/blob"
	"genealogycore/internal/convert"
	"genealogycore/internal/flatxml"
	"genealogycore/internal/metrics"
	"genealogycore/internal/runlog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	mode        string
	in          string
	out         string
	archive     bool
	metricsAddr string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("genealogy-convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.mode, "mode", "", "conversion direction: import (records to flat XML) or export (flat XML to records); inferred from -in extension when empty")
	fs.StringVar(&opts.in, "in", "", "input file (default stdin)")
	fs.StringVar(&opts.out, "out", "", "output file (default stdout)")
	fs.BoolVar(&opts.archive, "archive", false, "archive input and output to the configured blob store")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while converting")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	direction, err := resolveDirection(opts.mode, opts.in)
	if err != nil {
		fmt.Fprintf(stderr, "genealogy-convert: %v\n", err)
		return 2
	}

	input, err := readInput(opts.in, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "genealogy-convert: %v\n", err)
		return 1
	}

	log, err := runlog.Open()
	if err != nil {
		fmt.Fprintf(stderr, "genealogy-convert: open run log: %v\n", err)
		return 1
	}
	defer func() { _ = log.Close() }()

	m := metrics.New()
	if opts.metricsAddr != "" {
		go func() {
			if err := m.Serve(opts.metricsAddr); err != nil {
				fmt.Fprintf(stderr, "genealogy-convert: metrics endpoint: %v\n", err)
			}
		}()
	}

	ctx := context.Background()
	record := runlog.Run{
		ID:        runlog.NewID(),
		Direction: string(direction),
		Input:     opts.in,
		Output:    opts.out,
		StartedAt: time.Now().UTC(),
	}

	output, summary, convErr := convertOnce(direction, input)
	record.Persons = summary.Persons
	record.Relationships = summary.Relationships
	record.Marriages = summary.Marriages
	record.Families = summary.Families
	record.Diagnostics = summary.Result.Diagnostics
	record.FinishedAt = time.Now().UTC()

	for _, d := range summary.Result.Diagnostics {
		fmt.Fprintf(stderr, "genealogy-convert: %s %s %s: %s\n", d.Kind, d.Entity, d.EntityID, d.Message)
	}

	if convErr != nil {
		record.Status = runlog.StatusFailed
		record.Error = convErr.Error()
		finishRun(ctx, log, m, record, stderr)
		fmt.Fprintf(stderr, "genealogy-convert: %v\n", convErr)
		return 1
	}
	record.Status = runlog.StatusCompleted

	if err := writeOutput(opts.out, stdout, output); err != nil {
		record.Status = runlog.StatusFailed
		record.Error = err.Error()
		finishRun(ctx, log, m, record, stderr)
		fmt.Fprintf(stderr, "genealogy-convert: %v\n", err)
		return 1
	}

	if opts.archive {
		if err := archiveRun(ctx, record.ID, opts.in, input, output); err != nil {
			fmt.Fprintf(stderr, "genealogy-convert: archive: %v\n", err)
		}
	}

	finishRun(ctx, log, m, record, stderr)
	return 0
}

// resolveDirection applies the explicit mode, falling back to the input file
// extension: record files import, XML files export.
func resolveDirection(mode, in string) (convert.Direction, error) {
	switch mode {
	case string(convert.DirectionImport):
		return convert.DirectionImport, nil
	case string(convert.DirectionExport):
		return convert.DirectionExport, nil
	case "":
	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}
	switch strings.ToLower(filepath.Ext(in)) {
	case ".ged", ".gedcom":
		return convert.DirectionImport, nil
	case ".xml":
		return convert.DirectionExport, nil
	}
	return "", fmt.Errorf("cannot infer direction from %q; pass -mode import|export", in)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return b, nil
}

func convertOnce(direction convert.Direction, input []byte) ([]byte, convert.Summary, error) {
	var buf bytes.Buffer
	switch direction {
	case convert.DirectionImport:
		doc, summary, err := convert.Import(bytes.NewReader(input))
		if err != nil {
			return nil, summary, err
		}
		if err := flatxml.Write(&buf, doc); err != nil {
			return nil, summary, err
		}
		return buf.Bytes(), summary, nil
	default:
		doc, summary, err := convert.Export(bytes.NewReader(input))
		if err != nil {
			return nil, summary, err
		}
		if err := doc.Write(&buf); err != nil {
			return nil, summary, err
		}
		return buf.Bytes(), summary, nil
	}
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func archiveRun(ctx context.Context, runID, inName string, input, output []byte) error {
	store, err := blob.Open(ctx)
	if err != nil {
		return err
	}
	inKey := fmt.Sprintf("runs/%s/input%s", runID, filepath.Ext(inName))
	if _, err := store.Put(ctx, inKey, bytes.NewReader(input), blob.PutOptions{}); err != nil {
		return err
	}
	outKey := fmt.Sprintf("runs/%s/output", runID)
	_, err = store.Put(ctx, outKey, bytes.NewReader(output), blob.PutOptions{})
	return err
}

func finishRun(ctx context.Context, log runlog.Store, m *metrics.Metrics, record runlog.Run, stderr io.Writer) {
	if record.FinishedAt.IsZero() {
		record.FinishedAt = time.Now().UTC()
	}
	m.ObserveRun(record)
	if err := log.Record(ctx, record); err != nil {
		fmt.Fprintf(stderr, "genealogy-convert: record run: %v\n", err)
	}
}
