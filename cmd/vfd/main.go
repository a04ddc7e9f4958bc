package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/neurlang/vfd/analysis"
)

const resultsDir = "results"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
	os.Exit(run(os.Args[1:], os.Stdout, resultsDir))
}

func run(args []string, stdout io.Writer, outDir string) int {
	// Check if both filename arguments are provided
	if len(args) < 2 {
		fmt.Fprintln(stdout, "Usage: vfd <real_audio> <fake_audio>")
		return 1
	}

	inputs := []struct {
		path   string
		prefix string
	}{
		{args[0], "real"},
		{args[1], "fake"},
	}

	for _, in := range inputs {
		if _, err := os.Stat(in.path); err != nil {
			fmt.Fprintln(stdout, "One or both audio files do not exist.")
			return 1
		}
	}

	if err := analysis.EnsureDir(outDir); err != nil {
		slog.Error("cannot create results directory", "dir", outDir, "err", err)
		return 1
	}

	params := analysis.NewParams()
	records := make([]*analysis.Record, 0, len(inputs))
	for _, in := range inputs {
		fmt.Fprintf(stdout, "Analyzing %s (%s) ...\n", filepath.Base(in.path), in.prefix)
		rec, err := analysis.Analyze(in.path, in.prefix, outDir, params)
		if err != nil {
			slog.Error("analysis failed", "file", in.path, "prefix", in.prefix, "err", err)
			return 1
		}
		records = append(records, rec)
	}

	if err := analysis.WriteCSV(filepath.Join(outDir, "features.csv"), records); err != nil {
		slog.Error("cannot write feature table", "err", err)
		return 1
	}

	abs, err := filepath.Abs(outDir)
	if err != nil {
		abs = outDir
	}
	fmt.Fprintf(stdout, "Saved images and features into: %s\n", abs)
	return 0
}
