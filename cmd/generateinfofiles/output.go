package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/Niyi08/GenerateIntoFiles/internal/fixture"
	"github.com/Niyi08/GenerateIntoFiles/internal/generator"
	"github.com/Niyi08/GenerateIntoFiles/internal/manifest"
)

func printGenerators(w io.Writer) {
	fmt.Fprintf(w, "%-10s %-8s %s\n", "NAME", "DEFAULT", "FORMAT")
	for _, name := range generator.List() {
		g, err := generator.Get(name, generator.Options{})
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%-10s %-8d %s\n", name, g.DefaultCount(), g.Description())
	}
}

func printHistory(w io.Writer, store manifest.Store) error {
	runs, err := store.LoadRuns()
	if err != nil {
		return fmt.Errorf("loading runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded")
		return nil
	}

	last, err := store.LastRunID()
	if err != nil {
		return fmt.Errorf("loading last run: %w", err)
	}

	fmt.Fprintf(w, "  %-36s %-20s %-16s %-6s %-10s %s\n", "RUN ID", "STARTED", "AGE", "FILES", "SIZE", "STATUS")
	fmt.Fprintln(w, "──────────────────────────────────────────────────────────────────────────────────────────────────────")
	for _, r := range runs {
		status := "ok"
		if r.Failed() {
			status = "failed"
		}
		marker := " "
		if r.ID == last {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-36s %-20s %-16s %-6d %-10s %s\n",
			marker,
			r.ID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			humanize.Time(r.StartedAt),
			len(r.Files),
			humanize.Bytes(uint64(r.TotalBytes())),
			status)
		for _, f := range r.Files {
			line := fmt.Sprintf("      %-9s %s (%d/%d lines)", f.Generator, f.Path, f.Lines, f.Requested)
			if f.Error != "" {
				line += ": " + f.Error
			}
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

// progressBars draws one bar per file on w
func progressBars(w io.Writer) fixture.ProgressFunc {
	return func(label string, total int) func(int) {
		if total == 0 {
			return nil
		}
		bar := progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(label),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		return func(n int) {
			_ = bar.Add(n)
		}
	}
}
