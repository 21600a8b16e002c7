// Command batch extracts outlines for every supported document in an
// input directory, writing one JSON file per document to the output
// directory. Failures are logged and skipped so one bad document never
// stops the run; the command fails only when nothing succeeds.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/provider"
)

var (
	inputDir   string
	outputDir  string
	workers    int
	strategy   string
	noiseWords string
)

var rootCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract document outlines in bulk",
	Long: `Batch scans the input directory for supported documents (PDF, HTML,
Markdown, DOCX, plain text) and writes an outline JSON file per document
to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := slog.New(slog.NewTextHandler(os.Stderr, nil))

		opts := outline.Options{}
		if noiseWords != "" {
			for _, w := range strings.Split(noiseWords, ",") {
				if w = strings.TrimSpace(w); w != "" {
					opts.NoiseWords = append(opts.NoiseWords, w)
				}
			}
		}
		extractor, err := outline.ForName(strategy, opts)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		entries, err := os.ReadDir(inputDir)
		if err != nil {
			return fmt.Errorf("read input dir: %w", err)
		}

		var files []string
		for _, e := range entries {
			if e.IsDir() || !provider.IsSupportedExtension(e.Name()) {
				continue
			}
			files = append(files, e.Name())
		}
		if len(files) == 0 {
			log.Warn("no supported documents found", "dir", inputDir)
			return nil
		}

		if workers < 1 {
			workers = 1
		}
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		var mu sync.Mutex
		processed, failed := 0, 0

		start := time.Now()
		for _, name := range files {
			sem <- struct{}{}
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				defer func() { <-sem }()
				if err := processFile(extractor, name, log); err != nil {
					log.Error("document failed", "file", name, "error", err)
					mu.Lock()
					failed++
					mu.Unlock()
					return
				}
				mu.Lock()
				processed++
				mu.Unlock()
			}(name)
		}
		wg.Wait()

		log.Info("batch complete",
			"processed", processed,
			"failed", failed,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		if processed == 0 {
			return fmt.Errorf("all %d documents failed", failed)
		}
		return nil
	},
}

func processFile(extractor outline.Strategy, name string, log *slog.Logger) error {
	p, err := provider.ForFile(name)
	if err != nil {
		return err
	}

	f, err := os.Open(filepath.Join(inputDir, name))
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	start := time.Now()
	doc, err := p.Extract(f, name)
	if err != nil {
		return fmt.Errorf("extract layout: %w", err)
	}

	result := extractor.Extract(doc)
	if result.Title == "" {
		result.Title = provider.BaseTitle(name)
	}
	outline.ValidateOutline(&result)

	outName := provider.BaseTitle(name) + ".json"
	outPath := filepath.Join(outputDir, outName)
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal outline: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write outline: %w", err)
	}

	log.Info("document processed",
		"file", name,
		"title", result.Title,
		"headings", len(result.Headings),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&inputDir, "input", "i", "input", "Directory containing documents to process")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "output", "Directory to write outline JSON files to")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 4, "Number of documents to process concurrently")
	rootCmd.Flags().StringVarP(&strategy, "strategy", "s", "threshold", "Outline strategy (threshold, rank)")
	rootCmd.Flags().StringVar(&noiseWords, "noise-words", "", "Comma-separated boilerplate vocabulary override")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
