package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgallion1/outliner/internal/layout"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/provider"
	"github.com/dgallion1/outliner/internal/resultstore"
)

// Worker processes a single document job. storeSem, when non-nil, is
// shared across workers and bounds how many store publishes run at once.
type Worker struct {
	store    *resultstore.Client
	storeSem chan struct{}
	log      *slog.Logger
	stats    *ExtractStats
	opts     outline.Options
}

func NewWorker(store *resultstore.Client, storeSem chan struct{}, log *slog.Logger, stats *ExtractStats, opts outline.Options) *Worker {
	return &Worker{
		store:    store,
		storeSem: storeSem,
		log:      log,
		stats:    stats,
		opts:     opts,
	}
}

// Process runs the full extraction pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := provider.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	doc, err := p.Extract(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Compute content hash from the extracted text.
	job.ContentHash = ContentHashHex([]byte(flattenDocText(doc)))

	// Phase 1.5: Dedup check against the result store.
	if w.store != nil {
		existing, err := w.store.FindByHash(ctx, job.ContentHash)
		if err != nil {
			log.Warn("dedup check failed, proceeding", "error", err)
		} else if existing != nil {
			log.Info("duplicate document, reusing stored outline", "existing_doc_id", existing.DocID)
			job.SetResult(existing.Outline)
			if existing.Outline != nil {
				job.SetCounts(len(doc.Pages), len(existing.Outline.Headings))
			}
			job.SetStatus(StatusDupSkipped, "dedup")
			return
		}
	}

	// Phase 2: Infer the outline.
	job.SetStatus(StatusExtracting, "extracting")
	strategy, err := outline.ForName(job.Strategy, w.opts)
	if err != nil {
		log.Error("unknown strategy", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	start := time.Now()
	result := strategy.Extract(doc)
	w.stats.Record(time.Since(start).Milliseconds())

	if result.Title == "" {
		result.Title = provider.BaseTitle(job.Filename)
	}
	dropped := outline.ValidateOutline(&result)
	if dropped > 0 {
		log.Warn("dropped invalid headings", "count", dropped)
	}
	job.SetResult(&result)
	job.SetCounts(len(doc.Pages), len(result.Headings))
	log.Info("extraction complete", "title", result.Title, "headings", len(result.Headings))

	// Phase 3: Publish to the result store, if one is configured.
	if w.store == nil {
		job.SetStatus(StatusCompleted, "done")
		return
	}

	job.SetStatus(StatusStoring, "storing")
	if w.storeSem != nil {
		select {
		case w.storeSem <- struct{}{}:
			defer func() { <-w.storeSem }()
		case <-ctx.Done():
			job.AddError(fmt.Sprintf("store: %s", ctx.Err()))
			job.SetStatus(StatusPartial, "storing")
			return
		}
	}
	rec := resultstore.OutlineRecord{
		DocID:       job.DocID,
		Filename:    job.Filename,
		ContentHash: job.ContentHash,
		Strategy:    job.Strategy,
		Outline:     &result,
		CreatedAt:   job.CreatedAt.Format(time.RFC3339),
	}

	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		lastErr = w.store.PutOutline(ctx, rec)
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		log.Warn("retryable store error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			lastErr = ctx.Err()
		}
		if ctx.Err() != nil {
			break
		}
	}
	if lastErr != nil {
		log.Error("store failed", "error", lastErr)
		job.AddError(fmt.Sprintf("store: %s", lastErr))
		// The outline was still extracted; callers can read it from the job.
		job.SetStatus(StatusPartial, "storing")
		return
	}

	job.SetStatus(StatusCompleted, "done")
}

// flattenDocText extracts all text from a layout document into a single
// string for hashing.
func flattenDocText(doc *layout.Document) string {
	var sb strings.Builder
	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				text := strings.TrimSpace(line.Text())
				if text == "" {
					continue
				}
				if sb.Len() > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString(text)
			}
		}
	}
	return sb.String()
}
