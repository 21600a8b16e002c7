package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/resultstore"
)

// Orchestrator manages the outline extraction pipeline.
type Orchestrator struct {
	jobs     *JobStore
	queue    chan *Job
	store    *resultstore.Client
	storeSem chan struct{}
	stats    *ExtractStats
	log      *slog.Logger
	cfg      config.Config
	opts     outline.Options

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the pipeline. The store client may be nil when
// no result store is configured.
func NewOrchestrator(cfg config.Config, store *resultstore.Client, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:     NewJobStore(cfg.JobTTL),
		queue:    make(chan *Job, cfg.MaxQueueSize),
		store:    store,
		storeSem: make(chan struct{}, cfg.MaxConcurrentStore),
		stats:    NewExtractStats(time.Hour),
		log:      log,
		cfg:      cfg,
		opts: outline.Options{
			NoiseWords:    cfg.NoiseWords,
			TitleMergeGap: cfg.TitleMergeGap,
		},
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.store, o.storeSem, o.log, o.stats, o.opts)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// NewJob builds a queued job for an uploaded file.
func (o *Orchestrator) NewJob(filename, strategy string, data []byte) *Job {
	if strategy == "" {
		strategy = o.cfg.Strategy
	}
	now := time.Now()
	job := &Job{
		ID:        generateULID(),
		DocID:     generateULID(),
		Status:    StatusQueued,
		Phase:     "queued",
		Filename:  filename,
		Strategy:  strategy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetFileData(data)
	return job
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Stats returns the extraction latency tracker.
func (o *Orchestrator) Stats() *ExtractStats {
	return o.stats
}

// StoreClient returns the result store client for direct use by API
// handlers, or nil when no store is configured.
func (o *Orchestrator) StoreClient() *resultstore.Client {
	return o.store
}
