package storage

import (
	"context"
	"fmt"
	"time"

	"deal-checker/config"
	"deal-checker/models"
	"deal-checker/utils"
)

const archiveWriteTimeout = 10 * time.Second

// Archiver records completed scans in the background. A nil *Archiver is
// valid and drops everything.
type Archiver struct {
	writer ScanWriter
	pool   *utils.WorkerPool
	logger *utils.Logger
}

// NewArchiver wraps writer with a background pool of the given size.
func NewArchiver(writer ScanWriter, workers int, logger *utils.Logger) *Archiver {
	return &Archiver{
		writer: writer,
		pool:   utils.NewWorkerPool(workers),
		logger: logger,
	}
}

// Open builds the archiver configured by cfg. It returns nil when archiving
// is disabled.
func Open(ctx context.Context, cfg *config.Config, logger *utils.Logger) (*Archiver, error) {
	retry := &utils.RetryConfig{
		MaxAttempts: cfg.MaxRetries,
		BaseDelay:   2 * time.Second,
		Logger:      logger,
	}

	var (
		w   ScanWriter
		err error
	)
	switch cfg.ArchiveBackend {
	case "", config.ArchiveNone:
		return nil, nil
	case config.ArchivePostgres:
		w, err = NewPostgresWriter(ctx, cfg.DSN(), retry)
	case config.ArchiveSQLite:
		w, err = NewSQLiteWriter(ctx, cfg.SQLitePath, retry)
	case config.ArchiveCSV:
		w, err = NewCSVWriter(cfg.CSVOutputPath)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownArchive, cfg.ArchiveBackend)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("[archive] Recording scans to %s backend", cfg.ArchiveBackend)
	return NewArchiver(w, cfg.ArchiveWorkers, logger), nil
}

// Record queues scan for writing. Failures are logged, never returned.
func (a *Archiver) Record(scan *models.Scan) {
	if a == nil || scan == nil {
		return
	}
	accepted := a.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), archiveWriteTimeout)
		defer cancel()
		if err := a.writer.Write(ctx, scan); err != nil {
			a.logger.Capture(err, "[archive] Failed to record scan of %s", scan.URL)
			return
		}
		a.logger.Debug("[archive] Recorded scan of %s", scan.URL)
	})
	if !accepted {
		a.logger.Warn("[archive] Archive closed, dropping scan of %s", scan.URL)
	}
}

// Close waits for queued writes and closes the backend.
func (a *Archiver) Close() error {
	if a == nil {
		return nil
	}
	a.pool.Close()
	return a.writer.Close()
}
