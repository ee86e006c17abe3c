package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"deal-checker/models"
)

var csvHeader = []string{
	"url", "title", "image_url", "price", "km", "ez", "rating",
	"market_estimate", "potential", "lang", "created_at",
}

// CSVWriter appends scans to a CSV file. It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter opens the CSV file at path for appending, writing the header
// row when the file is new. Intermediate directories are created.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("csv: open file %q: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: stat file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("csv: write header: %w", err)
		}
		w.Flush()
	}

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends one scan and flushes it to disk.
func (c *CSVWriter) Write(_ context.Context, s *models.Scan) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	row := []string{
		s.URL,
		s.Title,
		s.ImageURL,
		strconv.Itoa(s.Price),
		strconv.Itoa(s.Km),
		s.EZ,
		s.Rating,
		strconv.Itoa(s.MarketEstimate),
		strconv.Itoa(s.Potential),
		s.Lang,
		s.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := c.writer.Write(row); err != nil {
		return fmt.Errorf("csv: write row: %w", err)
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writer.Flush()
	return c.file.Close()
}
