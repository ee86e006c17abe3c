package storage

import (
	"context"

	"deal-checker/models"
)

// ScanWriter is the interface any archive backend must satisfy.
type ScanWriter interface {
	Write(ctx context.Context, scan *models.Scan) error
	Close() error
}
