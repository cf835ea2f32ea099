package storage

import (
	"context"
	"io"
)

// RecordingStore persists interview recording files and returns a stable
// reference that is stored on the interview record.
type RecordingStore interface {
	Save(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}
