package generator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"itemgen/core/storage"

	"github.com/minio/minio-go/v7"
)

// Stdout is the output target that writes to the sink's stdout writer.
const Stdout = "-"

// Sink writes generated source to an output target.
type Sink interface {
	Write(ctx context.Context, target string, data []byte) error
}

// OutputSink writes to stdout ("-"), object storage (s3://bucket/key) or a file path.
type OutputSink struct {
	stdout  io.Writer
	storage storage.Client
}

// NewOutputSink creates an OutputSink. store may be nil when no s3:// target is used.
func NewOutputSink(stdout io.Writer, store storage.Client) *OutputSink {
	return &OutputSink{stdout: stdout, storage: store}
}

// Write writes data to target in one step.
func (s *OutputSink) Write(ctx context.Context, target string, data []byte) error {
	switch {
	case target == "":
		return fmt.Errorf("no output target given")
	case target == Stdout:
		_, err := s.stdout.Write(data)
		return err
	case storage.IsLocator(target):
		return s.writeStorage(ctx, target, data)
	default:
		return writeFileAtomic(target, data)
	}
}

func (s *OutputSink) writeStorage(ctx context.Context, target string, data []byte) error {
	if s.storage == nil {
		return fmt.Errorf("write %s: object storage is not configured", target)
	}
	bucket, object, err := storage.ParseLocator(target)
	if err != nil {
		return err
	}
	_, err = s.storage.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "text/x-go; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

// writeFileAtomic replaces path with data via a temp file in the same directory,
// so readers never observe a partially written file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
