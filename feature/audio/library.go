package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ttrpg-pi/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Slot is a button with its configured file.
type Slot struct {
	Button int    `json:"button"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// CheckReport lists the state of all eight slots.
type CheckReport struct {
	Slots        []Slot `json:"slots"`
	Missing      []int  `json:"missing"`
	Unconfigured []int  `json:"unconfigured"`
}

// SyncReport lists what a sync did per button.
type SyncReport struct {
	Downloaded []int          `json:"downloaded"`
	Skipped    []int          `json:"skipped"`
	NotInStore []int          `json:"not_in_store"`
	Failed     map[int]string `json:"failed,omitempty"`
}

// Check stats every configured file. files is keyed by button 1..8.
func Check(files map[int]string) *CheckReport {
	report := &CheckReport{}
	for button := 1; button <= 8; button++ {
		path, ok := files[button]
		if !ok || path == "" {
			report.Unconfigured = append(report.Unconfigured, button)
			continue
		}
		exists := fileExists(path)
		report.Slots = append(report.Slots, Slot{Button: button, Path: path, Exists: exists})
		if !exists {
			report.Missing = append(report.Missing, button)
		}
	}
	return report
}

// Service syncs the audio pack from a bucket.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewService creates a new audio library service.
func NewService(client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	return &Service{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// ObjectKey is the bucket key for a local audio path: prefix + base name.
func (s *Service) ObjectKey(path string) string {
	return s.prefix + filepath.Base(path)
}

// Sync downloads each configured file from the bucket. Files already on disk
// are kept unless overwrite is set. A failure on one slot does not stop the others.
func (s *Service) Sync(ctx context.Context, files map[int]string, overwrite bool) (*SyncReport, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	remote, err := s.listRemote(ctx)
	if err != nil {
		return nil, err
	}

	report := &SyncReport{Failed: map[int]string{}}
	for _, button := range sortedButtons(files) {
		path := files[button]
		key := s.ObjectKey(path)

		if !overwrite && fileExists(path) {
			report.Skipped = append(report.Skipped, button)
			continue
		}
		if !remote[key] {
			s.logger.Warn("Audio file not in bucket", zap.Int("button", button), zap.String("key", key))
			report.NotInStore = append(report.NotInStore, button)
			continue
		}
		if err := s.download(ctx, key, path); err != nil {
			s.logger.Error("Failed to download audio file", zap.Int("button", button), zap.String("key", key), zap.Error(err))
			report.Failed[button] = err.Error()
			continue
		}
		s.logger.Info("Downloaded audio file", zap.Int("button", button), zap.String("key", key), zap.String("path", path))
		report.Downloaded = append(report.Downloaded, button)
	}

	return report, nil
}

// listRemote collects the object keys under the prefix. The listing runs on
// its own context so an early return stops minio's lister goroutine.
func (s *Service) listRemote(ctx context.Context) (map[string]bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := map[string]bool{}
	opts := minio.ListObjectsOptions{Prefix: s.prefix, Recursive: false}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s/%s: %w", s.bucket, s.prefix, obj.Err)
		}
		if !strings.HasSuffix(obj.Key, "/") {
			keys[obj.Key] = true
		}
	}
	return keys, nil
}

// download writes the object next to path and renames it into place, so the
// server never sees a half-written file.
func (s *Service) download(ctx context.Context, key, path string) error {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to get object: %w", err)
	}
	defer obj.Close()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".sync-*.mp3")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, obj); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func sortedButtons(files map[int]string) []int {
	buttons := make([]int, 0, len(files))
	for b, p := range files {
		if b >= 1 && b <= 8 && p != "" {
			buttons = append(buttons, b)
		}
	}
	sort.Ints(buttons)
	return buttons
}
