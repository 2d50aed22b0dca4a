package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/memtree-bench/internal/logging"
	"github.com/aretw0/memtree-bench/pkg/domain"
	"github.com/aretw0/memtree-bench/pkg/ports"
)

// Provisioner implements ports.Provisioner on the local filesystem.
type Provisioner struct {
	fetcher ports.Fetcher
	logger  *slog.Logger
}

// Option configures the provisioner.
type Option func(*Provisioner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provisioner) {
		p.logger = logger
	}
}

// NewProvisioner creates a provisioner that downloads missing files with fetcher.
func NewProvisioner(fetcher ports.Fetcher, opts ...Option) *Provisioner {
	p := &Provisioner{
		fetcher: fetcher,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ensure fetches every dataset whose local path does not exist, in order.
// It stops at the first failure.
func (p *Provisioner) Ensure(ctx context.Context, refs ...domain.DatasetRef) error {
	for _, ref := range refs {
		if err := p.ensure(ctx, ref); err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrProvision, ref.Name, err)
		}
	}
	return nil
}

func (p *Provisioner) ensure(ctx context.Context, ref domain.DatasetRef) error {
	present, err := exists(ref.Path)
	if err != nil {
		return err
	}
	if present {
		p.logger.Debug("dataset present", "path", ref.Path)
		return nil
	}

	p.logger.Info("fetching dataset", "url", ref.URL, "path", ref.Path)
	start := time.Now()

	body, err := p.fetcher.Fetch(ctx, ref.URL)
	if err != nil {
		return err
	}
	defer body.Close()

	n, err := writeAtomic(ref.Path, body)
	if err != nil {
		return err
	}

	p.logger.Info("dataset fetched", "path", ref.Path, "bytes", n, "elapsed", time.Since(start))
	return nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

// writeAtomic streams r into a temp file in the destination directory and renames it
// to path once the copy and close both succeed.
func writeAtomic(path string, r io.Reader) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.part")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	n, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return n, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return n, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return n, fmt.Errorf("failed to move download into place: %w", err)
	}
	return n, nil
}
