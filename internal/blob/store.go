package blob

import (
	"context"

	fsstore "genealogycore/internal/infra/blob/fs"
	memorystore "genealogycore/internal/infra/blob/memory"
	s3store "genealogycore/internal/infra/blob/s3"
)

// NewFilesystem returns a filesystem-backed Store rooted at path.
func NewFilesystem(root string) (Store, error) { return fsstore.New(root) }

// NewMemory returns an in-memory Store suitable for tests.
func NewMemory() Store { return memorystore.New() }

// S3Config configures the S3 driver.
type S3Config = s3store.Config

// NewS3 constructs an S3-backed Store from the provided configuration.
func NewS3(ctx context.Context, cfg S3Config) (Store, error) {
	return s3store.New(ctx, cfg)
}
