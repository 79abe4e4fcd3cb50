package blob

import (
	"context"
	"fmt"
	"os"

	fsstore "genealogycore/internal/infra/blob/fs"
	memorystore "genealogycore/internal/infra/blob/memory"
	s3store "genealogycore/internal/infra/blob/s3"
)

// Open selects a Store implementation using environment variables.
//
//	GENEALOGYCORE_BLOB_DRIVER: fs|s3|memory (default fs)
//	GENEALOGYCORE_BLOB_FS_ROOT: directory root when driver=fs (default ./archivedata)
//	(S3 specific variables documented in the s3 driver)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("GENEALOGYCORE_BLOB_DRIVER")
	if driver == "" {
		driver = string(DriverFilesystem)
	}
	switch Driver(driver) {
	case DriverFilesystem:
		return fsstore.New(os.Getenv("GENEALOGYCORE_BLOB_FS_ROOT"))
	case DriverS3:
		return s3store.OpenFromEnv(ctx)
	case DriverMemory:
		return memorystore.New(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}
