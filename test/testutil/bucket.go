package testutil

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// ResetBucket empties and (re)creates the media bucket so each test starts
// from a blank store.
func ResetBucket(client *minio.Client) error {
	ctx := context.Background()

	exists, err := client.BucketExists(ctx, MediaBucket)
	if err != nil {
		return fmt.Errorf("could not check bucket %q: %w", MediaBucket, err)
	}
	if exists {
		for obj := range client.ListObjects(ctx, MediaBucket, minio.ListObjectsOptions{Recursive: true}) {
			if obj.Err != nil {
				continue
			}
			_ = client.RemoveObject(ctx, MediaBucket, obj.Key, minio.RemoveObjectOptions{})
		}
		return nil
	}

	if err := client.MakeBucket(ctx, MediaBucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("could not create bucket %q: %w", MediaBucket, err)
	}
	return nil
}
