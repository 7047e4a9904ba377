package storage

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/patimanas321/ForgeLens/internal/usecase/content"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return content.ErrObjectNotFound
	case "NoSuchBucket":
		return content.ErrBucketNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return content.ErrUnauthorized
	default:
		// catch everything else
		return fmt.Errorf("%w: %v", content.ErrInternal, err)
	}
}
