package catalog

import (
	"context"
	"fmt"

	"itemgen/core/storage"

	"github.com/minio/minio-go/v7"
)

func (r *Router) fetchStorage(ctx context.Context, locator string) ([]byte, error) {
	if r.storage == nil {
		return nil, &FetchError{Locator: locator, Reason: "object storage is not configured"}
	}

	bucket, object, err := storage.ParseLocator(locator)
	if err != nil {
		return nil, newFetchError(locator, "invalid locator", err)
	}

	exists, err := r.storage.BucketExists(ctx, bucket)
	if err != nil {
		return nil, newFetchError(locator, "bucket check failed", err)
	}
	if !exists {
		return nil, &FetchError{Locator: locator, Reason: fmt.Sprintf("bucket %s not found", bucket)}
	}

	reader, err := r.storage.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, storageError(locator, err)
	}
	defer reader.Close()

	data, err := r.readAll(locator, reader)
	if err != nil {
		if fe, ok := err.(*FetchError); ok && fe.Err != nil {
			return nil, storageError(locator, fe.Err)
		}
		return nil, err
	}
	return data, nil
}

// storageError maps MinIO error responses to a readable reason.
func storageError(locator string, err error) *FetchError {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		fe := newFetchError(locator, "object not found", err)
		fe.StatusCode = resp.StatusCode
		return fe
	case "AccessDenied":
		fe := newFetchError(locator, "access denied", err)
		fe.StatusCode = resp.StatusCode
		return fe
	}
	return newFetchError(locator, "object read failed", err)
}
