package s3

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

var (
	ErrInvalidConfig  = errors.New("s3: bucket and region are required")
	ErrLoadConfig     = errors.New("s3: failed to load AWS config")
	ErrBucketNotFound = errors.New("s3: bucket not found")
)

// classifyError maps S3 failures onto the fs errors static.Send
// understands: missing keys become fs.ErrNotExist and denied access
// fs.ErrPermission. Everything else, context errors included, keeps its
// cause.
func classifyError(err error, op, key string) error {
	if err == nil {
		return nil
	}

	var nsk *types.NoSuchKey
	var nf *types.NotFound
	if errors.As(err, &nsk) || errors.As(err, &nf) {
		return &fs.PathError{Op: op, Path: key, Err: fs.ErrNotExist}
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return fmt.Errorf("%w: %w", ErrBucketNotFound, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return &fs.PathError{Op: op, Path: key, Err: fs.ErrNotExist}
		case "AccessDenied", "Forbidden":
			return &fs.PathError{Op: op, Path: key, Err: fs.ErrPermission}
		case "NoSuchBucket":
			return fmt.Errorf("%w: %w", ErrBucketNotFound, err)
		default:
			return fmt.Errorf("s3 %s %s failed (code: %s): %w", op, key, apiErr.ErrorCode(), err)
		}
	}

	return fmt.Errorf("s3 %s %s failed: %w", op, key, err)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
