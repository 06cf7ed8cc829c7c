package s3

import (
	"context"
	"errors"

	"github.com/aws/smithy-go"

	"file-storage-api/internal/apperrors"
)

// mapError translates an AWS SDK error into an *apperrors.Error.
func mapError(err error, msg string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.Wrap(apperrors.KindTimeout, msg, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return apperrors.Wrap(apperrors.KindNotFound, msg, err)
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return apperrors.Wrap(apperrors.KindUnauthorized, msg, err)
		case "InvalidBucketName", "InvalidObjectName", "KeyTooLongError":
			return apperrors.Wrap(apperrors.KindBadRequest, msg, err)
		case "RequestTimeout", "SlowDown":
			return apperrors.Wrap(apperrors.KindTimeout, msg, err)
		}
	}

	return apperrors.Wrap(apperrors.KindInternal, msg, err)
}

// isNotFound matches the errors HeadObject returns for a missing key.
// Unlike GetObject it reports "NotFound" rather than "NoSuchKey".
func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NotFound" || code == "NoSuchKey"
	}
	return false
}
