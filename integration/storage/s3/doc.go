// Package s3 stores validated form attachments in Amazon S3 or any
// S3-compatible service such as MinIO.
//
//	store, err := s3.New(ctx, s3.Config{Bucket: "businessos-uploads", Region: "eu-west-1"})
//	if err != nil {
//		return err
//	}
//	obj, err := store.Save(ctx, upload.Header, "expense/"+submissionID)
//
// Objects are keyed by the caller's directory plus the sanitized filename.
// Keys containing ".." are rejected with ErrInvalidKey.
//
// SDK failures are mapped onto package sentinels (ErrFileNotFound,
// ErrAccessDenied, ErrServiceUnavailable and friends) so callers can use
// errors.Is without importing the AWS SDK.
//
// Healthcheck plugs into the readiness endpoint:
//
//	health.Readiness(log, store.Healthcheck())
package s3
