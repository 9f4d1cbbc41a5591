package ports

import "context"

type S3Client interface {
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
	GetPublicURL(key string) string
	GetBucket() string
}
