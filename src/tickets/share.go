package tickets

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"travelbook/src/models"

	"github.com/redis/go-redis/v9"
)

var ErrSharingDisabled = errors.New("ticket sharing is not configured")

// UploadFunc stores the PDF and returns a presigned URL. lib.S3PutAndPresign in production.
type UploadFunc func(ctx context.Context, bucket, key, contentType string, body []byte, ttl time.Duration) (string, error)

type Sharer struct {
	rdb    redis.Cmdable
	bucket string
	ttl    time.Duration
	upload UploadFunc
}

func NewSharer(rdb *redis.Client, bucket string, ttl time.Duration, upload UploadFunc) *Sharer {
	s := &Sharer{bucket: bucket, ttl: ttl, upload: upload}
	if rdb != nil {
		s.rdb = rdb
	}
	return s
}

func (s *Sharer) Enabled() bool {
	return s != nil && s.bucket != "" && s.upload != nil
}

func cacheKey(b models.Booking) string {
	return fmt.Sprintf("ticket:%s:%s:url", b.ID, b.Status)
}

// Link returns a cached presigned URL or uploads pdf and caches the new one slightly
// shorter than its validity.
func (s *Sharer) Link(ctx context.Context, b models.Booking, pdf func() ([]byte, error)) (string, error) {
	if !s.Enabled() {
		return "", ErrSharingDisabled
	}
	if s.rdb != nil {
		url, err := s.rdb.Get(ctx, cacheKey(b)).Result()
		if err == nil {
			return url, nil
		}
		if !errors.Is(err, redis.Nil) {
			log.Printf("[Tickets] Error reading cached link for %s: %s\n", b.ID, err.Error())
		}
	}
	data, err := pdf()
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("tickets/%s/%s", b.ID, FileName(b))
	url, err := s.upload(ctx, s.bucket, key, "application/pdf", data, s.ttl)
	if err != nil {
		return "", err
	}
	if s.rdb != nil {
		if err := s.rdb.SetEx(ctx, cacheKey(b), url, s.ttl-time.Minute).Err(); err != nil {
			log.Printf("[Tickets] Error caching link for %s: %s\n", b.ID, err.Error())
		}
	}
	return url, nil
}
