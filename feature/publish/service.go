package publish

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"asset-bridge/core/resources"
	"asset-bridge/core/storage"

	"github.com/hashicorp/go-multierror"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Resolver resolves an asset to its bytes.
type Resolver interface {
	Resolve(c resources.Category, name string) ([]byte, error)
}

// Object describes one uploaded asset.
type Object struct {
	Name string `json:"name"`
	Key  string `json:"key"`
	Size int64  `json:"size"`
	ETag string `json:"etag,omitempty"`
}

// Report is the outcome of a publish run. Uploaded keeps the input order of
// the assets that succeeded.
type Report struct {
	Bucket        string   `json:"bucket"`
	BucketCreated bool     `json:"bucket_created"`
	Uploaded      []Object `json:"uploaded"`
	Failed        []string `json:"failed,omitempty"`
}

// Service publishes assets to a bucket.
type Service struct {
	resolver Resolver
	client   storage.Client
	bucket   string
	region   string
	workers  int
	logger   *zap.Logger
}

// NewService creates a new publish service.
func NewService(resolver Resolver, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Service{
		resolver: resolver,
		client:   client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		workers:  workers,
		logger:   logger,
	}
}

// ObjectKey returns the bucket key an asset is published under.
func ObjectKey(c resources.Category, name string) string {
	name = filepath.ToSlash(filepath.Clean(name))
	if c.Zipped() {
		name = strings.TrimSuffix(name, path.Ext(name)) + resources.ModelExtension
	}
	return path.Join(c.Dir(), name)
}

// Publish resolves every named asset of category c and uploads it.
// The returned error aggregates every per-asset failure; the report is
// always returned once the bucket is available.
func (s *Service) Publish(ctx context.Context, c resources.Category, names []string) (*Report, error) {
	created, err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region)
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info("Created bucket", zap.String("bucket", s.bucket))
	}

	var (
		mu      sync.Mutex
		errs    *multierror.Error
		results = make([]*Object, len(names))
	)

	var g errgroup.Group
	g.SetLimit(s.workers)

	for i, name := range names {
		g.Go(func() error {
			obj, err := s.publishOne(ctx, c, name)
			if err != nil {
				s.logger.Warn("Failed to publish asset", zap.String("name", name), zap.Error(err))
				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
				return nil
			}
			results[i] = obj
			return nil
		})
	}
	_ = g.Wait()

	report := &Report{Bucket: s.bucket, BucketCreated: created, Uploaded: []Object{}}
	for i, obj := range results {
		if obj == nil {
			report.Failed = append(report.Failed, names[i])
			continue
		}
		report.Uploaded = append(report.Uploaded, *obj)
	}

	return report, errs.ErrorOrNil()
}

func (s *Service) publishOne(ctx context.Context, c resources.Category, name string) (*Object, error) {
	data, err := s.resolver.Resolve(c, name)
	if err != nil {
		return nil, err
	}

	key := ObjectKey(c, name)
	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	s.logger.Info("Published asset", zap.String("key", key), zap.Int("bytes", len(data)))
	return &Object{Name: name, Key: key, Size: int64(len(data)), ETag: info.ETag}, nil
}
