package integrity

import (
	"context"
	"errors"

	"asset-bridge/core/resources"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Asset statuses.
const (
	StatusOK      = "ok"
	StatusMissing = "missing"
	StatusError   = "error"
)

// Resolver locates and reads assets.
type Resolver interface {
	Locate(c resources.Category, name string) (string, error)
	Resolve(c resources.Category, name string) ([]byte, error)
}

// AssetStatus is the outcome for one manifest entry.
type AssetStatus struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Path     string `json:"path,omitempty"`
	Size     int    `json:"size,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Report summarises a manifest check. Assets follow manifest order.
type Report struct {
	Total   int           `json:"total"`
	OK      int           `json:"ok"`
	Missing int           `json:"missing"`
	Failed  int           `json:"failed"`
	Assets  []AssetStatus `json:"assets"`
}

// Healthy reports whether every asset resolved.
func (r *Report) Healthy() bool {
	return r.OK == r.Total
}

// Service runs integrity checks.
type Service struct {
	resolver Resolver
	manifest string
	workers  int
	logger   *zap.Logger
}

// NewService creates a new integrity service. manifest is the default
// manifest path used by CheckConfigured.
func NewService(resolver Resolver, manifest string, workers int, logger *zap.Logger) *Service {
	if workers <= 0 {
		workers = 1
	}
	return &Service{
		resolver: resolver,
		manifest: manifest,
		workers:  workers,
		logger:   logger,
	}
}

// CheckConfigured loads the configured manifest and checks it.
func (s *Service) CheckConfigured(ctx context.Context) (*Report, error) {
	m, err := LoadManifest(s.manifest)
	if err != nil {
		return nil, err
	}
	return s.Check(ctx, m)
}

// Check resolves every manifest entry. It only fails if ctx is cancelled;
// per-asset problems are part of the report.
func (s *Service) Check(ctx context.Context, m *Manifest) (*Report, error) {
	entries := m.Entries()
	statuses := make([]AssetStatus, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, e := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			statuses[i] = s.checkOne(e)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Total: len(statuses), Assets: statuses}
	for _, st := range statuses {
		switch st.Status {
		case StatusOK:
			report.OK++
		case StatusMissing:
			report.Missing++
			s.logger.Warn("Missing asset", zap.String("category", st.Category), zap.String("name", st.Name))
		default:
			report.Failed++
			s.logger.Warn("Unusable asset", zap.String("category", st.Category), zap.String("name", st.Name), zap.String("error", st.Error))
		}
	}
	return report, nil
}

func (s *Service) checkOne(e Entry) AssetStatus {
	st := AssetStatus{Category: e.Category.String(), Name: e.Name}

	path, err := s.resolver.Locate(e.Category, e.Name)
	if err != nil {
		st.Status = StatusError
		if errors.Is(err, resources.ErrNotFound) {
			st.Status = StatusMissing
		}
		st.Error = err.Error()
		return st
	}
	st.Path = path

	data, err := s.resolver.Resolve(e.Category, e.Name)
	if err != nil {
		st.Status = StatusError
		st.Error = err.Error()
		return st
	}

	st.Status = StatusOK
	st.Size = len(data)
	return st
}
