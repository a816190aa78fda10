package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/bootstrap"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/view"
	"github.com/riskibarqy/fpl-dashboard/internal/platform/cache"
	"github.com/riskibarqy/fpl-dashboard/internal/platform/logging"
)

const (
	snapshotCacheKey = "fpl:bootstrap"
	fixturesCacheKey = "fpl:fixtures"
)

type FPLDataProvider interface {
	FetchBootstrap(ctx context.Context) (bootstrap.Payload, error)
	FetchFixtures(ctx context.Context) ([]fixture.Fixture, error)
}

// Snapshot is one built bootstrap. Version increases with every successful build.
type Snapshot struct {
	Version   uint64
	Tables    Tables
	FetchedAt time.Time
}

// Dataset is what a render reads: a snapshot plus any notices raised while obtaining it.
type Dataset struct {
	Snapshot *Snapshot
	Notices  []view.Notice
}

type DataStatus struct {
	Version        uint64        `json:"version"`
	FetchedAt      *time.Time    `json:"fetchedAt,omitempty"`
	ExpiresAt      *time.Time    `json:"expiresAt,omitempty"`
	Players        int           `json:"players"`
	Teams          int           `json:"teams"`
	HasPositions   bool          `json:"hasPositions"`
	FixturesCached bool          `json:"fixturesCached"`
	Notices        []view.Notice `json:"notices,omitempty"`
}

type DatasetService struct {
	provider FPLDataProvider
	datasets *cache.Store[Dataset]
	fixtures *cache.Store[fixturesResult]
	lastGood atomic.Pointer[Snapshot]
	versions atomic.Uint64
	logger   *logging.Logger
	now      func() time.Time
}

type fixturesResult struct {
	items []fixture.Fixture
	err   error
}

func NewDatasetService(provider FPLDataProvider, ttl time.Duration, logger *logging.Logger) *DatasetService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DatasetService{
		provider: provider,
		datasets: cache.NewStore[Dataset](ttl),
		fixtures: cache.NewStore[fixturesResult](ttl),
		logger:   logger,
		now:      time.Now,
	}
}

var emptySnapshot = &Snapshot{Tables: mustEmptyTables()}

func mustEmptyTables() Tables {
	tables, _ := BuildTables(bootstrap.Payload{})
	return tables
}

// Dataset returns the cached dataset, fetching and building it when the TTL
// has lapsed. A failed fetch or build is cached too, as the last good
// snapshot (or an empty one) plus an error notice, so upstream is not
// contacted again until the TTL lapses or Refresh runs.
func (s *DatasetService) Dataset(ctx context.Context) Dataset {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.Dataset")
	defer span.End()

	dataset, err := s.datasets.GetOrLoad(ctx, snapshotCacheKey, s.loadDataset)
	if err != nil {
		dataset = s.fallback(ctx, err)
	}
	return Dataset{Snapshot: dataset.Snapshot, Notices: slices.Clone(dataset.Notices)}
}

func (s *DatasetService) loadDataset(ctx context.Context) (Dataset, error) {
	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		// a cancelled caller is not an upstream outcome
		if ctx.Err() != nil {
			return Dataset{}, err
		}
		return s.fallback(ctx, err), nil
	}
	return Dataset{Snapshot: snapshot, Notices: []view.Notice{}}, nil
}

func (s *DatasetService) fallback(ctx context.Context, err error) Dataset {
	notice := view.Notice{Level: view.NoticeError}
	switch {
	case crerr.Is(err, ErrMissingColumn):
		notice.Text = "Error preparing data: " + err.Error()
	default:
		notice.Text = "Error fetching data: " + err.Error()
	}
	s.logger.WarnContext(ctx, "serving fallback dataset", "error", err)

	snapshot := s.lastGood.Load()
	if snapshot == nil {
		snapshot = emptySnapshot
	}
	return Dataset{Snapshot: snapshot, Notices: []view.Notice{notice}}
}

func (s *DatasetService) loadSnapshot(ctx context.Context) (*Snapshot, error) {
	raw, err := s.provider.FetchBootstrap(ctx)
	if err != nil {
		return nil, err
	}

	tables, err := BuildTables(raw)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Version:   s.versions.Add(1),
		Tables:    tables,
		FetchedAt: s.now().UTC(),
	}
	s.lastGood.Store(snapshot)
	s.logger.InfoContext(ctx, "fpl snapshot built",
		"version", snapshot.Version,
		"players", len(tables.Players),
		"teams", len(tables.Teams),
		"has_positions", tables.HasPositions,
	)
	return snapshot, nil
}

// Fixtures returns the cached fixture list. A fetch error is cached like a
// result and returned to the caller, which renders it on the fixtures page only.
func (s *DatasetService) Fixtures(ctx context.Context) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.Fixtures")
	defer span.End()

	result, err := s.fixtures.GetOrLoad(ctx, fixturesCacheKey, s.loadFixtures)
	if err != nil {
		return nil, err
	}
	return result.items, result.err
}

func (s *DatasetService) loadFixtures(ctx context.Context) (fixturesResult, error) {
	items, err := s.provider.FetchFixtures(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch fixtures failed", "error", err)
		if ctx.Err() != nil {
			return fixturesResult{}, err
		}
		return fixturesResult{err: err}, nil
	}
	return fixturesResult{items: items}, nil
}

// Refresh drops both cached entries, including cached failures, and rebuilds
// them in parallel. The previous snapshot keeps serving until the new one is stored.
func (s *DatasetService) Refresh(ctx context.Context) (DataStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.Refresh")
	defer span.End()

	s.datasets.Invalidate(ctx, snapshotCacheKey)
	s.fixtures.Invalidate(ctx, fixturesCacheKey)

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		dataset := s.Dataset(ctx)
		if len(dataset.Notices) > 0 {
			return fmt.Errorf("%w: %s", ErrDependencyUnavailable, dataset.Notices[0].Text)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		if _, err := s.Fixtures(ctx); err != nil {
			return fmt.Errorf("refresh fixtures: %w", err)
		}
		return nil
	})
	err := p.Wait()

	status := s.Status()
	if err != nil {
		return status, err
	}
	s.logger.InfoContext(ctx, "fpl data refreshed", "version", status.Version)
	return status, nil
}

func (s *DatasetService) Status() DataStatus {
	status := DataStatus{}
	snapshot := s.lastGood.Load()
	if snapshot != nil {
		fetchedAt := snapshot.FetchedAt
		status.Version = snapshot.Version
		status.FetchedAt = &fetchedAt
		status.Players = len(snapshot.Tables.Players)
		status.Teams = len(snapshot.Tables.Teams)
		status.HasPositions = snapshot.Tables.HasPositions
	}
	if dataset, ok := s.datasets.Get(context.Background(), snapshotCacheKey); ok {
		status.Notices = slices.Clone(dataset.Notices)
	}
	if storedAt, ok := s.datasets.StoredAt(snapshotCacheKey); ok && s.datasets.TTL() > 0 {
		expiresAt := storedAt.Add(s.datasets.TTL()).UTC()
		status.ExpiresAt = &expiresAt
	}
	if fixtures, ok := s.fixtures.Get(context.Background(), fixturesCacheKey); ok {
		status.FixturesCached = fixtures.err == nil
	}
	return status
}
