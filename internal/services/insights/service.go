package insights

import (
	"context"
	"sort"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"backstage/internal/domain"
	"backstage/internal/ports"
)

// maxParallelReads bounds the snapshot fan-out so one dashboard load does not
// take the whole connection pool.
const maxParallelReads = 4

type Service struct {
	catalog ports.CatalogReader
	clock   clockwork.Clock
}

func New(catalog ports.CatalogReader, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{catalog: catalog, clock: clock}
}

// Analyze reads the current records and scans them. A collection that fails
// to load is logged and left out; only a cancelled context is an error.
func (s *Service) Analyze(ctx context.Context) (domain.Analysis, error) {
	snap, unavailable, err := s.Load(ctx)
	if err != nil {
		return domain.Analysis{}, err
	}
	res := Scan(snap, s.clock.Now())
	res.Unavailable = unavailable
	return res, nil
}

// Load fetches every collection concurrently. The reads are independent, so
// their completion order does not matter.
func (s *Service) Load(ctx context.Context) (Snapshot, []string, error) {
	var (
		snap        Snapshot
		mu          sync.Mutex
		unavailable []string
	)
	logger := zerolog.Ctx(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)

	read := func(name string, fetch func(context.Context) error) {
		g.Go(func() error {
			err := fetch(gctx)
			if err == nil {
				return nil
			}
			if gctx.Err() != nil {
				return gctx.Err()
			}
			logger.Warn().Err(err).Str("collection", name).Msg("collection unavailable, skipping its checks")
			mu.Lock()
			unavailable = append(unavailable, name)
			mu.Unlock()
			return nil
		})
	}

	read("artists", func(ctx context.Context) (err error) {
		snap.Artists, err = s.catalog.ListArtists(ctx)
		return err
	})
	read("contracts", func(ctx context.Context) (err error) {
		snap.Contracts, err = s.catalog.ListContracts(ctx)
		return err
	})
	read("releases", func(ctx context.Context) (err error) {
		snap.Releases, err = s.catalog.ListReleases(ctx)
		return err
	})
	read("financial_transactions", func(ctx context.Context) (err error) {
		snap.Transactions, err = s.catalog.ListTransactions(ctx)
		return err
	})
	read("projects", func(ctx context.Context) (err error) {
		snap.Projects, err = s.catalog.ListProjects(ctx)
		return err
	})
	read("music_registry", func(ctx context.Context) (err error) {
		snap.Works, err = s.catalog.ListWorks(ctx)
		return err
	})
	read("artist_goals", func(ctx context.Context) (err error) {
		snap.Goals, err = s.catalog.ListGoals(ctx)
		return err
	})
	read("agenda_events", func(ctx context.Context) (err error) {
		snap.Events, err = s.catalog.ListEvents(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, nil, err
	}
	sort.Strings(unavailable)
	snap = present(snap, unavailable)
	return snap, unavailable, nil
}

// present makes the absent/empty distinction explicit: a failed read is
// nil whatever the repository returned, a successful empty read is non-nil.
func present(snap Snapshot, unavailable []string) Snapshot {
	missing := make(map[string]bool, len(unavailable))
	for _, name := range unavailable {
		missing[name] = true
	}
	snap.Artists = keep(snap.Artists, missing["artists"])
	snap.Contracts = keep(snap.Contracts, missing["contracts"])
	snap.Releases = keep(snap.Releases, missing["releases"])
	snap.Transactions = keep(snap.Transactions, missing["financial_transactions"])
	snap.Projects = keep(snap.Projects, missing["projects"])
	snap.Works = keep(snap.Works, missing["music_registry"])
	snap.Goals = keep(snap.Goals, missing["artist_goals"])
	snap.Events = keep(snap.Events, missing["agenda_events"])
	return snap
}

func keep[T any](rows []T, failed bool) []T {
	if failed {
		return nil
	}
	if rows == nil {
		return []T{}
	}
	return rows
}
