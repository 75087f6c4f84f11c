package google

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/logger"
)

// Clients bundles the Workspace API clients built by a Bootstrap.
type Clients struct {
	Sheets   *sheets.Service
	Calendar *calendar.Service
	Drive    *drive.Service
}

// BuildFunc constructs the API client bundle. It runs at most once per
// successful initialisation; a failed attempt may run again on the next
// call.
type BuildFunc func(ctx context.Context) (*Clients, error)

type bootState int

const (
	bootIdle bootState = iota
	bootBuilding
	bootReady
)

// Bootstrap lazily constructs the Workspace API clients on first use.
//
// Concurrent first calls collapse into a single build: one caller runs
// the BuildFunc while the rest wait and share its outcome. A failed
// build resets to idle so a later call can retry.
type Bootstrap struct {
	mu      sync.Mutex
	state   bootState
	done    chan struct{}
	clients *Clients
	err     error
	build   BuildFunc
}

// NewBootstrap creates a bootstrap around the given build function.
func NewBootstrap(build BuildFunc) *Bootstrap {
	return &Bootstrap{build: build}
}

// DefaultBuild returns a BuildFunc that constructs the Sheets, Calendar
// and Drive services against the production endpoints. It fails fast
// with ErrConfigMissing when no OAuth client ID is configured.
func DefaultBuild(clientID string, ts oauth2.TokenSource) BuildFunc {
	return func(ctx context.Context) (*Clients, error) {
		if clientID == "" {
			return nil, fmt.Errorf("%w: google.client_id", domain.ErrConfigMissing)
		}

		sheetsSvc, err := sheets.NewService(ctx, option.WithTokenSource(ts))
		if err != nil {
			return nil, fmt.Errorf("create sheets client: %w", err)
		}

		calendarSvc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
		if err != nil {
			return nil, fmt.Errorf("create calendar client: %w", err)
		}

		driveSvc, err := drive.NewService(ctx, option.WithTokenSource(ts))
		if err != nil {
			return nil, fmt.Errorf("create drive client: %w", err)
		}

		return &Clients{
			Sheets:   sheetsSvc,
			Calendar: calendarSvc,
			Drive:    driveSvc,
		}, nil
	}
}

// Clients returns the API client bundle, building it on first call.
// Callers arriving during a build wait for it and share its outcome.
func (b *Bootstrap) Clients(ctx context.Context) (*Clients, error) {
	b.mu.Lock()

	switch b.state {
	case bootReady:
		clients := b.clients
		b.mu.Unlock()
		return clients, nil

	case bootBuilding:
		done := b.done
		b.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-done:
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		if b.state == bootReady {
			return b.clients, nil
		}
		return nil, b.err

	case bootIdle:
		b.state = bootBuilding
		done := make(chan struct{})
		b.done = done
		b.mu.Unlock()

		logger.Debug("google: building API clients")
		clients, err := b.build(ctx)

		b.mu.Lock()
		if err != nil {
			b.state = bootIdle
			b.err = err
			logger.Warn("google: client build failed: %v", err)
		} else {
			b.state = bootReady
			b.clients = clients
			b.err = nil
		}
		close(done)
		b.mu.Unlock()

		return clients, err
	}

	b.mu.Unlock()
	return nil, fmt.Errorf("google: invalid bootstrap state")
}

// Ready reports whether the client bundle has been built.
func (b *Bootstrap) Ready() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state == bootReady
}

// Reset discards the built clients so the next call rebuilds them.
// Used after credential changes.
func (b *Bootstrap) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == bootBuilding {
		return
	}
	b.state = bootIdle
	b.clients = nil
	b.err = nil
}
