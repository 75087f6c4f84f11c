package memory

import (
	"context"
	"sync"
	"time"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
)

// Ensure AccessDirectory implements the interface.
var _ driven.AccessDirectory = (*AccessDirectory)(nil)

// AccessDirectory is an in-memory implementation of
// driven.AccessDirectory.
type AccessDirectory struct {
	mu       sync.RWMutex
	profiles map[string]domain.AccessProfile
	watchers map[int]chan domain.AccessChange
	nextID   int
}

// NewAccessDirectory creates a new in-memory access directory.
func NewAccessDirectory() *AccessDirectory {
	return &AccessDirectory{
		profiles: make(map[string]domain.AccessProfile),
		watchers: make(map[int]chan domain.AccessChange),
	}
}

// SetProfile stores a profile and notifies watchers.
func (d *AccessDirectory) SetProfile(profile domain.AccessProfile) {
	d.mu.Lock()
	d.profiles[profile.Email] = profile
	d.mu.Unlock()
	d.notify()
}

// Lookup resolves the profile for an email. Unknown identities
// resolve to the guest profile.
func (d *AccessDirectory) Lookup(_ context.Context, email string) (domain.AccessProfile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if profile, ok := d.profiles[email]; ok {
		return profile, nil
	}
	return domain.AccessProfile{Email: email, Role: domain.RoleGuest}, nil
}

// Watch delivers a notification whenever a profile changes.
func (d *AccessDirectory) Watch(ctx context.Context) (<-chan domain.AccessChange, error) {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	ch := make(chan domain.AccessChange, 1)
	d.watchers[id] = ch
	d.mu.Unlock()

	go func() {
		<-ctx.Done()
		d.mu.Lock()
		delete(d.watchers, id)
		d.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

func (d *AccessDirectory) notify() {
	d.mu.RLock()
	defer d.mu.RUnlock()
	change := domain.AccessChange{At: time.Now()}
	for _, ch := range d.watchers {
		select {
		case ch <- change:
		default:
		}
	}
}
