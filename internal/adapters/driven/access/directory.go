package access

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
	"github.com/xiangteng007/senteng-design-system/internal/logger"
)

// Ensure Directory implements the interface.
var _ driven.AccessDirectory = (*Directory)(nil)

// Directory is a TOML-file-backed implementation of
// driven.AccessDirectory. The file is maintained by the back office;
// the console only reads it. Edits take effect live through Watch.
//
// File format:
//
//	[roles]
//	admin = ["dashboard", "projects", "schedule", "folders", "settings"]
//	designer = ["projects", "schedule"]
//
//	[[members]]
//	email = "mei@senteng.design"
//	role = "admin"
type Directory struct {
	mu       sync.RWMutex
	path     string
	profiles map[string]domain.AccessProfile
}

// directoryFile is the on-disk TOML shape.
type directoryFile struct {
	Roles   map[string][]string `toml:"roles"`
	Members []memberEntry       `toml:"members"`
}

type memberEntry struct {
	Email string `toml:"email"`
	Role  string `toml:"role"`
}

// NewDirectory creates a directory reading the TOML file at path.
// A missing file is not an error; every identity then resolves to
// guest until the back office writes one.
func NewDirectory(path string) (*Directory, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".senteng", "access.toml")
	}

	d := &Directory{
		path:     path,
		profiles: make(map[string]domain.AccessProfile),
	}

	if err := d.reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Path returns the directory file path.
func (d *Directory) Path() string {
	return d.path
}

// Lookup resolves the profile for an account email. Unknown
// identities resolve to the guest profile, not an error.
func (d *Directory) Lookup(_ context.Context, email string) (domain.AccessProfile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if profile, ok := d.profiles[strings.ToLower(email)]; ok {
		// Report the email as the caller spelled it
		profile.Email = email
		return profile, nil
	}
	return domain.AccessProfile{Email: email, Role: domain.RoleGuest}, nil
}

// Watch delivers a notification whenever the directory file changes.
// Each call runs its own filesystem watcher; the channel closes when
// ctx is cancelled.
func (d *Directory) Watch(ctx context.Context) (<-chan domain.AccessChange, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the parent directory rather than the file itself so that
	// editors replacing the file via rename keep the watch alive.
	if err := watcher.Add(filepath.Dir(d.path)); err != nil {
		watcher.Close()
		return nil, err
	}

	ch := make(chan domain.AccessChange, 1)
	go d.watchLoop(ctx, watcher, ch)
	return ch, nil
}

func (d *Directory) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, ch chan domain.AccessChange) {
	defer watcher.Close()
	defer close(ch)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !d.isDirectoryEvent(event) {
				continue
			}
			if err := d.reload(); err != nil {
				logger.Warn("Access directory reload failed: %v", err)
				continue
			}
			// Collapse bursts; a pending notification covers them all
			select {
			case ch <- domain.AccessChange{At: time.Now()}:
			default:
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Access directory watch error: %v", err)
		}
	}
}

// isDirectoryEvent reports whether the event concerns the directory
// file with an operation that changes its content.
func (d *Directory) isDirectoryEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(d.path) {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

// reload re-reads the directory file and swaps the resolved profiles.
// A missing file leaves the directory empty.
func (d *Directory) reload() error {
	profiles, err := loadProfiles(d.path)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.profiles = profiles
	d.mu.Unlock()
	return nil
}

// loadProfiles parses the TOML file into resolved per-email profiles.
func loadProfiles(path string) (map[string]domain.AccessProfile, error) {
	profiles := make(map[string]domain.AccessProfile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return profiles, nil
		}
		return nil, err
	}

	var file directoryFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	for _, member := range file.Members {
		email := strings.ToLower(strings.TrimSpace(member.Email))
		if email == "" {
			continue
		}

		role := domain.Role(member.Role)
		if !role.IsValid() {
			logger.Warn("Access directory: unknown role %q for %s, treating as guest", member.Role, email)
			role = domain.RoleGuest
		}

		profiles[email] = domain.AccessProfile{
			Email: email,
			Role:  role,
			Pages: file.Roles[role.String()],
		}
	}

	return profiles, nil
}
