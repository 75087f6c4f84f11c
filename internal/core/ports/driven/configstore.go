package driven

// ConfigStore provides access to application configuration.
//
// Keys are dotted paths mirroring the TOML document layout, for
// example "google.client_id" or "calendar.time_zone". The settings
// service composes whole AppSettings values out of these typed reads.
type ConfigStore interface {
	// Get retrieves a raw configuration value by key.
	// The boolean reports whether the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value.
	// Returns "" if the key is missing or holds another type.
	GetString(key string) string

	// GetInt retrieves an integer value.
	// Returns 0 if the key is missing or holds another type.
	GetInt(key string) int

	// GetBool retrieves a boolean value.
	// Returns false if the key is missing or holds another type.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice value.
	// Returns nil if the key is missing or holds another type.
	GetStringSlice(key string) []string

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the backing file path, for display in `senteng config`.
	Path() string
}
