package config

// Settings is the companion's process configuration, loaded from
// COMPANION_* environment variables.
type Settings struct {
	// StorageDriver selects the persistence backend: bbolt, sqlite, or
	// memory.
	StorageDriver string `env:"COMPANION_STORAGE_DRIVER" envDefault:"bbolt"`
	// StoragePath is the database file location.
	StoragePath string `env:"COMPANION_STORAGE_PATH" envDefault:"companion.db"`
	// Locale selects the language for user-facing error messages.
	Locale string `env:"COMPANION_LOCALE" envDefault:"en-US"`
}

// Load reads Settings from the environment.
func Load() (Settings, error) {
	var settings Settings
	if err := ParseEnv(&settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}
