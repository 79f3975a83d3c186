package ports

import "go.trai.ch/ecswatch/internal/core/domain"

// ConfigLoader loads operator defaults from an optional config file.
// Flags and environment variables override whatever it returns.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the first config file found on the search path.
	// A missing file is not an error; it returns empty settings.
	Load() (domain.Settings, error)
}
