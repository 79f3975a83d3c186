package app

import "go.trai.ch/ecswatch/internal/core/ports"

// Components bundles the wired application pieces handed to main.
type Components struct {
	App    *App
	Logger ports.Logger
}
