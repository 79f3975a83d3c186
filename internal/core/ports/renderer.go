package ports

import "go.trai.ch/ecswatch/internal/core/domain"

// Renderer writes emissions to the primary output stream. It is a pure
// formatter: all decisions about whether to emit belong to the watch loop.
// Write failures are fatal to the watch; no progress is possible if the
// operator cannot see output.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderSummary writes one compact per-task status block.
	RenderSummary(summary domain.ClusterSummary) error

	// RenderDetail writes the raw, unreduced task description payload.
	RenderDetail(payload any) error
}
