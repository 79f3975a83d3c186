// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/ecswatch/internal/core/domain"
)

// ClusterClient is the narrow query boundary to the container orchestrator.
// The watch loop treats both calls as independently fallible within one
// cycle and never assumes atomicity between them: the task set may change
// between the list and the describe.
//
//go:generate mockgen -source=cluster_client.go -destination=mocks/mock_cluster_client.go -package=mocks
type ClusterClient interface {
	// ListTaskIDs returns the identifiers of all tasks currently present in
	// the cluster. Errors are classified into the domain taxonomy.
	ListTaskIDs(ctx context.Context, cluster string) ([]string, error)

	// DescribeTasks fetches full task descriptions for the given IDs and
	// reduces them to records. A batch with Failures set means some tasks
	// could not be described; the returned records cover the rest.
	// An empty id list yields an empty batch without a provider call.
	DescribeTasks(ctx context.Context, cluster string, ids []string) (*domain.TaskBatch, error)
}

// ClusterClientFactory builds a ClusterClient once region and profile are
// known. Client construction needs resolved configuration, which is only
// available after flag parsing, so it cannot happen at wiring time.
type ClusterClientFactory interface {
	// New builds a client for the given region and credential profile.
	// Empty values fall back to the provider's default resolution chain.
	New(ctx context.Context, region, profile string) (ClusterClient, error)
}
