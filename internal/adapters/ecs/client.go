// Package ecs implements the ClusterClient port against the AWS ECS API
// using the AWS SDK v2.
package ecs

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"go.trai.ch/ecswatch/internal/core/domain"
	"go.trai.ch/ecswatch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DescribeTasks accepts at most 100 task IDs per call.
const describeBatchSize = 100

// describeConcurrency bounds parallel describe calls for large clusters.
const describeConcurrency = 4

// api is the slice of the ECS client surface we consume. Tests substitute a
// stub; production uses *ecs.Client.
type api interface {
	ecs.ListTasksAPIClient
	DescribeTasks(ctx context.Context, params *ecs.DescribeTasksInput, optFns ...func(*ecs.Options)) (*ecs.DescribeTasksOutput, error)
}

var _ ports.ClusterClient = (*Client)(nil)

// Client implements ports.ClusterClient against ECS.
type Client struct {
	api api
	now func() time.Time
}

// NewClient wraps an ECS API client.
func NewClient(a api) *Client {
	return &Client{api: a, now: time.Now}
}

// ListTaskIDs lists every task ARN in the cluster, following pagination.
func (c *Client) ListTaskIDs(ctx context.Context, cluster string) ([]string, error) {
	var ids []string

	p := ecs.NewListTasksPaginator(c.api, &ecs.ListTasksInput{
		Cluster: aws.String(cluster),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, classify(err, cluster)
		}
		ids = append(ids, out.TaskArns...)
	}

	return ids, nil
}

// DescribeTasks describes the given tasks in batches of describeBatchSize,
// reducing each description to a TaskRecord. Per-task describe failures are
// collected into the batch rather than failing the cycle.
func (c *Client) DescribeTasks(ctx context.Context, cluster string, ids []string) (*domain.TaskBatch, error) {
	if len(ids) == 0 {
		return &domain.TaskBatch{Records: []domain.TaskRecord{}}, nil
	}

	chunks := chunk(ids, describeBatchSize)
	outs := make([]*ecs.DescribeTasksOutput, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(describeConcurrency)
	for i, tasks := range chunks {
		g.Go(func() error {
			out, err := c.api.DescribeTasks(gctx, &ecs.DescribeTasksInput{
				Cluster: aws.String(cluster),
				Tasks:   tasks,
			})
			if err != nil {
				return classify(err, cluster)
			}
			outs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var raw []ecstypes.Task
	batch := &domain.TaskBatch{}
	for _, out := range outs {
		raw = append(raw, out.Tasks...)
		for _, f := range out.Failures {
			batch.Failures = append(batch.Failures, domain.ShortID(aws.ToString(f.Arn)))
		}
	}

	batch.Records = reduceTasks(c.now(), raw)
	batch.Raw = raw

	return batch, nil
}

// chunk splits ids into slices of at most size elements.
func chunk(ids []string, size int) [][]string {
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for len(ids) > size {
		chunks = append(chunks, ids[:size])
		ids = ids[size:]
	}
	return append(chunks, ids)
}

var _ ports.ClusterClientFactory = (*Factory)(nil)

// Factory builds ECS clients once region and profile are resolved.
type Factory struct{}

// NewFactory creates a Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// New loads the AWS configuration chain and wraps an ECS client. Empty
// region or profile defer to the SDK's default resolution (env vars,
// shared config, instance metadata).
func (f *Factory) New(ctx context.Context, region, profile string) (ports.ClusterClient, error) {
	var optFns []func(*awsconfig.LoadOptions) error
	if region != "" {
		optFns = append(optFns, awsconfig.WithRegion(region))
	}
	if profile != "" {
		optFns = append(optFns, awsconfig.WithSharedConfigProfile(profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load AWS configuration")
	}

	return NewClient(ecs.NewFromConfig(cfg)), nil
}
