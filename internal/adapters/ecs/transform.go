package ecs

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"go.trai.ch/ecswatch/internal/core/domain"
)

// reduceTasks projects raw task descriptions onto TaskRecords. now is the
// display-time fallback for tasks that have not reached any lifecycle stage
// with a timestamp yet.
func reduceTasks(now time.Time, tasks []ecstypes.Task) []domain.TaskRecord {
	records := make([]domain.TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, reduceTask(now, t))
	}
	return records
}

// reduceTask picks the fields that participate in change detection plus the
// display timestamp. The timestamp is the newest lifecycle stage the task
// has reached, matching how operators read a deployment rolling through
// pull/connect/start.
func reduceTask(now time.Time, t ecstypes.Task) domain.TaskRecord {
	r := domain.TaskRecord{
		TaskID:            domain.ShortID(aws.ToString(t.TaskArn)),
		DefinitionVersion: domain.ShortID(aws.ToString(t.TaskDefinitionArn)),
		DesiredStatus:     aws.ToString(t.DesiredStatus),
		LastStatus:        aws.ToString(t.LastStatus),
		Group:             aws.ToString(t.Group),
		Health:            string(t.HealthStatus),
		StartedAt: domain.NewestTime(now,
			aws.ToTime(t.ConnectivityAt),
			aws.ToTime(t.CreatedAt),
			aws.ToTime(t.ExecutionStoppedAt),
			aws.ToTime(t.PullStartedAt),
			aws.ToTime(t.PullStoppedAt),
			aws.ToTime(t.StartedAt),
		),
	}

	for _, c := range t.Containers {
		r.Images = append(r.Images, domain.ShortImage(aws.ToString(c.Image)))
	}

	return r
}
