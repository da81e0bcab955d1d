package workflow

import (
	"context"
	"fmt"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/rlog"
)

// TemporalEnqueuer submits pre-generation jobs as Temporal workflows. The
// deterministic job ID is the workflow ID and duplicates are rejected by the
// server, including IDs that completed recently, so re-submitting the same
// logical job is a no-op.
type TemporalEnqueuer struct {
	Client client.Client
}

func NewTemporalEnqueuer(c client.Client) *TemporalEnqueuer {
	return &TemporalEnqueuer{Client: c}
}

func (e *TemporalEnqueuer) Enqueue(ctx context.Context, params PregenerationParams) error {
	options := client.StartWorkflowOptions{
		ID:                    params.JobID,
		TaskQueue:             TaskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}

	_, err := e.Client.ExecuteWorkflow(ctx, options, Pregeneration, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Debug("job already enqueued", "job_id", params.JobID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", params.JobID, err)
	}
	return nil
}
