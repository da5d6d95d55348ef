package tasks

import (
	"github.com/hibiken/asynq"
)

// Task type names
const (
	TypeTaskRunUnderwritingFlow = "task:run_underwriting_flow"
)

// NewRunUnderwritingFlowTask creates a new task for asynq. The task carries
// no payload; the flow run is fully configured on the worker side.
func NewRunUnderwritingFlowTask() *asynq.Task {
	return asynq.NewTask(TypeTaskRunUnderwritingFlow, []byte("{}"))
}
