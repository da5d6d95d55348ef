package tasks

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"github.com/shazam37/ai-underwriting/internal/config"
	"github.com/shazam37/ai-underwriting/internal/models"
	"github.com/shazam37/ai-underwriting/internal/pkg/flow"
)

// TaskProcessor holds dependencies for our task handlers
type TaskProcessor struct {
	DB         *gorm.DB
	config     *config.Config
	flowClient *flow.Client
}

// NewTaskProcessor creates a new TaskProcessor
func NewTaskProcessor(db *gorm.DB, config *config.Config) *TaskProcessor {
	return &TaskProcessor{
		DB:         db,
		config:     config,
		flowClient: flow.New(config.LangflowURL, config.FlowAPIKey),
	}
}

// NewTaskProcessorWithFlow builds a processor around an explicit flow
// client. Used by tests to swap in a mocked transport.
func NewTaskProcessorWithFlow(db *gorm.DB, config *config.Config, flowClient *flow.Client) *TaskProcessor {
	return &TaskProcessor{
		DB:         db,
		config:     config,
		flowClient: flowClient,
	}
}

// HandleRunUnderwritingFlowTask triggers the flow-orchestration partner and
// stores the produced analysis in the result log. Partner failures are
// logged and swallowed so the scheduler does not retry a run that will be
// repeated on the next tick anyway.
func (p *TaskProcessor) HandleRunUnderwritingFlowTask(ctx context.Context, t *asynq.Task) error {
	log.Println("Running underwriting flow")

	text, err := p.flowClient.Run(ctx)
	if err != nil {
		log.Printf("underwriting flow failed: %v", err)
		return nil
	}

	result := models.UnderwritingResult{
		ID:        uuid.NewString(),
		Content:   text,
		CreatedAt: time.Now(),
	}
	if err := p.DB.WithContext(ctx).Create(&result).Error; err != nil {
		return err
	}

	log.Printf("stored underwriting result: %s, %d bytes", result.ID, len(text))
	return nil
}
