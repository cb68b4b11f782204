// internal/workers/registry/cnpj-lookup/handler.go
package cnpjlookup

import (
	"context"
	"encoding/json"
	"time"

	"cnpj-lookup/internal/common/errors"
	"cnpj-lookup/internal/common/logger"
	"cnpj-lookup/internal/common/metrics"
	"cnpj-lookup/internal/common/observability"
	"cnpj-lookup/internal/common/validation"
	"cnpj-lookup/internal/lookup"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "cnpj-lookup"

	statusCompleted = "completed"
)

var inputSchema = validation.MustCompile(`{
	"type": "object",
	"properties": {
		"cnpj": {"type": "string", "minLength": 1}
	},
	"required": ["cnpj"]
}`)

type Handler struct {
	config       *Config
	looker       lookup.Looker
	errorHandler *errors.ErrorHandler
	obs          *observability.Observability
	logger       logger.Logger
}

func NewHandler(config *Config, looker lookup.Looker, obs *observability.Observability, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		looker:       looker,
		errorHandler: errors.NewErrorHandler(log),
		obs:          obs,
		logger:       log,
	}
}

// Handle runs one lookup job. Not-found and malformed identifiers are
// thrown as BPMN errors; registry failures fail the job without retries.
func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.run(ctx, job.Variables)
	if err != nil {
		code := string(errors.Normalize(err).Code)
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, code).Inc()
		h.obs.RecordJob(ctx, TaskType, code, time.Since(start))
		h.errorHandler.HandleJobError(context.Background(), client, job, err)
		return
	}

	h.completeJob(context.Background(), client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	h.obs.RecordJob(ctx, TaskType, statusCompleted, time.Since(start))
}

func (h *Handler) run(ctx context.Context, variables string) (*Output, error) {
	input, err := parseInput(variables)
	if err != nil {
		return nil, err
	}
	return h.Execute(ctx, input)
}

func parseInput(variables string) (*Input, error) {
	result, err := inputSchema.ValidateBytes([]byte(variables))
	if err != nil {
		return nil, errors.NewInputParseError(err)
	}
	if err := result.Err(); err != nil {
		return nil, errors.NewInputParseError(err)
	}

	var input Input
	if err := json.Unmarshal([]byte(variables), &input); err != nil {
		return nil, errors.NewInputParseError(err)
	}
	return &input, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	result, err := h.looker.Lookup(ctx, input.CNPJ)
	if err != nil {
		return nil, err
	}

	return &Output{
		Company:      result.Company,
		Shareholders: result.Shareholders,
		Roles:        result.Roles,
	}, nil
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		return
	}
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
	}
}
