// Package lookup turns a user-supplied CNPJ into a company record and its
// shareholder roster.
package lookup

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"cnpj-lookup/internal/cnpj"
	"cnpj-lookup/internal/common/errors"
	"cnpj-lookup/internal/common/logger"
	"cnpj-lookup/internal/common/metrics"
	"cnpj-lookup/internal/registry"
)

// Looker is the lookup operation as consumed by the view and the worker.
type Looker interface {
	Lookup(ctx context.Context, raw string) (*Result, error)
}

type Service struct {
	registry registry.Fetcher
	logger   logger.Logger
}

func NewService(fetcher registry.Fetcher, log logger.Logger) *Service {
	return &Service{
		registry: fetcher,
		logger:   log,
	}
}

// Lookup validates raw, queries the registry once with the normalized
// identifier and maps the answer. Errors are *errors.StandardError with
// code CNPJ_INVALID_FORMAT, CNPJ_NOT_FOUND or REGISTRY_TRANSPORT_FAILURE.
func (s *Service) Lookup(ctx context.Context, raw string) (*Result, error) {
	query := strings.TrimSpace(raw)
	if !cnpj.Validate(query) {
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeInvalidFormat).Inc()
		return nil, errors.NewInvalidFormatError(raw)
	}

	identifier := cnpj.Normalize(query)

	start := time.Now()
	payload, err := s.registry.Fetch(ctx, identifier)
	if err != nil {
		s.observe(metrics.OutcomeTransportFailure, start)
		s.logger.Error("registry lookup failed", map[string]interface{}{
			"identifier": identifier,
			"error":      err.Error(),
		})
		return nil, err
	}

	company, shareholders, err := MapResponse(identifier, payload)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			s.observe(metrics.OutcomeNotFound, start)
			s.logger.Info("company not found", map[string]interface{}{
				"identifier": identifier,
				"marker":     payload.Name,
			})
			return nil, err
		}
		s.observe(metrics.OutcomeTransportFailure, start)
		s.logger.Error("registry payload unusable", map[string]interface{}{
			"identifier": identifier,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.observe(metrics.OutcomeFound, start)
	s.logger.Debug("company found", map[string]interface{}{
		"identifier":   identifier,
		"shareholders": len(shareholders),
	})

	return &Result{
		Identifier:   identifier,
		Company:      company,
		Shareholders: shareholders,
		Roles:        RoleOptions(shareholders),
	}, nil
}

func (s *Service) observe(outcome string, start time.Time) {
	metrics.LookupsTotal.WithLabelValues(outcome).Inc()
	metrics.RegistryRequestDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
}
