package httpapi

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fpl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fpl-dashboard/internal/usecase"
)

type Handler struct {
	viewService    *usecase.ViewService
	datasetService *usecase.DatasetService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	viewService *usecase.ViewService,
	datasetService *usecase.DatasetService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		viewService:    viewService,
		datasetService: datasetService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
