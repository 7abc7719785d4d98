package handler

import (
	"errors"
	"strconv"
	"strings"

	"staffhub/internal/delivery/http/middleware"
	"staffhub/internal/pkg/response"
	"staffhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError translates usecase sentinels into the AppError the
// error middleware renders. Unknown errors become opaque 500s.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidProficiencyLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound),
		errors.Is(err, usecase.ErrPersonnelNotFound),
		errors.Is(err, usecase.ErrProjectNotFound),
		errors.Is(err, usecase.ErrRequirementNotFound),
		errors.Is(err, usecase.ErrAssignmentNotFound),
		errors.Is(err, usecase.ErrNoRequirements):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrDuplicateSkillName),
		errors.Is(err, usecase.ErrPersonnelEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrSkillInUse):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func idParam(c fiber.Ctx, name string) (int64, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "invalid "+name, nil, err)
	}
	return id, nil
}
