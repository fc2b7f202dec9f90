package handler

import (
	"context"
	"errors"
	"time"

	"skill-match/internal/delivery/http/dto"
	"skill-match/internal/delivery/http/middleware"
	"skill-match/internal/pkg/response"
	"skill-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/timeout"
	"go.uber.org/zap"
)

type SearchHandler struct {
	uc      usecase.SearchUsecase
	timeout time.Duration
	log     *zap.SugaredLogger
}

func NewSearchHandler(uc usecase.SearchUsecase, requestTimeout time.Duration, log *zap.SugaredLogger) *SearchHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &SearchHandler{uc: uc, timeout: requestTimeout, log: log}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/search", timeout.New(h.Search, timeout.Config{
		Timeout:   h.timeout,
		OnTimeout: h.onTimeout,
	}))
}

func (h *SearchHandler) Search(c fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, response.MessageInvalidBody, err)
	}

	out, err := h.uc.Search(c.Context(), *req.UserInput)
	if err != nil {
		return mapSearchUsecaseError(err)
	}

	h.log.Debugw("search dispatched",
		"intent", out.Intent.String(),
		"status", string(out.Status),
		"skills", out.Skills,
	)

	return response.Write(c, fiber.StatusOK, string(out.Status), out.Message, dto.SearchData(out))
}

func (h *SearchHandler) onTimeout(c fiber.Ctx) error {
	h.log.Warnw("search timed out", "timeout", h.timeout, "request_id", c.GetRespHeader(middleware.HeaderRequestID))
	return response.Error(c, fiber.StatusRequestTimeout, response.MessageRequestTimeout)
}

func mapSearchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		// left untouched so the timeout middleware can answer
		return err
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
