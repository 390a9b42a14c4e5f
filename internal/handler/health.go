package handler

import (
	"errors"
	"net/http"

	"uidgen/internal/dto"
	"uidgen/internal/service"
	"uidgen/pkg/uid"
)

// HealthHandler — хендлер проверки состояния сервиса.
type HealthHandler struct {
	svc UIDService
}

// NewHealthHandler создаёт хендлер проверки состояния.
func NewHealthHandler(svc UIDService) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Health проверяет генератор и подключение к БД.
// @Summary     Проверка здоровья
// @Description Возвращает статус генератора (и базы данных, если worker id выдаётся через неё).
// @Tags        система
// @Produce     json
// @Success     200 {object} dto.HealthResponse
// @Failure     503 {object} dto.HealthResponse
// @Router      /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := dto.HealthResponse{Status: "ok", Generator: "ready", DB: "ok"}
	statusCode := http.StatusOK

	if err := h.svc.HealthCheck(r.Context()); err != nil {
		resp.Status = "unavailable"
		statusCode = http.StatusServiceUnavailable
		if errors.Is(err, uid.ErrTimestampExhausted) {
			resp.Generator = "exhausted"
		}
		if errors.Is(err, service.ErrDBUnavailable) {
			resp.DB = "unavailable"
		}
	}

	writeJSON(w, statusCode, resp)
}
