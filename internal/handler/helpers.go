package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"uidgen/internal/dto"
	"uidgen/pkg/uid"
)

// writeJSON записывает JSON-ответ с указанным статус-кодом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("ошибка записи ответа", "error", err)
	}
}

// writeGenerateError переводит ошибку генерации в HTTP-статус.
// Перевод часов назад — временная ситуация, клиенту сообщается Retry-After.
func writeGenerateError(w http.ResponseWriter, err error) {
	var cmb *uid.ClockMovedBackwardError
	switch {
	case errors.As(err, &cmb):
		w.Header().Set("Retry-After", strconv.FormatInt(cmb.RefusedSeconds, 10))
		writeJSON(w, http.StatusServiceUnavailable, dto.ErrorResponse{Error: "часы сервера переведены назад, повторите позже"})
	case errors.Is(err, uid.ErrTimestampExhausted):
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "биты времени исчерпаны, требуется перенастройка генератора"})
	default:
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "не удалось сгенерировать uid"})
	}
}
