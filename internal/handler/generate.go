package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"uidgen/internal/dto"
	"uidgen/internal/service"
)

// GenerateHandler — хендлер выдачи идентификаторов.
type GenerateHandler struct {
	svc      UIDService
	validate *validator.Validate
}

// NewGenerateHandler создаёт хендлер выдачи.
func NewGenerateHandler(svc UIDService) *GenerateHandler {
	return &GenerateHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

// Generate выдаёт один идентификатор.
// @Summary     Новый uid
// @Description Выдаёт один 64-битный идентификатор.
// @Tags        uid
// @Produce     json
// @Success     200 {object} dto.UIDResponse
// @Failure     500 {object} dto.ErrorResponse
// @Failure     503 {object} dto.ErrorResponse
// @Router      /api/v1/uid [get]
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Next(r.Context())
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UIDResponse{
		UID:    res.Text.Decimal,
		Base62: res.Text.Base62,
	})
}

// Batch выдаёт пачку идентификаторов.
// @Summary     Пачка uid
// @Description Выдаёт от 1 до 1000 идентификаторов подряд.
// @Tags        uid
// @Produce     json
// @Param       count query    int true "Количество (1–1000)"
// @Success     200   {object} dto.BatchResponse
// @Failure     400   {object} dto.ErrorResponse
// @Failure     500   {object} dto.ErrorResponse
// @Failure     503   {object} dto.ErrorResponse
// @Router      /api/v1/uid/batch [get]
func (h *GenerateHandler) Batch(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "count должен быть целым числом"})
		return
	}

	req := dto.BatchRequest{Count: count}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "count должен быть от 1 до 1000"})
		return
	}

	ids, err := h.svc.Batch(r.Context(), req.Count)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCount) {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "count должен быть от 1 до 1000"})
			return
		}
		writeGenerateError(w, err)
		return
	}

	resp := dto.BatchResponse{UIDs: make([]string, len(ids))}
	for i, id := range ids {
		resp.UIDs[i] = strconv.FormatInt(id, 10)
	}
	writeJSON(w, http.StatusOK, resp)
}
