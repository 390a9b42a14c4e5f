package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"uidgen/internal/dto"
	"uidgen/internal/encoding"
)

// ParseHandler — хендлер разбора идентификатора.
type ParseHandler struct {
	svc      UIDService
	validate *validator.Validate
}

// NewParseHandler создаёт хендлер разбора.
func NewParseHandler(svc UIDService) *ParseHandler {
	return &ParseHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

// Parse разбирает идентификатор на время, worker id и sequence.
// @Summary     Разбор uid
// @Description Возвращает время выдачи, worker id, sequence и все текстовые формы идентификатора.
// @Tags        uid
// @Produce     json
// @Param       uid path     string true  "Идентификатор"
// @Param       enc query    string false "Представление: dec, base62, base58, base32" Enums(dec, base62, base58, base32)
// @Success     200 {object} dto.ParseResponse
// @Failure     400 {object} dto.ErrorResponse
// @Router      /api/v1/uid/{uid} [get]
func (h *ParseHandler) Parse(w http.ResponseWriter, r *http.Request) {
	req := dto.ParseRequest{
		UID: chi.URLParam(r, "uid"),
		Enc: r.URL.Query().Get("enc"),
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "некорректный uid или параметр enc"})
		return
	}

	kind, err := encoding.ParseKind(req.Enc)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "неизвестное представление enc"})
		return
	}

	res, err := h.svc.Parse(req.UID, kind)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "не удалось разобрать uid"})
		return
	}

	writeJSON(w, http.StatusOK, dto.ParseResponse{Parsed: res.Info, Forms: res.Text})
}
