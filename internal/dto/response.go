package dto

import (
	"uidgen/internal/encoding"
	"uidgen/pkg/uid"
)

// UIDResponse — выданный идентификатор. Число передаётся строкой: int64 не влезает в JS number.
type UIDResponse struct {
	UID    string `json:"uid"`
	Base62 string `json:"base62"`
}

// BatchResponse — пачка идентификаторов.
type BatchResponse struct {
	UIDs []string `json:"uids"`
}

// ParseResponse — диагностическая запись и текстовые формы идентификатора.
type ParseResponse struct {
	Parsed uid.Info      `json:"parsed" swaggertype:"object"`
	Forms  encoding.Text `json:"forms"`
}

// HealthResponse — ответ проверки здоровья сервиса.
// Status — ok или unavailable; Generator — ready или exhausted; DB — ok или unavailable.
type HealthResponse struct {
	Status    string `json:"status"`
	Generator string `json:"generator"`
	DB        string `json:"db"`
}

// ErrorResponse — ответ с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
