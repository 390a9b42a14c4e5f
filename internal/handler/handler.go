package handler

import (
	"context"

	"uidgen/internal/encoding"
	"uidgen/internal/service"
)

// UIDService — интерфейс сервиса идентификаторов.
// Хендлеры зависят от интерфейса, а не от конкретной реализации,
// что позволяет подставлять моки в тестах.
type UIDService interface {
	Next(ctx context.Context) (*service.GenerateResult, error)
	Batch(ctx context.Context, count int) ([]int64, error)
	Parse(text string, kind encoding.Kind) (*service.ParseResult, error)
	HealthCheck(ctx context.Context) error
}
