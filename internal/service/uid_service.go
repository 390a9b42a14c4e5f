package service

import (
	"context"
	"errors"
	"fmt"

	"uidgen/internal/encoding"
	"uidgen/pkg/uid"
)

// MaxBatch — максимальное число id за один запрос Batch.
const MaxBatch = 1000

// Generator — то, что сервису нужно от uid.Generator.
type Generator interface {
	NextID(ctx context.Context) (int64, error)
	ParseUID(id int64) uid.Info
	State() uid.State
}

// Pinger проверяет доступность базы. nil, если база не используется.
type Pinger interface {
	Ping(ctx context.Context) error
}

// UIDService — сервис выдачи и разбора идентификаторов.
type UIDService struct {
	gen Generator
	db  Pinger
}

// NewUIDService создаёт новый экземпляр сервиса.
func NewUIDService(gen Generator, db Pinger) *UIDService {
	return &UIDService{gen: gen, db: db}
}

// GenerateResult — выданный идентификатор.
type GenerateResult struct {
	UID  int64
	Text encoding.Text
}

// ParseResult — разобранный идентификатор и все его текстовые формы.
type ParseResult struct {
	Info uid.Info
	Text encoding.Text
}

// Next выдаёт один идентификатор.
func (s *UIDService) Next(ctx context.Context) (*GenerateResult, error) {
	id, err := s.gen.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("сервис: генерация uid: %w", err)
	}
	return &GenerateResult{UID: id, Text: encoding.Forms(id)}, nil
}

// Batch выдаёт count идентификаторов подряд.
func (s *UIDService) Batch(ctx context.Context, count int) ([]int64, error) {
	if count < 1 || count > MaxBatch {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		id, err := s.gen.NextID(ctx)
		if err != nil {
			return nil, fmt.Errorf("сервис: генерация uid %d из %d: %w", i+1, count, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Parse разбирает идентификатор, записанный в представлении kind.
func (s *UIDService) Parse(text string, kind encoding.Kind) (*ParseResult, error) {
	id, err := encoding.ParseText(text, kind)
	if err != nil {
		return nil, errors.Join(ErrInvalidUID, err)
	}
	return &ParseResult{Info: s.gen.ParseUID(id), Text: encoding.Forms(id)}, nil
}

// HealthCheck проверяет генератор и, если используется, базу данных.
// Проверяются обе части; ошибки объединяются, чтобы вызывающий различил их через errors.Is.
func (s *UIDService) HealthCheck(ctx context.Context) error {
	var errs []error
	if s.gen.State() == uid.StateExhausted {
		errs = append(errs, uid.ErrTimestampExhausted)
	}
	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrDBUnavailable, err))
		}
	}
	return errors.Join(errs...)
}

var (
	// ErrInvalidCount — count вне [1, MaxBatch].
	ErrInvalidCount = errors.New("сервис: некорректное количество")
	// ErrInvalidUID — строку не удалось разобрать как идентификатор.
	ErrInvalidUID = errors.New("сервис: некорректный uid")
	// ErrDBUnavailable — база данных не отвечает на ping.
	ErrDBUnavailable = errors.New("сервис: база данных недоступна")
)
