package uid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLayout — разрядности полей не образуют 64-битный идентификатор.
	ErrInvalidLayout = errors.New("uid: некорректная раскладка битов")

	// ErrInvalidConfig — прочие ошибки конфигурации (эпоха, randomSequenceLimit, assigner).
	ErrInvalidConfig = errors.New("uid: некорректная конфигурация")

	// ErrInvalidWorkerID — assigner вернул отрицательный worker id.
	ErrInvalidWorkerID = errors.New("uid: отрицательный worker id")

	// ErrWorkerIDExceedsMax — worker id не помещается в workerBits.
	ErrWorkerIDExceedsMax = errors.New("uid: worker id превышает максимум")

	// ErrClockMovedBackward — часы ушли назад относительно последней выданной секунды.
	ErrClockMovedBackward = errors.New("uid: часы переведены назад")

	// ErrTimestampExhausted — текущее время не помещается в timeBits. Генератор больше не пригоден.
	ErrTimestampExhausted = errors.New("uid: биты времени исчерпаны")

	// ErrBeforeEpoch — часы показывают время раньше эпохи.
	ErrBeforeEpoch = errors.New("uid: текущее время раньше эпохи")

	// ErrGenerate — общая ошибка генерации на границе NextID. Исходная причина сохраняется.
	ErrGenerate = errors.New("uid: ошибка генерации идентификатора")
)

// ClockMovedBackwardError — отказ из-за перевода часов назад.
type ClockMovedBackwardError struct {
	RefusedSeconds int64
}

func (e *ClockMovedBackwardError) Error() string {
	return fmt.Sprintf("uid: часы переведены назад, отказ на %d с", e.RefusedSeconds)
}

// Is позволяет сравнивать через errors.Is(err, ErrClockMovedBackward).
func (e *ClockMovedBackwardError) Is(target error) bool {
	return target == ErrClockMovedBackward
}
