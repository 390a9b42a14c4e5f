package uid

import "fmt"

// TotalBits — полная разрядность идентификатора.
const TotalBits = 64

// signBits — старший бит всегда 0, идентификатор неотрицателен.
const signBits = 1

// Allocator — упаковка и распаковка полей идентификатора.
//
//	+------+---------------+-----------+----------+
//	| sign | delta seconds | worker id | sequence |
//	+------+---------------+-----------+----------+
//	  1bit     timeBits      workerBits   seqBits
//
// Состояния нет, методы можно вызывать из любых горутин.
type Allocator struct {
	timeBits   int
	workerBits int
	seqBits    int

	maxDeltaSeconds int64
	maxWorkerID     int64
	maxSequence     int64

	timestampShift uint
	workerIDShift  uint
}

// NewAllocator создаёт аллокатор для раскладки 1 + timeBits + workerBits + seqBits = 64.
func NewAllocator(timeBits, workerBits, seqBits int) (*Allocator, error) {
	if timeBits <= 0 || workerBits <= 0 || seqBits <= 0 {
		return nil, fmt.Errorf("%w: разрядности должны быть положительными (%d, %d, %d)",
			ErrInvalidLayout, timeBits, workerBits, seqBits)
	}
	if total := signBits + timeBits + workerBits + seqBits; total != TotalBits {
		return nil, fmt.Errorf("%w: сумма 1+%d+%d+%d = %d, ожидалось %d",
			ErrInvalidLayout, timeBits, workerBits, seqBits, total, TotalBits)
	}

	return &Allocator{
		timeBits:        timeBits,
		workerBits:      workerBits,
		seqBits:         seqBits,
		maxDeltaSeconds: ^(int64(-1) << timeBits),
		maxWorkerID:     ^(int64(-1) << workerBits),
		maxSequence:     ^(int64(-1) << seqBits),
		timestampShift:  uint(workerBits + seqBits),
		workerIDShift:   uint(seqBits),
	}, nil
}

// Allocate упаковывает поля в идентификатор.
// Диапазоны не проверяются: значение за пределами своей разрядности портит соседнее поле.
func (a *Allocator) Allocate(deltaSeconds, workerID, sequence int64) int64 {
	return deltaSeconds<<a.timestampShift | workerID<<a.workerIDShift | sequence
}

// Decode — обратная операция к Allocate.
func (a *Allocator) Decode(id int64) (deltaSeconds, workerID, sequence int64) {
	sequence = id & a.maxSequence
	workerID = (id >> a.workerIDShift) & a.maxWorkerID
	deltaSeconds = (id >> a.timestampShift) & a.maxDeltaSeconds
	return deltaSeconds, workerID, sequence
}

// TimestampBits — ширина поля секунд.
func (a *Allocator) TimestampBits() int { return a.timeBits }

// WorkerIDBits — ширина поля worker id.
func (a *Allocator) WorkerIDBits() int { return a.workerBits }

// SequenceBits — ширина поля sequence.
func (a *Allocator) SequenceBits() int { return a.seqBits }

// MaxDeltaSeconds — 2^timeBits - 1.
func (a *Allocator) MaxDeltaSeconds() int64 { return a.maxDeltaSeconds }

// MaxWorkerID — 2^workerBits - 1.
func (a *Allocator) MaxWorkerID() int64 { return a.maxWorkerID }

// MaxSequence — 2^seqBits - 1.
func (a *Allocator) MaxSequence() int64 { return a.maxSequence }
