package uid

import (
	"math/rand/v2"
	"time"
)

// Clock — источник текущего времени.
type Clock interface {
	Now() time.Time
}

// RandSource — источник случайного стартового sequence.
type RandSource interface {
	// Int64N возвращает число из [0, n).
	Int64N(n int64) int64
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type globalRand struct{}

func (globalRand) Int64N(n int64) int64 { return rand.Int64N(n) }

// SystemClock — часы операционной системы.
var SystemClock Clock = systemClock{}
