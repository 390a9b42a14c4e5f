package uid

import (
	"fmt"
	"strings"
	"time"
)

// EpochLayout — формат строки эпохи.
const EpochLayout = "2006-01-02"

// DefaultEpoch — дата старта проекта, от которой отсчитываются секунды.
const DefaultEpoch = "2025-02-25"

// Config — раскладка битов и эпоха генератора.
type Config struct {
	TimeBits   int
	WorkerBits int
	SeqBits    int
	// Epoch в формате yyyy-MM-dd, UTC. Пустая строка — DefaultEpoch.
	Epoch string
	// RandomSequenceLimit — верхняя граница (не включительно) стартового sequence в новой секунде.
	// 0 и 1 отключают рандомизацию.
	RandomSequenceLimit int64
}

// DefaultConfig возвращает раскладку 1/41/13/9 с эпохой DefaultEpoch.
func DefaultConfig() Config {
	return Config{
		TimeBits:   41,
		WorkerBits: 13,
		SeqBits:    9,
		Epoch:      DefaultEpoch,
	}
}

// EpochSeconds разбирает эпоху в секунды Unix.
func (c Config) EpochSeconds() (int64, error) {
	s := strings.TrimSpace(c.Epoch)
	if s == "" {
		s = DefaultEpoch
	}
	t, err := time.ParseInLocation(EpochLayout, s, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w: эпоха %q: %v", ErrInvalidConfig, c.Epoch, err)
	}
	return t.Unix(), nil
}
