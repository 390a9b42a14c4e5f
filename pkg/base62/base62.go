package base62

import (
	"errors"
	"fmt"
	"math"
)

const charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
const base = 62

// maxLen — длина base62-записи math.MaxInt64.
const maxLen = 11

var index = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(charset); i++ {
		t[charset[i]] = int8(i)
	}
	return t
}()

// Encode переводит неотрицательный идентификатор в base62. Для n < 0 возвращает пустую строку.
func Encode(n int64) string {
	if n < 0 {
		return ""
	}
	if n == 0 {
		return charset[:1]
	}

	var buf [maxLen]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = charset[n%base]
		n /= base
	}
	return string(buf[i:])
}

// Decode переводит base62-строку обратно в идентификатор.
func Decode(s string) (int64, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	if len(s) > MaxLength(63) {
		return 0, ErrOverflow
	}

	var n int64
	for i := 0; i < len(s); i++ {
		d := index[s[i]]
		if d < 0 {
			return 0, &InvalidCharError{Char: s[i], Pos: i}
		}
		if n > (math.MaxInt64-int64(d))/base {
			return 0, ErrOverflow
		}
		n = n*base + int64(d)
	}
	return n, nil
}

// MaxLength возвращает максимальную длину base62-строки для заданной битности.
func MaxLength(bits int) int {
	return int(math.Ceil(float64(bits) * math.Log(2) / math.Log(base)))
}

// InvalidCharError — недопустимый символ в base62-строке.
type InvalidCharError struct {
	Char byte
	Pos  int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("base62: недопустимый символ %q в позиции %d", e.Char, e.Pos)
}

var (
	// ErrOverflow — значение не помещается в int64.
	ErrOverflow = errors.New("base62: переполнение числа")
	// ErrEmpty — пустая строка.
	ErrEmpty = errors.New("base62: пустая строка")
)
