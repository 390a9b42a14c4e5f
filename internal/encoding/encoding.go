package encoding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"

	"uidgen/pkg/base62"
)

// Kind — текстовое представление идентификатора.
type Kind string

const (
	Decimal Kind = "dec"
	Base62  Kind = "base62"
	Base58  Kind = "base58"
	Base32  Kind = "base32"
)

var (
	// ErrUnknownKind — неизвестное представление.
	ErrUnknownKind = errors.New("encoding: неизвестное представление")
	// ErrInvalidText — строка не является канонической записью идентификатора.
	ErrInvalidText = errors.New("encoding: недопустимая запись идентификатора")
)

// Text — все текстовые формы одного идентификатора.
type Text struct {
	Decimal string `json:"dec"`
	Base62  string `json:"base62"`
	Base58  string `json:"base58"`
	Base32  string `json:"base32"`
}

// Forms возвращает текстовые формы id.
func Forms(id int64) Text {
	sf := snowflake.ParseInt64(id)
	return Text{
		Decimal: sf.String(),
		Base62:  base62.Encode(id),
		Base58:  sf.Base58(),
		Base32:  sf.Base32(),
	}
}

// ParseKind разбирает имя представления. Пустая строка — Decimal.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return Decimal, nil
	case Decimal, Base62, Base58, Base32:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// ParseText разбирает идентификатор из представления kind.
func ParseText(s string, kind Kind) (int64, error) {
	var (
		id  snowflake.ID
		err error
	)
	switch kind {
	case Decimal:
		id, err = snowflake.ParseString(s)
	case Base62:
		var n int64
		n, err = base62.Decode(s)
		id = snowflake.ParseInt64(n)
	case Base58:
		id, err = snowflake.ParseBase58([]byte(s))
	case Base32:
		id, err = snowflake.ParseBase32([]byte(s))
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err != nil {
		return 0, fmt.Errorf("encoding: разбор %s %q: %w", kind, s, err)
	}
	if id < 0 {
		return 0, fmt.Errorf("%w: %q даёт отрицательный идентификатор %d", ErrInvalidText, s, id)
	}
	// Декодеры snowflake принимают символы вне алфавита как 0 и молча переполняются.
	if !canonical(id, s, kind) {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidText, kind, s)
	}
	return id.Int64(), nil
}

func canonical(id snowflake.ID, s string, kind Kind) bool {
	switch kind {
	case Base58:
		return id.Base58() == s
	case Base32:
		return id.Base32() == s
	default:
		return true
	}
}
