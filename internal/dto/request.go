package dto

// BatchRequest — запрос пачки идентификаторов (?count=N).
type BatchRequest struct {
	Count int `validate:"required,min=1,max=1000"`
}

// ParseRequest — запрос разбора идентификатора (/api/v1/uid/{uid}?enc=...).
type ParseRequest struct {
	UID string `validate:"required,max=64"`
	Enc string `validate:"omitempty,oneof=dec base62 base58 base32"`
}
