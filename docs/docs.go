// Package docs регистрирует описание HTTP API для swagger-ui.
// Шаблон повторяет аннотации хендлеров в internal/handler и правится вместе с ними.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/uid": {
            "get": {
                "description": "Выдаёт один 64-битный идентификатор.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "uid"
                ],
                "summary": "Новый uid",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UIDResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/uid/batch": {
            "get": {
                "description": "Выдаёт от 1 до 1000 идентификаторов подряд.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "uid"
                ],
                "summary": "Пачка uid",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Количество (1–1000)",
                        "name": "count",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BatchResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/uid/{uid}": {
            "get": {
                "description": "Возвращает время выдачи, worker id, sequence и все текстовые формы идентификатора.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "uid"
                ],
                "summary": "Разбор uid",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Идентификатор",
                        "name": "uid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "enum": [
                            "dec",
                            "base62",
                            "base58",
                            "base32"
                        ],
                        "type": "string",
                        "description": "Представление: dec, base62, base58, base32",
                        "name": "enc",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ParseResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Возвращает статус генератора (и базы данных, если worker id выдаётся через неё).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "система"
                ],
                "summary": "Проверка здоровья",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.BatchResponse": {
            "type": "object",
            "properties": {
                "uids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "db": {
                    "type": "string"
                },
                "generator": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "dto.ParseResponse": {
            "type": "object",
            "properties": {
                "forms": {
                    "$ref": "#/definitions/encoding.Text"
                },
                "parsed": {
                    "type": "object"
                }
            }
        },
        "dto.UIDResponse": {
            "type": "object",
            "properties": {
                "base62": {
                    "type": "string"
                },
                "uid": {
                    "type": "string"
                }
            }
        },
        "encoding.Text": {
            "type": "object",
            "properties": {
                "base32": {
                    "type": "string"
                },
                "base58": {
                    "type": "string"
                },
                "base62": {
                    "type": "string"
                },
                "dec": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "UID Generator API",
	Description:      "Сервис выдачи 64-битных уникальных идентификаторов.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
