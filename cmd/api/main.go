package main

import (
	"log/slog"
	"os"

	_ "uidgen/docs"
	"uidgen/internal/app"
)

// @title       UID Generator API
// @version     1.0
// @description Сервис выдачи 64-битных уникальных идентификаторов.
// @host        localhost:8080
// @BasePath    /
func main() {
	a, err := app.Init()
	if err != nil {
		slog.Error("ошибка инициализации приложения", "error", err)
		os.Exit(1)
	}

	a.Run()
}
