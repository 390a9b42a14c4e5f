package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	envprovider "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"uidgen/pkg/uid"
)

// Стратегии выдачи worker id.
const (
	WorkerStrategyStatic = "static"
	WorkerStrategyDB     = "db"
)

// Драйверы базы данных.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DefaultPath — путь к конфигу, если CONFIG_PATH не задан.
const DefaultPath = "internal/config/configs/local.yaml"

// Config — корневая структура конфигурации приложения.
type Config struct {
	App      AppConfig      `koanf:"app"`
	UID      UIDConfig      `koanf:"uid"`
	Worker   WorkerConfig   `koanf:"worker"`
	DB       DBConfig       `koanf:"db"`
	Postgres PostgresConfig `koanf:"postgres"`
}

// AppConfig — настройки HTTP-сервера.
type AppConfig struct {
	Port string `koanf:"port"`
}

// UIDConfig — раскладка битов и эпоха генератора.
type UIDConfig struct {
	TimeBits            int    `koanf:"time_bits"`
	WorkerBits          int    `koanf:"worker_bits"`
	SeqBits             int    `koanf:"seq_bits"`
	Epoch               string `koanf:"epoch"`
	RandomSequenceLimit int64  `koanf:"random_sequence_limit"`
}

// Generator переводит секцию в uid.Config.
func (c UIDConfig) Generator() uid.Config {
	return uid.Config{
		TimeBits:            c.TimeBits,
		WorkerBits:          c.WorkerBits,
		SeqBits:             c.SeqBits,
		Epoch:               c.Epoch,
		RandomSequenceLimit: c.RandomSequenceLimit,
	}
}

// WorkerConfig — откуда брать worker id.
// static: значение ID; db: новая строка в таблице worker_node на каждый запуск.
type WorkerConfig struct {
	Strategy string `koanf:"strategy"`
	ID       int64  `koanf:"id"`
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
}

// DBConfig — выбор драйвера.
type DBConfig struct {
	Driver     string `koanf:"driver"`
	SQLitePath string `koanf:"sqlite_path"`
}

// PostgresConfig — параметры подключения к PostgreSQL.
type PostgresConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	DBName   string `koanf:"db_name"`
	SSLMode  string `koanf:"ssl_mode"`
}

// DSN формирует строку подключения к PostgreSQL.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DBName, p.SSLMode,
	)
}

// Default возвращает значения, которые действуют, если ключ не задан ни в файле, ни в окружении.
func Default() Config {
	def := uid.DefaultConfig()
	return Config{
		App: AppConfig{Port: "8080"},
		UID: UIDConfig{
			TimeBits:   def.TimeBits,
			WorkerBits: def.WorkerBits,
			SeqBits:    def.SeqBits,
			Epoch:      def.Epoch,
		},
		Worker: WorkerConfig{Strategy: WorkerStrategyStatic},
		DB:     DBConfig{Driver: DriverPostgres, SQLitePath: "uidgen.db"},
		Postgres: PostgresConfig{
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
		},
	}
}

// envMapping — переменные окружения, переопределяющие ключи конфига.
var envMapping = map[string]string{
	"app_port":                  "app.port",
	"uid_time_bits":             "uid.time_bits",
	"uid_worker_bits":           "uid.worker_bits",
	"uid_seq_bits":              "uid.seq_bits",
	"uid_epoch":                 "uid.epoch",
	"uid_random_sequence_limit": "uid.random_sequence_limit",
	"worker_strategy":           "worker.strategy",
	"worker_id":                 "worker.id",
	"worker_host":               "worker.host",
	"worker_port":               "worker.port",
	"db_driver":                 "db.driver",
	"db_sqlite_path":            "db.sqlite_path",
	"postgres_host":             "postgres.host",
	"postgres_port":             "postgres.port",
	"postgres_user":             "postgres.user",
	"postgres_password":         "postgres.password",
	"postgres_db_name":          "postgres.db_name",
	"postgres_ssl_mode":         "postgres.ssl_mode",
}

// Load загружает конфигурацию (путь задаётся через CONFIG_PATH) и завершает процесс при ошибке.
// По умолчанию: internal/config/configs/local.yaml
func Load() *Config {
	// .env не обязателен; уже заданные переменные окружения он не перетирает.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("конфиг: .env не загружен: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultPath
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		log.Fatalf("конфиг: %v", err)
	}
	return cfg
}

// LoadFrom читает YAML-файл path, затем переопределяет значения из переменных окружения.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Загрузка YAML-файла конфигурации
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("не удалось загрузить %s: %w", path, err)
	}

	// 2. Переопределение переменными окружения
	//    UID_SEQ_BITS  -> uid.seq_bits
	//    WORKER_ID     -> worker.id
	err := k.Load(envprovider.Provider(".", envprovider.Opt{
		Prefix: "",
		TransformFunc: func(key, value string) (string, any) {
			if mapped, ok := envMapping[strings.ToLower(key)]; ok {
				return mapped, value
			}
			return "", nil // неизвестные переменные игнорируются
		},
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("переменные окружения: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("ошибка десериализации: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ErrInvalid — конфигурация не прошла проверку.
var ErrInvalid = errors.New("некорректная конфигурация")

// Validate проверяет значения, которые не проверяет сам генератор.
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("%w: пустой app.port", ErrInvalid)
	}
	switch c.Worker.Strategy {
	case WorkerStrategyStatic, WorkerStrategyDB:
	default:
		return fmt.Errorf("%w: неизвестная стратегия worker.strategy %q", ErrInvalid, c.Worker.Strategy)
	}
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: неизвестный драйвер db.driver %q", ErrInvalid, c.DB.Driver)
	}
	return nil
}

// NeedsDB — нужна ли база данных для выбранной стратегии.
func (c *Config) NeedsDB() bool {
	return c.Worker.Strategy == WorkerStrategyDB
}
