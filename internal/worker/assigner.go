package worker

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"uidgen/internal/config"
	"uidgen/internal/model"
	"uidgen/pkg/uid"
)

// NodeStore — хранилище узлов, в котором строка выдаёт worker id.
type NodeStore interface {
	Create(ctx context.Context, node *model.WorkerNode) error
	FindByHostPort(ctx context.Context, host, port string) (*model.WorkerNode, error)
}

// DisposableAssigner выдаёт новый worker id на каждый запуск: регистрирует узел
// в worker_node и возвращает ID строки. Повторно id не используются.
type DisposableAssigner struct {
	store NodeStore
	host  string
	port  string
	now   func() time.Time
}

// NewDisposableAssigner создаёт assigner. Если host задан, узел считается контейнером.
func NewDisposableAssigner(store NodeStore, host, port string) *DisposableAssigner {
	return &DisposableAssigner{store: store, host: host, port: port, now: time.Now}
}

// AssignWorkerID регистрирует узел и возвращает его ID.
func (a *DisposableAssigner) AssignWorkerID(ctx context.Context) (int64, error) {
	node, err := a.buildNode()
	if err != nil {
		return 0, err
	}

	// Порт задан в конфигурации: узел мог регистрироваться раньше, его старый id не переиспользуется.
	if a.port != "" {
		prev, err := a.store.FindByHostPort(ctx, node.HostName, node.Port)
		if err != nil {
			return 0, fmt.Errorf("worker: поиск прежней регистрации: %w", err)
		}
		if prev != nil {
			slog.Info("узел уже регистрировался, выдаётся новый worker id",
				"previous_worker_id", prev.ID,
				"previous_launch_date", prev.LaunchDate,
				"host", node.HostName,
				"port", node.Port,
			)
		}
	}

	if err := a.store.Create(ctx, node); err != nil {
		return 0, fmt.Errorf("worker: регистрация узла: %w", err)
	}

	slog.Info("worker id выдан",
		"worker_id", node.ID,
		"host", node.HostName,
		"port", node.Port,
		"type", node.Type,
	)
	return node.ID, nil
}

func (a *DisposableAssigner) buildNode() (*model.WorkerNode, error) {
	now := a.now()
	node := &model.WorkerNode{LaunchDate: now}

	if a.host != "" {
		node.Type = model.NodeTypeContainer
		node.HostName = a.host
		node.Port = a.port
	} else {
		host, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("worker: имя хоста: %w", err)
		}
		node.Type = model.NodeTypeActual
		node.HostName = host
		node.Port = a.port
	}

	// Без порта пара host/port должна оставаться уникальной между запусками.
	if node.Port == "" {
		node.Port = strconv.FormatInt(now.UnixMilli(), 10) + "-" + strconv.Itoa(rand.IntN(100000))
	}
	return node, nil
}

// NewAssigner выбирает реализацию по worker.strategy.
// store нужен только для стратегии db.
func NewAssigner(cfg config.WorkerConfig, store NodeStore) (uid.WorkerIDAssigner, error) {
	switch cfg.Strategy {
	case config.WorkerStrategyStatic:
		return uid.StaticAssigner(cfg.ID), nil
	case config.WorkerStrategyDB:
		if store == nil {
			return nil, fmt.Errorf("worker: стратегия %q требует базу данных", cfg.Strategy)
		}
		return NewDisposableAssigner(store, cfg.Host, cfg.Port), nil
	default:
		return nil, fmt.Errorf("worker: неизвестная стратегия %q", cfg.Strategy)
	}
}
