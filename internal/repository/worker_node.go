package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"uidgen/internal/model"
)

// WorkerNodeRepository — репозиторий таблицы worker_node через GORM.
type WorkerNodeRepository struct {
	db *gorm.DB
}

// NewWorkerNodeRepository создаёт новый экземпляр репозитория.
func NewWorkerNodeRepository(db *gorm.DB) *WorkerNodeRepository {
	return &WorkerNodeRepository{db: db}
}

// Create сохраняет узел. После вызова node.ID содержит выданный worker id.
func (r *WorkerNodeRepository) Create(ctx context.Context, node *model.WorkerNode) error {
	result := r.db.WithContext(ctx).Create(node)
	if result.Error != nil {
		return fmt.Errorf("репозиторий: создание worker node: %w", result.Error)
	}
	return nil
}

// FindByHostPort ищет последний зарегистрированный узел по хосту и порту.
func (r *WorkerNodeRepository) FindByHostPort(ctx context.Context, host, port string) (*model.WorkerNode, error) {
	var node model.WorkerNode
	result := r.db.WithContext(ctx).
		Where("host_name = ? AND port = ?", host, port).
		Order("id DESC").
		First(&node)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("репозиторий: поиск worker node: %w", result.Error)
	}
	return &node, nil
}

// Ping проверяет доступность базы данных.
func (r *WorkerNodeRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("репозиторий: получение sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
