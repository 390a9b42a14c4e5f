package model

import "time"

// NodeType — где запущен экземпляр генератора.
type NodeType int

const (
	// NodeTypeContainer — контейнер, хост и порт берутся из окружения.
	NodeTypeContainer NodeType = 1
	// NodeTypeActual — обычная машина.
	NodeTypeActual NodeType = 2
)

// WorkerNode — модель таблицы worker_node. ID строки и есть выданный worker id.
type WorkerNode struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	HostName   string    `gorm:"size:64;not null;index:idx_worker_host_port" json:"host_name"`
	Port       string    `gorm:"size:64;not null;index:idx_worker_host_port" json:"port"`
	Type       NodeType  `gorm:"not null" json:"type"`
	LaunchDate time.Time `gorm:"not null" json:"launch_date"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"modified"`
}

// TableName возвращает имя таблицы в БД.
func (WorkerNode) TableName() string {
	return "worker_node"
}
