package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"

	"uidgen/internal/db"
	"uidgen/internal/model"
	"uidgen/internal/repository"
)

func newRepo(t *testing.T) *repository.WorkerNodeRepository {
	t.Helper()
	gdb, err := db.Open(sqlite.Open(filepath.Join(t.TempDir(), "uid.db")))
	if err != nil {
		t.Fatalf("db.Open ошибка: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repository.NewWorkerNodeRepository(gdb)
}

func TestCreate_AssignsIncreasingIDs(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 3; i++ {
		node := &model.WorkerNode{
			HostName:   "host-a",
			Port:       "8080",
			Type:       model.NodeTypeActual,
			LaunchDate: time.Now(),
		}
		if err := repo.Create(ctx, node); err != nil {
			t.Fatalf("Create ошибка: %v", err)
		}
		if node.ID <= prev {
			t.Fatalf("ID = %d, ожидалось больше %d", node.ID, prev)
		}
		prev = node.ID
	}
}

func TestFindByHostPort(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	got, err := repo.FindByHostPort(ctx, "host-a", "1")
	if err != nil || got != nil {
		t.Fatalf("FindByHostPort на пустой таблице = (%v, %v), ожидалось (nil, nil)", got, err)
	}

	first := &model.WorkerNode{HostName: "host-a", Port: "1", Type: model.NodeTypeContainer, LaunchDate: time.Now()}
	second := &model.WorkerNode{HostName: "host-a", Port: "1", Type: model.NodeTypeContainer, LaunchDate: time.Now()}
	other := &model.WorkerNode{HostName: "host-b", Port: "1", Type: model.NodeTypeContainer, LaunchDate: time.Now()}
	for _, n := range []*model.WorkerNode{first, second, other} {
		if err := repo.Create(ctx, n); err != nil {
			t.Fatalf("Create ошибка: %v", err)
		}
	}

	got, err = repo.FindByHostPort(ctx, "host-a", "1")
	if err != nil {
		t.Fatalf("FindByHostPort ошибка: %v", err)
	}
	if got == nil || got.ID != second.ID {
		t.Errorf("FindByHostPort = %+v, ожидался узел %d", got, second.ID)
	}
}

func TestPing(t *testing.T) {
	if err := newRepo(t).Ping(context.Background()); err != nil {
		t.Errorf("Ping ошибка: %v", err)
	}
}
