package worker_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"

	"uidgen/internal/config"
	"uidgen/internal/db"
	"uidgen/internal/model"
	"uidgen/internal/repository"
	"uidgen/internal/worker"
	"uidgen/pkg/uid"
)

// --- мок ---

type mockStore struct {
	createFn func(ctx context.Context, node *model.WorkerNode) error
	findFn   func(ctx context.Context, host, port string) (*model.WorkerNode, error)
	nodes    []*model.WorkerNode
	lookups  []string
}

func (m *mockStore) Create(ctx context.Context, node *model.WorkerNode) error {
	m.nodes = append(m.nodes, node)
	if m.createFn != nil {
		return m.createFn(ctx, node)
	}
	node.ID = int64(len(m.nodes))
	return nil
}

func (m *mockStore) FindByHostPort(ctx context.Context, host, port string) (*model.WorkerNode, error) {
	m.lookups = append(m.lookups, host+":"+port)
	if m.findFn != nil {
		return m.findFn(ctx, host, port)
	}
	return nil, nil
}

// --- DisposableAssigner ---

func TestDisposableAssigner_Container(t *testing.T) {
	store := &mockStore{}
	a := worker.NewDisposableAssigner(store, "pod-7", "8080")

	id, err := a.AssignWorkerID(context.Background())
	if err != nil {
		t.Fatalf("AssignWorkerID ошибка: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, ожидалось 1", id)
	}

	node := store.nodes[0]
	if node.Type != model.NodeTypeContainer || node.HostName != "pod-7" || node.Port != "8080" {
		t.Errorf("узел = %+v", node)
	}
	if node.LaunchDate.IsZero() {
		t.Error("LaunchDate не заполнен")
	}
}

func TestDisposableAssigner_ActualHostGeneratesPort(t *testing.T) {
	store := &mockStore{}
	a := worker.NewDisposableAssigner(store, "", "")

	if _, err := a.AssignWorkerID(context.Background()); err != nil {
		t.Fatalf("AssignWorkerID ошибка: %v", err)
	}

	node := store.nodes[0]
	if node.Type != model.NodeTypeActual {
		t.Errorf("Type = %d, ожидался NodeTypeActual", node.Type)
	}
	if node.HostName == "" {
		t.Error("HostName пустой")
	}
	if !strings.Contains(node.Port, "-") {
		t.Errorf("Port = %q, ожидался вид <ms>-<random>", node.Port)
	}
}

func TestDisposableAssigner_StoreError(t *testing.T) {
	dbErr := errors.New("бд недоступна")
	store := &mockStore{createFn: func(context.Context, *model.WorkerNode) error { return dbErr }}

	_, err := worker.NewDisposableAssigner(store, "pod", "1").AssignWorkerID(context.Background())
	if !errors.Is(err, dbErr) {
		t.Errorf("ошибка = %v, ожидалась %v", err, dbErr)
	}
}

func TestDisposableAssigner_LooksUpConfiguredPort(t *testing.T) {
	store := &mockStore{}
	if _, err := worker.NewDisposableAssigner(store, "pod-7", "8080").AssignWorkerID(context.Background()); err != nil {
		t.Fatalf("AssignWorkerID ошибка: %v", err)
	}
	if len(store.lookups) != 1 || store.lookups[0] != "pod-7:8080" {
		t.Errorf("поиски = %v, ожидался [pod-7:8080]", store.lookups)
	}

	// Сгенерированный порт уникален, искать нечего.
	store = &mockStore{}
	if _, err := worker.NewDisposableAssigner(store, "pod-7", "").AssignWorkerID(context.Background()); err != nil {
		t.Fatalf("AssignWorkerID ошибка: %v", err)
	}
	if len(store.lookups) != 0 {
		t.Errorf("поиски = %v, ожидалось без поиска", store.lookups)
	}
}

func TestDisposableAssigner_PreviousLeaseLogged(t *testing.T) {
	var buf bytes.Buffer
	prevLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prevLogger) })

	store := &mockStore{
		findFn: func(context.Context, string, string) (*model.WorkerNode, error) {
			return &model.WorkerNode{ID: 5, HostName: "pod-7", Port: "8080"}, nil
		},
	}
	id, err := worker.NewDisposableAssigner(store, "pod-7", "8080").AssignWorkerID(context.Background())
	if err != nil {
		t.Fatalf("AssignWorkerID ошибка: %v", err)
	}
	if id != 1 || len(store.nodes) != 1 {
		t.Errorf("id = %d, узлов = %d: ожидалась новая регистрация", id, len(store.nodes))
	}
	if !strings.Contains(buf.String(), `"previous_worker_id":5`) {
		t.Errorf("в логе нет прежнего worker id: %s", buf.String())
	}
}

func TestDisposableAssigner_LookupError(t *testing.T) {
	dbErr := errors.New("бд недоступна")
	store := &mockStore{
		findFn: func(context.Context, string, string) (*model.WorkerNode, error) { return nil, dbErr },
	}
	_, err := worker.NewDisposableAssigner(store, "pod", "1").AssignWorkerID(context.Background())
	if !errors.Is(err, dbErr) {
		t.Errorf("ошибка = %v, ожидалась %v", err, dbErr)
	}
	if len(store.nodes) != 0 {
		t.Error("узел не должен регистрироваться после ошибки поиска")
	}
}

// --- NewAssigner ---

func TestNewAssigner(t *testing.T) {
	static, err := worker.NewAssigner(config.WorkerConfig{Strategy: config.WorkerStrategyStatic, ID: 42}, nil)
	if err != nil {
		t.Fatalf("static ошибка: %v", err)
	}
	if id, _ := static.AssignWorkerID(context.Background()); id != 42 {
		t.Errorf("static id = %d, ожидалось 42", id)
	}

	if _, err := worker.NewAssigner(config.WorkerConfig{Strategy: config.WorkerStrategyDB}, nil); err == nil {
		t.Error("db без хранилища: ожидалась ошибка")
	}
	if _, err := worker.NewAssigner(config.WorkerConfig{Strategy: "zookeeper"}, nil); err == nil {
		t.Error("неизвестная стратегия: ожидалась ошибка")
	}
}

// Каждый запуск генератора поверх одной базы получает свой worker id.
func TestDisposableAssigner_SQLite(t *testing.T) {
	gdb, err := db.Open(sqlite.Open(filepath.Join(t.TempDir(), "uid.db")))
	if err != nil {
		t.Fatalf("db.Open ошибка: %v", err)
	}
	repo := repository.NewWorkerNodeRepository(gdb)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	seen := make(map[int64]bool)
	for i := 0; i < 3; i++ {
		a, err := worker.NewAssigner(config.WorkerConfig{Strategy: config.WorkerStrategyDB, Host: "pod"}, repo)
		if err != nil {
			t.Fatalf("NewAssigner ошибка: %v", err)
		}
		g, err := uid.New(context.Background(), uid.DefaultConfig(), a, uid.WithLogger(logger))
		if err != nil {
			t.Fatalf("uid.New ошибка: %v", err)
		}
		if seen[g.WorkerID()] {
			t.Fatalf("worker id %d выдан повторно", g.WorkerID())
		}
		seen[g.WorkerID()] = true
	}
}
