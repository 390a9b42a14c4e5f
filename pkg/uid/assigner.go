package uid

import "context"

// WorkerIDAssigner выдаёт worker id. Вызывается ровно один раз в New.
type WorkerIDAssigner interface {
	AssignWorkerID(ctx context.Context) (int64, error)
}

// AssignerFunc — адаптер функции к WorkerIDAssigner.
type AssignerFunc func(ctx context.Context) (int64, error)

func (f AssignerFunc) AssignWorkerID(ctx context.Context) (int64, error) { return f(ctx) }

// StaticAssigner возвращает worker id, заданный в конфигурации.
type StaticAssigner int64

func (s StaticAssigner) AssignWorkerID(context.Context) (int64, error) { return int64(s), nil }
