package repository

import (
	"context"
	"sync"

	"github.com/mmeshcher/luhn-system/internal/model"
)

// MemoryRepository хранит историю проверок в памяти процесса.
// Используется, когда адрес БД не задан.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	checks []model.Check
}

// NewMemoryRepository создаёт пустое хранилище в памяти.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Close ничего не делает.
func (r *MemoryRepository) Close() error {
	return nil
}

// SaveCheck сохраняет результат проверки и возвращает его идентификатор.
func (r *MemoryRepository) SaveCheck(ctx context.Context, c model.Check) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	c.ID = r.nextID
	r.checks = append(r.checks, c)

	return c.ID, nil
}

// ListChecks возвращает не более limit последних проверок, новые первыми.
func (r *MemoryRepository) ListChecks(ctx context.Context, limit int) ([]model.Check, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	n := min(limit, len(r.checks))
	result := make([]model.Check, 0, n)
	for i := len(r.checks) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, r.checks[i])
	}

	return result, nil
}
