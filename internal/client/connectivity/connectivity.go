package connectivity

import (
	"context"
	"time"
)

//go:generate moq -out checker_mock.go . Checker

// Checker reports whether the server is currently reachable.
// Проверяется на каждом вызове, без кеширования: связь может появиться
// и пропасть между вызовами.
type Checker interface {
	Online(ctx context.Context) bool
}

// HealthClient минимальный срез API клиента для probe
type HealthClient interface {
	Health(ctx context.Context) error
}

// HealthChecker probes the server health endpoint
type HealthChecker struct {
	client  HealthClient
	timeout time.Duration
}

// NewHealthChecker creates a checker with a short probe timeout
func NewHealthChecker(client HealthClient) *HealthChecker {
	return &HealthChecker{
		client:  client,
		timeout: 3 * time.Second,
	}
}

// Online сообщает, доступен ли сервер прямо сейчас
func (c *HealthChecker) Online(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.Health(ctx) == nil
}
