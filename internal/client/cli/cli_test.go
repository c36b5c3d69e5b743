package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/carlos0768/lexisync/internal/client/auth"
	"github.com/carlos0768/lexisync/internal/client/connectivity"
	"github.com/carlos0768/lexisync/internal/client/iocli"
	"github.com/carlos0768/lexisync/internal/client/storage"
	"github.com/carlos0768/lexisync/internal/client/sync"
)

func joinArgs(a []any) string {
	parts := make([]string, 0, len(a))
	for _, v := range a {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, " ")
}

// testIO собирает вывод команды и отдаёт заранее заготовленные ответы
// на ReadInput/ReadPassword в порядке следования
func testIO(inputs ...string) (*iocli.IOMock, func() string) {
	var out []string
	next := func() (string, error) {
		if len(inputs) == 0 {
			return "", nil
		}
		v := inputs[0]
		inputs = inputs[1:]
		return v, nil
	}
	mock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out = append(out, joinArgs(a))
		},
		PrintfFunc: func(format string, a ...any) {
			out = append(out, fmt.Sprintf(format, a...))
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return next()
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return next()
		},
		WriteFunc: func(p []byte) (int, error) {
			out = append(out, string(p))
			return len(p), nil
		},
	}
	return mock, func() string { return strings.Join(out, "\n") }
}

func activeSession() *storage.Session {
	return &storage.Session{
		Username:  "alice",
		UserID:    "user-1",
		Tier:      "active",
		ExpiresAt: time.Now().Unix() + 900,
	}
}

func freeSession() *storage.Session {
	s := activeSession()
	s.Tier = "free"
	return s
}

func authWithSession(session *storage.Session) *auth.ServiceMock {
	return &auth.ServiceMock{
		SessionFunc: func(ctx context.Context) (*storage.Session, error) {
			return session, nil
		},
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) {
			return true, nil
		},
	}
}

func checkerOnline(online bool) *connectivity.CheckerMock {
	return &connectivity.CheckerMock{
		OnlineFunc: func(ctx context.Context) bool {
			return online
		},
	}
}

// drainerFunc адаптирует функцию под queueDrainer
type drainerFunc func(ctx context.Context) (*sync.Result, error)

func (f drainerFunc) Process(ctx context.Context) (*sync.Result, error) {
	return f(ctx)
}

// reconcilerStub управляемая заглушка полной сверки
type reconcilerStub struct {
	should    bool
	shouldErr error
	syncErr   error
	syncCalls int
}

func (r *reconcilerStub) ShouldSync(ctx context.Context, userID string) (bool, error) {
	return r.should, r.shouldErr
}

func (r *reconcilerStub) FullSync(ctx context.Context, ownerID string) error {
	r.syncCalls++
	return r.syncErr
}
