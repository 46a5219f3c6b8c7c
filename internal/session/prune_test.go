package session

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"trainease/internal/worker"

	"github.com/stretchr/testify/require"
)

type countingPruner struct {
	calls atomic.Int32
	err   error
}

func (p *countingPruner) Prune(context.Context) (int64, error) {
	p.calls.Add(1)
	return 3, p.err
}

func TestPruneTaskLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	PruneTask(&countingPruner{}, logger)(context.Background())
	require.Contains(t, buf.String(), "pruned expired sessions")
	require.Contains(t, buf.String(), "count=3")

	buf.Reset()
	PruneTask(&countingPruner{err: errors.New("db down")}, logger)(context.Background())
	require.Contains(t, buf.String(), "prune sessions")
	require.Contains(t, buf.String(), "db down")
}

func TestStartPruning(t *testing.T) {
	pool := worker.NewPool(1, nil)
	defer pool.Stop()

	p := &countingPruner{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartPruning(ctx, pool, p, 5*time.Millisecond, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	require.Eventually(t, func() bool { return p.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}
