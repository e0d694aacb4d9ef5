package jobs

import (
	"context"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/memory"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedOrder(t *testing.T, repo *memory.OrderRepository, status order.Status) {
	t.Helper()

	stored, err := order.RestoreOrder(kernel.NewOrderID(), "Alice Corp", 10, time.Now().UTC(), status)
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), stored))
}

func TestOrderStatsJob_SnapshotCounts(t *testing.T) {
	repo := memory.NewOrderRepository()
	seedOrder(t, repo, order.Pending)
	seedOrder(t, repo, order.Pending)
	seedOrder(t, repo, order.Completed)

	job := NewOrderStatsJob(queries.NewGetOrdersQueryHandler(repo), zap.NewNop())

	counts, total, err := job.snapshotCounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, counts["Pending"])
	assert.Equal(t, 1, counts["Completed"])
}

func TestOrderStatsJob_StartStop(t *testing.T) {
	repo := memory.NewOrderRepository()
	job := NewOrderStatsJob(queries.NewGetOrdersQueryHandler(repo), zap.NewNop())

	require.NoError(t, job.Start())
	job.Stop()
}
