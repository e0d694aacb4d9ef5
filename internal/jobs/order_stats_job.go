package jobs

import (
	"context"

	"ordertrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// OrderStatsJob periodically snapshots the order book and logs the number of
// orders per status. Runs every minute; the output feeds log-based dashboards.
type OrderStatsJob struct {
	handler queries.GetOrdersQueryHandler
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewOrderStatsJob creates a job reporting order counts per status.
func NewOrderStatsJob(handler queries.GetOrdersQueryHandler, logger *zap.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With(zap.String("component", "order_stats_job")),
	}
}

// Start begins the stats job to run every minute.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		counts, total, reportErr := j.snapshotCounts(ctx)
		if reportErr != nil {
			j.logger.Error("order stats job failed", zap.Error(reportErr))
			return
		}

		fields := []zap.Field{zap.Int("total", total)}
		for status, count := range counts {
			fields = append(fields, zap.Int(status, count))
		}
		j.logger.Info("order stats", fields...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("order stats job started (running every minute)")
	return nil
}

// Stop stops the stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.Info("order stats job stopped")
}

func (j *OrderStatsJob) snapshotCounts(ctx context.Context) (map[string]int, int, error) {
	orders, err := j.handler.Handle(ctx, queries.NewGetOrdersQuery("", ""))
	if err != nil {
		return nil, 0, err
	}

	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.Status]++
	}

	return counts, len(orders), nil
}
