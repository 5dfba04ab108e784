package jobs

import (
	"context"

	"deliveryops/internal/core/application/usecases/queries"
	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/pkg/logger"
	"deliveryops/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultBacklogSchedule runs the backlog report every five minutes.
const DefaultBacklogSchedule = "0 */5 * * * *"

// UnclaimedReturnsLister lists returned orders still waiting for a slip.
type UnclaimedReturnsLister interface {
	Handle(ctx context.Context, query queries.GetUnclaimedReturnsQuery) (queries.UnclaimedReturnsResponse, error)
}

// ReturnsBacklogJob reports how many returned orders wait for a driver slip
// and for a merchant slip. The counts feed the unclaimed returns gauge.
type ReturnsBacklogJob struct {
	handler  UnclaimedReturnsLister
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewReturnsBacklogJob creates the job. schedule is a six-field cron
// expression with seconds; empty means DefaultBacklogSchedule.
func NewReturnsBacklogJob(handler UnclaimedReturnsLister, schedule string, log *zap.Logger) *ReturnsBacklogJob {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}
	return &ReturnsBacklogJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.Component(log, "returns_backlog_job"),
	}
}

// Start schedules the report.
func (j *ReturnsBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Returns backlog job started", zap.String("schedule", j.schedule))
	return nil
}

// Run reports both stages once. A failing stage is logged and leaves its
// gauge untouched.
func (j *ReturnsBacklogJob) Run(ctx context.Context) {
	for _, stage := range []slip.Stage{slip.StageDriver, slip.StageMerchant} {
		query, err := queries.NewGetUnclaimedReturnsQuery(string(stage), "")
		if err != nil {
			j.logger.Error("Returns backlog job failed", zap.String("stage", string(stage)), zap.Error(err))
			continue
		}

		returns, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.Error("Returns backlog job failed", zap.String("stage", string(stage)), zap.Error(err))
			continue
		}

		metrics.UnclaimedReturns.WithLabelValues(string(stage)).Set(float64(len(returns.Orders)))
		j.logger.Info("Unclaimed returns",
			zap.String("stage", string(stage)),
			zap.Int("orders", len(returns.Orders)),
			zap.String("cod", returns.Totals.Display().COD),
		)
	}
}

// Stop stops scheduling and waits for a running report to finish.
func (j *ReturnsBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Returns backlog job stopped")
}
