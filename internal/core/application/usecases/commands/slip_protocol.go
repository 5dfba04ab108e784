package commands

import (
	"context"
	"errors"
	"fmt"

	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/ports"
	"deliveryops/internal/pkg/errs"
	"deliveryops/internal/pkg/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("deliveryops/internal/core/application/usecases/commands")

// slipRules describe what makes an order eligible for a slip of one stage.
type slipRules struct {
	stage          slip.Stage
	requiredStatus status.Code
	owner          func(*order.Order) string
}

var (
	driverSlipRules = slipRules{
		stage:          slip.StageDriver,
		requiredStatus: status.ReturnedByDriver,
		owner:          (*order.Order).Driver,
	}
	merchantSlipRules = slipRules{
		stage:          slip.StageMerchant,
		requiredStatus: status.ReturnedToBranch,
		owner:          (*order.Order).Merchant,
	}
)

// loadEligible loads every order of the batch and checks, order by order in
// request order, that it is unclaimed at this stage, owned by the requesting
// party and in the required status. Nothing is written.
func (r slipRules) loadEligible(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	slipRepo ports.SlipRepository,
	batch slipBatch,
) ([]*order.Order, error) {
	orders, err := orderRepo.GetMany(ctx, batch.orderIDs)
	if err != nil {
		return nil, err
	}

	claims, err := slipRepo.ActiveClaims(ctx, r.stage, batch.orderIDs)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		id := o.ID().String()
		if slipID, claimed := claims[o.ID()]; claimed {
			return nil, errs.NewConflictError("order", id, fmt.Sprintf("already on %s slip %s", r.stage, slipID))
		}
		if owner := r.owner(o); owner != batch.party {
			return nil, errs.NewConflictError("order", id, fmt.Sprintf("belongs to %s %q", r.stage, owner))
		}
		if o.Status() != r.requiredStatus {
			return nil, errs.NewConflictError("order", id,
				fmt.Sprintf("status is %s, expected %s", o.Status(), r.requiredStatus))
		}
	}

	return orders, nil
}

func startSlipSpan(ctx context.Context, name string, stage slip.Stage, party string, orders int) (context.Context, trace.Span) {
	return tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("slip.stage", string(stage)),
			attribute.String("slip.party", party),
			attribute.Int("slip.orders", orders),
		),
	)
}

// finishSlipSpan records the outcome on the span and the conflict counter.
func finishSlipSpan(span trace.Span, stage slip.Stage, err error) {
	defer span.End()
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	if errors.Is(err, errs.ErrConflict) {
		metrics.SlipConflictsTotal.WithLabelValues(string(stage)).Inc()
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
