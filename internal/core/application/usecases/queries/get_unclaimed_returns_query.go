package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/domain/services"
	"deliveryops/internal/pkg/errs"
	"deliveryops/internal/pkg/guard"
)

var ErrGetUnclaimedReturnsQueryIsNotConstructed = errors.New(
	"GetUnclaimedReturnsQuery must be created via NewGetUnclaimedReturnsQuery constructor",
)

// GetUnclaimedReturnsQuery lists the returned orders that can still be put on
// a slip of the given stage: returned_by_driver orders for driver slips,
// returned_to_branch orders for merchant slips. Party narrows to one driver
// or merchant; empty means everyone.
type GetUnclaimedReturnsQuery struct {
	stage slip.Stage
	party string
	guard guard.ConstructorGuard
}

// NewGetUnclaimedReturnsQuery validates the stage.
func NewGetUnclaimedReturnsQuery(stage, party string) (GetUnclaimedReturnsQuery, error) {
	s := slip.Stage(strings.TrimSpace(stage))
	if s != slip.StageDriver && s != slip.StageMerchant {
		return GetUnclaimedReturnsQuery{}, errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%q is not one of %s, %s", stage, slip.StageDriver, slip.StageMerchant))
	}
	return GetUnclaimedReturnsQuery{
		stage: s,
		party: strings.TrimSpace(party),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnclaimedReturnsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnclaimedReturnsQueryIsNotConstructed)
}

func (q GetUnclaimedReturnsQuery) Stage() slip.Stage {
	return q.stage
}

func (q GetUnclaimedReturnsQuery) Party() string {
	return q.party
}

// UnclaimedReturnsResponse lists candidate orders with their totals.
type UnclaimedReturnsResponse struct {
	Stage  slip.Stage
	Orders []OrderResponse
	Totals services.Totals
}

// GetUnclaimedReturnsQueryHandler excludes every order holding an open claim
// at the requested stage.
type GetUnclaimedReturnsQueryHandler struct {
	readers  ReaderFactory
	statuses StatusCatalog
}

// NewGetUnclaimedReturnsQueryHandler creates the handler.
func NewGetUnclaimedReturnsQueryHandler(readers ReaderFactory, statuses StatusCatalog) GetUnclaimedReturnsQueryHandler {
	return GetUnclaimedReturnsQueryHandler{readers: readers, statuses: statuses}
}

func (h GetUnclaimedReturnsQueryHandler) Handle(ctx context.Context, query GetUnclaimedReturnsQuery) (UnclaimedReturnsResponse, error) {
	if err := query.Validate(); err != nil {
		return UnclaimedReturnsResponse{}, err
	}

	reader := h.readers.Create()

	orders := reader.OrderRepository()

	var candidates []*order.Order
	var err error
	if query.Stage() == slip.StageMerchant {
		candidates, err = orders.ListByMerchant(ctx, query.Party(), status.ReturnedToBranch)
	} else {
		candidates, err = orders.ListByDriver(ctx, query.Party(), status.ReturnedByDriver)
	}
	if err != nil {
		return UnclaimedReturnsResponse{}, err
	}

	ids := make([]kernel.UUID, len(candidates))
	for i, o := range candidates {
		ids[i] = o.ID()
	}

	claims, err := reader.SlipRepository().ActiveClaims(ctx, query.Stage(), ids)
	if err != nil {
		return UnclaimedReturnsResponse{}, err
	}

	unclaimed := make([]*order.Order, 0, len(candidates))
	for _, o := range candidates {
		if _, claimed := claims[o.ID()]; !claimed {
			unclaimed = append(unclaimed, o)
		}
	}

	return UnclaimedReturnsResponse{
		Stage:  query.Stage(),
		Orders: newOrderResponses(unclaimed, h.statuses),
		Totals: services.ComputeTotals(unclaimed),
	}, nil
}
