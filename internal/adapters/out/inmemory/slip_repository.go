package inmemory

import (
	"context"
	"slices"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/pkg/errs"
)

// SlipRepository implements ports.SlipRepository.
type SlipRepository struct {
	uow *UnitOfWork
}

// AddDriverSlip stores the slip and opens driver-stage claims.
func (r *SlipRepository) AddDriverSlip(_ context.Context, s *slip.DriverSlip) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.uow.with(func(st *state) error {
		if err := openClaims(st, slip.StageDriver, s.ID(), s.OrderIDs()); err != nil {
			return err
		}
		st.driverSlips[s.ID()] = slipRow{
			id:        s.ID(),
			party:     s.DriverName(),
			date:      s.Date(),
			entries:   s.Entries(),
			createdAt: s.CreatedAt(),
		}
		return nil
	})
}

// GetDriverSlip loads a driver slip.
func (r *SlipRepository) GetDriverSlip(_ context.Context, id string) (*slip.DriverSlip, error) {
	var row slipRow
	err := r.uow.with(func(st *state) error {
		var ok bool
		if row, ok = st.driverSlips[id]; !ok {
			return errs.NewObjectNotFoundError("driverSlip", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slip.RestoreDriverSlip(row.id, row.party, row.date, row.entries, row.createdAt)
}

// ListDriverSlips returns slips newest first.
func (r *SlipRepository) ListDriverSlips(_ context.Context, driverName string) ([]*slip.DriverSlip, error) {
	rows := r.rows(func(st *state) map[string]slipRow { return st.driverSlips }, driverName)
	out := make([]*slip.DriverSlip, 0, len(rows))
	for _, row := range rows {
		s, err := slip.RestoreDriverSlip(row.id, row.party, row.date, row.entries, row.createdAt)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// AddMerchantSlip stores the slip and opens merchant-stage claims.
func (r *SlipRepository) AddMerchantSlip(_ context.Context, s *slip.MerchantSlip) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.uow.with(func(st *state) error {
		if err := openClaims(st, slip.StageMerchant, s.ID(), s.OrderIDs()); err != nil {
			return err
		}
		st.merchantSlips[s.ID()] = slipRow{
			id:        s.ID(),
			party:     s.MerchantName(),
			date:      s.Date(),
			status:    s.Status(),
			entries:   s.Entries(),
			createdAt: s.CreatedAt(),
		}
		return nil
	})
}

// UpdateMerchantSlip persists the slip status.
func (r *SlipRepository) UpdateMerchantSlip(_ context.Context, s *slip.MerchantSlip) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.uow.with(func(st *state) error {
		row, ok := st.merchantSlips[s.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("merchantSlip", s.ID())
		}
		row.status = s.Status()
		st.merchantSlips[s.ID()] = row
		return nil
	})
}

// GetMerchantSlip loads a merchant slip.
func (r *SlipRepository) GetMerchantSlip(_ context.Context, id string) (*slip.MerchantSlip, error) {
	var row slipRow
	err := r.uow.with(func(st *state) error {
		var ok bool
		if row, ok = st.merchantSlips[id]; !ok {
			return errs.NewObjectNotFoundError("merchantSlip", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slip.RestoreMerchantSlip(row.id, row.party, row.date, row.status, row.entries, row.createdAt)
}

// ListMerchantSlips returns slips newest first.
func (r *SlipRepository) ListMerchantSlips(_ context.Context, merchantName string) ([]*slip.MerchantSlip, error) {
	rows := r.rows(func(st *state) map[string]slipRow { return st.merchantSlips }, merchantName)
	out := make([]*slip.MerchantSlip, 0, len(rows))
	for _, row := range rows {
		s, err := slip.RestoreMerchantSlip(row.id, row.party, row.date, row.status, row.entries, row.createdAt)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ActiveClaims maps claimed orders to their slip.
func (r *SlipRepository) ActiveClaims(_ context.Context, stage slip.Stage, orderIDs []kernel.UUID) (map[kernel.UUID]string, error) {
	claims := make(map[kernel.UUID]string)
	_ = r.uow.with(func(st *state) error {
		for _, c := range st.claims {
			if c.stage != stage || c.releasedAt != nil {
				continue
			}
			if orderIDs == nil || slices.Contains(orderIDs, c.orderID) {
				claims[c.orderID] = c.slipID
			}
		}
		return nil
	})
	return claims, nil
}

// ReleaseClaims closes open claims.
func (r *SlipRepository) ReleaseClaims(_ context.Context, stage slip.Stage, orderIDs []kernel.UUID) error {
	return r.uow.with(func(st *state) error {
		now := r.uow.store.now()
		for i, c := range st.claims {
			if c.stage == stage && c.releasedAt == nil && slices.Contains(orderIDs, c.orderID) {
				st.claims[i].releasedAt = &now
			}
		}
		return nil
	})
}

func (r *SlipRepository) rows(table func(*state) map[string]slipRow, party string) []slipRow {
	var rows []slipRow
	_ = r.uow.with(func(st *state) error {
		for _, row := range table(st) {
			if party == "" || row.party == party {
				rows = append(rows, row)
			}
		}
		return nil
	})
	slices.SortFunc(rows, func(a, b slipRow) int {
		if c := b.createdAt.Compare(a.createdAt); c != 0 {
			return c
		}
		switch {
		case a.id > b.id:
			return -1
		case a.id < b.id:
			return 1
		default:
			return 0
		}
	})
	return rows
}

// openClaims enforces at most one open claim per (order, stage).
func openClaims(st *state, stage slip.Stage, slipID string, orderIDs []kernel.UUID) error {
	for _, c := range st.claims {
		if c.stage == stage && c.releasedAt == nil && slices.Contains(orderIDs, c.orderID) {
			return errs.NewConflictError("order", c.orderID.String(), "already on "+string(stage)+" slip "+c.slipID)
		}
	}
	for _, id := range orderIDs {
		st.claims = append(st.claims, claimRow{orderID: id, stage: stage, slipID: slipID})
	}
	return nil
}
