package services

import (
	"errors"
	"fmt"

	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/status"
)

// Rejection reasons reported by TransitionValidator.
const (
	ReasonStatusUnchanged = "status unchanged"
	ReasonUnknownStatus   = "unknown or inactive status"
	ReasonDriverRequired  = "driver required for this status"
	ReasonRoleNotAllowed  = "role not allowed to set this status"
)

// ErrTransitionRejected is the sentinel behind every TransitionRejectedError.
var ErrTransitionRejected = errors.New("transition rejected")

// TransitionRejectedError carries the verdict of a refused transition.
type TransitionRejectedError struct {
	From   status.Code
	To     status.Code
	Reason string
}

func (e *TransitionRejectedError) Error() string {
	return fmt.Sprintf("%s: %s -> %s: %s", ErrTransitionRejected, e.From, e.To, e.Reason)
}

func (e *TransitionRejectedError) Unwrap() error {
	return ErrTransitionRejected
}

// Verdict is the outcome of a validation. A rejection is a value, not a panic.
type Verdict struct {
	Valid  bool
	Reason string

	from, to status.Code
}

// Err returns nil for a valid verdict and a *TransitionRejectedError otherwise.
func (v Verdict) Err() error {
	if v.Valid {
		return nil
	}
	return &TransitionRejectedError{From: v.from, To: v.to, Reason: v.Reason}
}

// StatusCatalog is the part of status.Registry the validator reads.
type StatusCatalog interface {
	Lookup(code status.Code) (status.Definition, bool)
}

// TransitionValidator decides whether an order may move from one status to
// another. The graph is permissive: any active status is reachable from any
// other, subject to the driver requirement of the target.
type TransitionValidator struct {
	catalog StatusCatalog
}

// NewTransitionValidator creates a validator backed by catalog.
func NewTransitionValidator(catalog StatusCatalog) TransitionValidator {
	return TransitionValidator{catalog: catalog}
}

// Validate applies, in order: no-op check, target existence and activity,
// driver requirement. driver is the driver supplied with the request.
func (v TransitionValidator) Validate(current, target status.Code, driver string) Verdict {
	reject := func(reason string) Verdict {
		return Verdict{Reason: reason, from: current, to: target}
	}

	if current == target {
		return reject(ReasonStatusUnchanged)
	}

	def, ok := v.catalog.Lookup(target)
	if !ok || !def.IsActive {
		return reject(ReasonUnknownStatus)
	}

	if def.RequiresDriverOnEntry && !order.IsDriverAssigned(driver) {
		return reject(ReasonDriverRequired)
	}

	return Verdict{Valid: true, from: current, to: target}
}

// ValidateRole checks that role may set target. It is only consulted when the
// caller identifies itself.
func (v TransitionValidator) ValidateRole(current, target status.Code, role status.Role) Verdict {
	def, ok := v.catalog.Lookup(target)
	if !ok {
		return Verdict{Reason: ReasonUnknownStatus, from: current, to: target}
	}
	if !def.AllowsRole(role) {
		return Verdict{Reason: ReasonRoleNotAllowed, from: current, to: target}
	}
	return Verdict{Valid: true, from: current, to: target}
}
