// Package queries contains the read operations. Queries read committed state
// through the repositories of an unstarted unit of work and never write.
package queries

import (
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/ports"
)

type (
	// Reader exposes the repositories queries read from.
	Reader interface {
		OrderRepository() ports.OrderRepository
		SlipRepository() ports.SlipRepository
	}

	// ReaderFactory creates readers.
	ReaderFactory interface {
		Create() Reader
	}
)

// StatusCatalog resolves client-facing status input and display names.
type StatusCatalog interface {
	Resolve(codeOrName string) (status.Definition, error)
	DisplayName(code status.Code) string
	All() []status.Definition
}
