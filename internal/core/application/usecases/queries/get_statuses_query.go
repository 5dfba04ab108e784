package queries

import (
	"deliveryops/internal/core/domain/model/status"
)

// GetStatusesQueryHandler returns the status catalog in code order. Inactive
// statuses are included so clients can label orders that still hold them.
type GetStatusesQueryHandler struct {
	statuses StatusCatalog
}

// NewGetStatusesQueryHandler creates the handler.
func NewGetStatusesQueryHandler(statuses StatusCatalog) GetStatusesQueryHandler {
	return GetStatusesQueryHandler{statuses: statuses}
}

func (h GetStatusesQueryHandler) Handle() []status.Definition {
	return h.statuses.All()
}
