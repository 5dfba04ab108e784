package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deliveryops/internal/core/application/printing"
	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/core/domain/services"
	"deliveryops/internal/core/ports"
	"deliveryops/internal/pkg/errs"
)

// Content types of a SlipDocument.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// SlipDocument is a printable slip.
type SlipDocument struct {
	SlipID      string
	ContentType string
	Body        []byte
}

// GetSlipDocumentQueryHandler prints a slip. Without a renderer it returns the
// HTML document itself.
type GetSlipDocumentQueryHandler struct {
	readers  ReaderFactory
	statuses StatusCatalog
	renderer ports.DocumentRenderer
	pageSize ports.PageSize
}

// NewGetSlipDocumentQueryHandler creates the handler. renderer may be nil.
func NewGetSlipDocumentQueryHandler(
	readers ReaderFactory,
	statuses StatusCatalog,
	renderer ports.DocumentRenderer,
) GetSlipDocumentQueryHandler {
	return GetSlipDocumentQueryHandler{
		readers:  readers,
		statuses: statuses,
		renderer: renderer,
		pageSize: ports.A4,
	}
}

// Handle accepts driver and merchant slip ids.
func (h GetSlipDocumentQueryHandler) Handle(ctx context.Context, query GetSlipQuery) (SlipDocument, error) {
	if err := query.Validate(); err != nil {
		return SlipDocument{}, err
	}

	sheet, err := h.sheet(ctx, query.SlipID())
	if err != nil {
		return SlipDocument{}, err
	}

	html, err := printing.RenderSlipHTML(sheet)
	if err != nil {
		return SlipDocument{}, err
	}

	if h.renderer == nil {
		return SlipDocument{SlipID: sheet.SlipID, ContentType: ContentTypeHTML, Body: []byte(html)}, nil
	}

	pdf, err := h.renderer.Render(ctx, html, h.pageSize)
	if err != nil {
		return SlipDocument{}, fmt.Errorf("render slip %s: %w", sheet.SlipID, err)
	}

	return SlipDocument{SlipID: sheet.SlipID, ContentType: ContentTypePDF, Body: pdf}, nil
}

func (h GetSlipDocumentQueryHandler) sheet(ctx context.Context, slipID string) (services.SlipSheet, error) {
	repo := h.readers.Create().SlipRepository()

	var (
		stage   slip.Stage
		party   string
		date    time.Time
		entries []slip.Entry
	)

	switch {
	case slip.IsDriverSlipID(slipID):
		s, err := repo.GetDriverSlip(ctx, slipID)
		if err != nil {
			return services.SlipSheet{}, err
		}
		stage, party, date, entries = slip.StageDriver, s.DriverName(), s.Date(), s.Entries()
	case slip.IsMerchantSlipID(slipID):
		s, err := repo.GetMerchantSlip(ctx, slipID)
		if err != nil {
			return services.SlipSheet{}, err
		}
		stage, party, date, entries = slip.StageMerchant, s.MerchantName(), s.Date(), s.Entries()
	default:
		return services.SlipSheet{}, errs.NewObjectNotFoundErrorWithCause("slip", slipID,
			errors.New("unknown slip id prefix"))
	}

	return services.BuildSlipSheet(slipID, stage, party, date, entries, h.statuses), nil
}
