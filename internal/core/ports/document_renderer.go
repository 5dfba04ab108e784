package ports

import "context"

// PageSize is the physical size of a printed page.
type PageSize struct {
	WidthMM  float64
	HeightMM float64
}

// A4 is the default page size for slips.
var A4 = PageSize{WidthMM: 210, HeightMM: 297}

// DocumentRenderer turns an HTML document into a printable file (PDF).
type DocumentRenderer interface {
	Render(ctx context.Context, html string, size PageSize) ([]byte, error)
}
