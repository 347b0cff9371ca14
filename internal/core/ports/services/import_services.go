package services

import (
	"context"
	"io"

	"github.com/SscSPs/shopbooks/internal/core/domain"
)

// ImportSvc loads day-book entries from uploaded spreadsheets.
type ImportSvc interface {
	// ImportFile parses a CSV or XLSX upload, chosen by filename extension,
	// and appends each valid row on behalf of actor.
	ImportFile(ctx context.Context, filename string, r io.Reader, actor string) (*domain.ImportResult, error)

	// WriteTemplate writes a CSV template with example rows.
	WriteTemplate(w io.Writer) error
}
