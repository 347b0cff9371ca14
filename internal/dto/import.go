package dto

import "github.com/SscSPs/shopbooks/internal/core/domain"

// ImportResponse summarises an upload.
type ImportResponse struct {
	TotalRows     int                     `json:"totalRows"`
	ImportedCount int                     `json:"importedCount"`
	FailedCount   int                     `json:"failedCount"`
	Failed        []domain.ImportRowError `json:"failed"`
}

// ToImportResponse converts a domain.ImportResult to ImportResponse DTO
func ToImportResponse(res *domain.ImportResult) ImportResponse {
	return ImportResponse{
		TotalRows:     res.TotalRows,
		ImportedCount: len(res.Imported),
		FailedCount:   len(res.Failed),
		Failed:        res.Failed,
	}
}
