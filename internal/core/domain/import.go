package domain

// ImportRowError describes why one row of an upload was not recorded.
// Row is 1-based and counts data rows only, not the header.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult is the per-row outcome of a tabular import. Rows are
// independent: a bad row does not stop the good ones from being recorded.
type ImportResult struct {
	TotalRows int              `json:"totalRows"`
	Imported  []Transaction    `json:"imported"`
	Failed    []ImportRowError `json:"failed"`
}
