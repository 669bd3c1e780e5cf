package dto

// ImportResponse reports the outcome of a CSV import.
type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
