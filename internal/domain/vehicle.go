package domain

// Vehicle belongs to exactly one manufacturer. OdometerKm only moves forward:
// the odometer endpoint and rental close are the two writers, both guarded.
type Vehicle struct {
	ID             int64  `json:"id"`
	Model          string `json:"model"`
	Year           int    `json:"year"`
	OdometerKm     int    `json:"odometer_km"`
	ManufacturerID int64  `json:"manufacturer_id"`
}
