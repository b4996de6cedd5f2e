package models

// SensorPackage is one reading batch from a wearable: an activity code
// plus the positional constructor parameters for that activity
// (action, duration, weight, then variant extras).
type SensorPackage struct {
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

// SensorPayload is the top-level ingest JSON structure.
type SensorPayload struct {
	Packages []SensorPackage `json:"packages"`
}
