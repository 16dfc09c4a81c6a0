package structs

import "ecocycle/models"

// EvaluateScanRequest prices and scores an already-classified object.
// Condition and age are optional; zero age with default condition gives the
// as-is estimate.
type EvaluateScanRequest struct {
	ObjectClass string             `json:"objectClass" binding:"required"`
	Confidence  float64            `json:"confidence"`
	BoundingBox models.BoundingBox `json:"boundingBox"`
	Condition   string             `json:"condition"`
	AgeMonths   int                `json:"ageMonths"`
}

// ConfirmActionRequest applies a chosen action to a scanned object.
type ConfirmActionRequest struct {
	ObjectClass string  `json:"objectClass" binding:"required"`
	ActionKind  string  `json:"actionKind" binding:"required"`
	Condition   string  `json:"condition"`
	AgeMonths   int     `json:"ageMonths"`
	ScanID      string  `json:"scanId"`
	Confidence  float64 `json:"confidence"`
}
