package services

import (
	"context"
	"log"
	"time"

	"ecocycle/db"
	"ecocycle/models"

	"github.com/google/uuid"
)

// EvaluateScan turns one detection into a priced, scored, ranked scan
// result. The impact block is computed for the recycle action as the
// baseline; per-action impact is recomputed when the player confirms.
func EvaluateScan(detection models.Detection, condition string, ageMonths int) *models.ScanResult {
	price := EstimatePrice(detection.ObjectClass, condition, ageMonths)
	impact := EstimateImpact(detection.ObjectClass, "recycle")
	actions := RecommendActions(detection.ObjectClass, price, impact)

	return &models.ScanResult{
		ScanID:             uuid.NewString(),
		ObjectClass:        detection.ObjectClass,
		Confidence:         detection.Confidence,
		BoundingBox:        detection.BoundingBox,
		PriceEstimate:      price,
		Impact:             impact,
		RecommendedActions: actions,
		CreatedAt:          time.Now(),
	}
}

// SaveScan stores the scan in the history collection. Best effort: scans are
// ephemeral to the core, losing one never fails the request.
func SaveScan(scan *models.ScanResult, userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	scan.UserID = userID
	if _, err := db.GetCollection("scans").InsertOne(ctx, scan); err != nil {
		log.Printf("Error saving scan: %v", err)
	}
}

// RecentScans returns the player's latest scans, newest first.
func RecentScans(ctx context.Context, userID string, limit int) ([]models.ScanResult, error) {
	if limit <= 0 {
		limit = 20
	}
	return db.FindRecentScans(ctx, userID, limit)
}
