package models

import (
	"time"
)

// BoundingBox locates the detected object in the photo, normalized to [0,1].
type BoundingBox struct {
	X      float64 `bson:"x" json:"x"`
	Y      float64 `bson:"y" json:"y"`
	Width  float64 `bson:"width" json:"width"`
	Height float64 `bson:"height" json:"height"`
}

// Detection is what the vision capability returns for one object.
type Detection struct {
	ObjectClass string      `json:"objectClass"`
	Confidence  float64     `json:"confidence"`
	BoundingBox BoundingBox `json:"boundingBox"`
}

// PriceEstimate is the resale estimate for a scanned object.
type PriceEstimate struct {
	Amount         float64        `bson:"amount" json:"amount"`
	Currency       string         `bson:"currency" json:"currency"`
	ConfidenceTier string         `bson:"confidenceTier" json:"confidenceTier"` // high | medium | low
	Breakdown      PriceBreakdown `bson:"breakdown" json:"breakdown"`
}

// PriceBreakdown exposes the factors behind the estimate.
type PriceBreakdown struct {
	BasePrice           float64 `bson:"basePrice" json:"basePrice"`
	ConditionMultiplier float64 `bson:"conditionMultiplier" json:"conditionMultiplier"`
	AgeDepreciation     float64 `bson:"ageDepreciation" json:"ageDepreciation"`
	Category            string  `bson:"category" json:"category"`
}

// ImpactFlags marks material hazards that change recommendations.
type ImpactFlags struct {
	RareEarths     bool `bson:"rareEarths,omitempty" json:"rareEarths,omitempty"`
	ToxicMaterials bool `bson:"toxicMaterials,omitempty" json:"toxicMaterials,omitempty"`
}

// EnvironmentalImpact is the estimated effect of applying an action to an object.
type EnvironmentalImpact struct {
	CarbonFootprint float64     `bson:"carbonFootprint" json:"carbonFootprint"`
	CarbonSaved     float64     `bson:"carbonSaved" json:"carbonSaved"`
	EnergySaved     float64     `bson:"energySaved" json:"energySaved"`
	WaterSaved      float64     `bson:"waterSaved" json:"waterSaved"`
	TreeEquivalent  float64     `bson:"treeEquivalent" json:"treeEquivalent"`
	OilSaved        float64     `bson:"oilSaved" json:"oilSaved"`
	Recyclable      bool        `bson:"recyclable" json:"recyclable"`
	RecycleRate     float64     `bson:"recycleRate" json:"recycleRate"`
	ActionScore     int         `bson:"actionScore" json:"actionScore"`
	Recommendations []string    `bson:"recommendations" json:"recommendations"`
	Flags           ImpactFlags `bson:"flags" json:"flags"`
}

// RecommendedAction is one entry in the ranked action list. Priority 1 is
// most urgent; the list may contain two recycle entries with different
// framing (the e-waste entry and the generic one).
type RecommendedAction struct {
	ActionKind     string            `bson:"actionKind" json:"actionKind"`
	Title          string            `bson:"title" json:"title"`
	Priority       int               `bson:"priority" json:"priority"`
	ExpectedPoints int               `bson:"expectedPoints" json:"expectedPoints"`
	Metadata       map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// ScanResult is the full evaluation of one scanned object.
type ScanResult struct {
	ScanID             string              `bson:"scanId" json:"scanId"`
	UserID             string              `bson:"userId,omitempty" json:"userId,omitempty"`
	ObjectClass        string              `bson:"objectClass" json:"objectClass"`
	Confidence         float64             `bson:"confidence" json:"confidence"`
	BoundingBox        BoundingBox         `bson:"boundingBox" json:"boundingBox"`
	PriceEstimate      PriceEstimate       `bson:"priceEstimate" json:"priceEstimate"`
	Impact             EnvironmentalImpact `bson:"environmentalImpact" json:"environmentalImpact"`
	RecommendedActions []RecommendedAction `bson:"recommendedActions" json:"recommendedActions"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
}
