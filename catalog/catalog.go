// Package catalog holds the static reference tables: per-class pricing and
// environmental parameters, condition and action multipliers, and the
// achievement definitions. Everything here is immutable after init; lookups
// never fail, unknown keys degrade to a default entry.
package catalog

// PricingEntry is the per-class pricing profile.
type PricingEntry struct {
	BasePrice        float64
	DepreciationRate float64 // fraction of value lost per month
	Category         string  // "electronics", "furniture", "recyclable", "media", "apparel"
	ConfidenceTier   string  // high | medium | low, static per class
}

// ImpactEntry is the per-class environmental profile. CarbonFootprint is kg
// CO2 embodied in production, EnergySaved kWh and WaterSaved liters
// recoverable at full recycling efficiency.
type ImpactEntry struct {
	CarbonFootprint float64
	Recyclable      bool
	RecycleRate     float64
	EnergySaved     float64
	WaterSaved      float64
	RareEarths      bool
	ToxicMaterials  bool
}

const (
	DefaultKey = "default"

	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

// Action kinds a player can confirm. Trash exists only as an impact
// comparison point; it never earns points.
const (
	ActionScan    = "scan"
	ActionRecycle = "recycle"
	ActionSell    = "sell"
	ActionDonate  = "donate"
	ActionShare   = "share"
	ActionTrash   = "trash"
)

var pricingTable = map[string]PricingEntry{
	"laptop":       {BasePrice: 800, DepreciationRate: 0.12, Category: "electronics", ConfidenceTier: TierHigh},
	"cell phone":   {BasePrice: 400, DepreciationRate: 0.15, Category: "electronics", ConfidenceTier: TierHigh},
	"tablet":       {BasePrice: 350, DepreciationRate: 0.13, Category: "electronics", ConfidenceTier: TierHigh},
	"monitor":      {BasePrice: 200, DepreciationRate: 0.08, Category: "electronics", ConfidenceTier: TierMedium},
	"tv":           {BasePrice: 450, DepreciationRate: 0.10, Category: "electronics", ConfidenceTier: TierMedium},
	"keyboard":     {BasePrice: 45, DepreciationRate: 0.06, Category: "electronics", ConfidenceTier: TierMedium},
	"mouse":        {BasePrice: 25, DepreciationRate: 0.06, Category: "electronics", ConfidenceTier: TierMedium},
	"headphones":   {BasePrice: 80, DepreciationRate: 0.09, Category: "electronics", ConfidenceTier: TierMedium},
	"book":         {BasePrice: 15, DepreciationRate: 0.02, Category: "media", ConfidenceTier: TierHigh},
	"backpack":     {BasePrice: 40, DepreciationRate: 0.04, Category: "apparel", ConfidenceTier: TierMedium},
	"chair":        {BasePrice: 60, DepreciationRate: 0.03, Category: "furniture", ConfidenceTier: TierMedium},
	"desk":         {BasePrice: 120, DepreciationRate: 0.03, Category: "furniture", ConfidenceTier: TierLow},
	"lamp":         {BasePrice: 30, DepreciationRate: 0.04, Category: "furniture", ConfidenceTier: TierLow},
	"bicycle":      {BasePrice: 250, DepreciationRate: 0.05, Category: "sports", ConfidenceTier: TierMedium},
	"bottle":       {BasePrice: 0.10, DepreciationRate: 0.0, Category: "recyclable", ConfidenceTier: TierHigh},
	"cup":          {BasePrice: 0.05, DepreciationRate: 0.0, Category: "recyclable", ConfidenceTier: TierHigh},
	"can":          {BasePrice: 0.05, DepreciationRate: 0.0, Category: "recyclable", ConfidenceTier: TierHigh},
	"cardboard":    {BasePrice: 0.02, DepreciationRate: 0.0, Category: "recyclable", ConfidenceTier: TierHigh},
	"paper":        {BasePrice: 0.01, DepreciationRate: 0.0, Category: "recyclable", ConfidenceTier: TierMedium},
	"plastic bag":  {BasePrice: 0.01, DepreciationRate: 0.0, Category: "recyclable", ConfidenceTier: TierLow},
	"glass bottle": {BasePrice: 0.15, DepreciationRate: 0.0, Category: "recyclable", ConfidenceTier: TierHigh},
	DefaultKey:     {BasePrice: 10, DepreciationRate: 0.05, Category: "general", ConfidenceTier: TierLow},
}

var impactTable = map[string]ImpactEntry{
	"laptop":       {CarbonFootprint: 250, Recyclable: true, RecycleRate: 0.55, EnergySaved: 180, WaterSaved: 1200, RareEarths: true, ToxicMaterials: true},
	"cell phone":   {CarbonFootprint: 70, Recyclable: true, RecycleRate: 0.45, EnergySaved: 60, WaterSaved: 900, RareEarths: true, ToxicMaterials: true},
	"tablet":       {CarbonFootprint: 110, Recyclable: true, RecycleRate: 0.45, EnergySaved: 90, WaterSaved: 950, RareEarths: true, ToxicMaterials: true},
	"monitor":      {CarbonFootprint: 350, Recyclable: true, RecycleRate: 0.50, EnergySaved: 200, WaterSaved: 800, RareEarths: true, ToxicMaterials: true},
	"tv":           {CarbonFootprint: 420, Recyclable: true, RecycleRate: 0.50, EnergySaved: 240, WaterSaved: 850, RareEarths: true, ToxicMaterials: true},
	"keyboard":     {CarbonFootprint: 20, Recyclable: true, RecycleRate: 0.40, EnergySaved: 12, WaterSaved: 80, ToxicMaterials: true},
	"mouse":        {CarbonFootprint: 12, Recyclable: true, RecycleRate: 0.40, EnergySaved: 8, WaterSaved: 50, ToxicMaterials: true},
	"headphones":   {CarbonFootprint: 18, Recyclable: true, RecycleRate: 0.35, EnergySaved: 10, WaterSaved: 60, RareEarths: true},
	"book":         {CarbonFootprint: 2.7, Recyclable: true, RecycleRate: 0.65, EnergySaved: 4, WaterSaved: 25},
	"backpack":     {CarbonFootprint: 25, Recyclable: false, RecycleRate: 0.15, EnergySaved: 6, WaterSaved: 400},
	"chair":        {CarbonFootprint: 45, Recyclable: false, RecycleRate: 0.20, EnergySaved: 15, WaterSaved: 120},
	"desk":         {CarbonFootprint: 90, Recyclable: false, RecycleRate: 0.25, EnergySaved: 30, WaterSaved: 200},
	"lamp":         {CarbonFootprint: 15, Recyclable: true, RecycleRate: 0.30, EnergySaved: 8, WaterSaved: 40, ToxicMaterials: true},
	"bicycle":      {CarbonFootprint: 96, Recyclable: true, RecycleRate: 0.70, EnergySaved: 45, WaterSaved: 150},
	"bottle":       {CarbonFootprint: 0.08, Recyclable: true, RecycleRate: 0.75, EnergySaved: 0.2, WaterSaved: 1.5},
	"cup":          {CarbonFootprint: 0.11, Recyclable: true, RecycleRate: 0.60, EnergySaved: 0.15, WaterSaved: 1.0},
	"can":          {CarbonFootprint: 0.17, Recyclable: true, RecycleRate: 0.90, EnergySaved: 0.5, WaterSaved: 0.8},
	"cardboard":    {CarbonFootprint: 0.06, Recyclable: true, RecycleRate: 0.85, EnergySaved: 0.1, WaterSaved: 0.7},
	"paper":        {CarbonFootprint: 0.05, Recyclable: true, RecycleRate: 0.85, EnergySaved: 0.08, WaterSaved: 0.6},
	"plastic bag":  {CarbonFootprint: 0.03, Recyclable: false, RecycleRate: 0.05, EnergySaved: 0.02, WaterSaved: 0.1},
	"glass bottle": {CarbonFootprint: 0.20, Recyclable: true, RecycleRate: 0.80, EnergySaved: 0.3, WaterSaved: 0.5},
	DefaultKey:     {CarbonFootprint: 5, Recyclable: false, RecycleRate: 0.25, EnergySaved: 1, WaterSaved: 10},
}

// conditionMultipliers scale the base price. Unknown condition strings fall
// back to "good".
var conditionMultipliers = map[string]float64{
	"excellent": 0.85,
	"good":      0.65,
	"fair":      0.45,
	"poor":      0.25,
}

// actionMultipliers scale the recoverable footprint per action. Trash is
// negative: discarding contributes negatively rather than saving less.
var actionMultipliers = map[string]float64{
	ActionRecycle: 1.0,
	ActionSell:    0.9,
	ActionDonate:  0.8,
	ActionShare:   0.7,
	ActionTrash:   -0.2,
}

// actionBaseScores seed the 0-100 action score before bonuses/penalties.
var actionBaseScores = map[string]int{
	ActionRecycle: 85,
	ActionSell:    75,
	ActionDonate:  70,
	ActionShare:   65,
	ActionTrash:   10,
}

// basePoints per confirmed action kind. Scan is the defensive fallback for
// unknown kinds and the reward for a bare scan with no confirmed action.
var basePoints = map[string]int{
	ActionScan:    10,
	ActionRecycle: 50,
	ActionSell:    30,
	ActionDonate:  40,
	ActionShare:   20,
}

// electronicsSet gates the dedicated e-waste recommendation.
var electronicsSet = map[string]bool{
	"laptop":     true,
	"cell phone": true,
	"tablet":     true,
	"monitor":    true,
	"tv":         true,
	"keyboard":   true,
	"mouse":      true,
	"headphones": true,
}

// plainContainers are excluded from the share recommendation.
var plainContainers = map[string]bool{
	"bottle": true,
	"cup":    true,
}

// Pricing returns the pricing profile for a class, degrading to the default
// entry for unknown classes.
func Pricing(objectClass string) PricingEntry {
	if entry, ok := pricingTable[objectClass]; ok {
		return entry
	}
	return pricingTable[DefaultKey]
}

// Impact returns the environmental profile for a class, degrading to the
// default entry for unknown classes.
func Impact(objectClass string) ImpactEntry {
	if entry, ok := impactTable[objectClass]; ok {
		return entry
	}
	return impactTable[DefaultKey]
}

// ConditionMultiplier maps a condition string to its price multiplier,
// defaulting to the "good" multiplier.
func ConditionMultiplier(condition string) float64 {
	if m, ok := conditionMultipliers[condition]; ok {
		return m
	}
	return conditionMultipliers["good"]
}

// ActionMultiplier maps an action kind to its impact multiplier. Unknown
// kinds contribute nothing.
func ActionMultiplier(actionKind string) float64 {
	return actionMultipliers[actionKind]
}

// ActionBaseScore seeds the action score for a kind.
func ActionBaseScore(actionKind string) int {
	return actionBaseScores[actionKind]
}

// BasePoints returns the point base for an action kind, falling back to the
// scan base for unknown kinds.
func BasePoints(actionKind string) int {
	if p, ok := basePoints[actionKind]; ok {
		return p
	}
	return basePoints[ActionScan]
}

// IsElectronics reports whether the class belongs to the e-waste set.
func IsElectronics(objectClass string) bool {
	return electronicsSet[objectClass]
}

// IsPlainContainer reports whether the class is a bare drink container.
func IsPlainContainer(objectClass string) bool {
	return plainContainers[objectClass]
}

// ValidActionKind reports whether a player may confirm this action kind.
func ValidActionKind(actionKind string) bool {
	switch actionKind {
	case ActionRecycle, ActionSell, ActionDonate, ActionShare:
		return true
	}
	return false
}
