package constants

const (
	// XPPerLevel is the experience needed to advance one level.
	XPPerLevel = 10
	// XPPerPoint converts a point rule value into a pet xp delta.
	XPPerPoint = 2

	// Growth stage level bands (inclusive upper bounds)
	BabyMaxLevel = 5
	TeenMaxLevel = 10

	// MedalsPerPositiveAward is flat regardless of rule magnitude.
	MedalsPerPositiveAward = 1

	// MaxGrowthRecords caps the growth record log; oldest entries are evicted.
	MaxGrowthRecords = 10000

	// Catalog bounds. Point math stays far from int overflow inside these.
	MaxRuleValue = 1_000_000
	MaxItemPrice = 1_000_000
	MaxItemStock = 1_000_000

	// Icons assigned to quick-added rules
	DefaultPositiveRuleIcon = "Sparkles"
	DefaultNegativeRuleIcon = "Ban"
	DefaultShopItemIcon     = "Gift"
)
