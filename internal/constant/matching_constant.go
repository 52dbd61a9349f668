package constant

const (
	// Matching thresholds. Scores are percentages in [0, 100].
	MinMatchScore    = 50
	MaxMatchResults  = 10
	BaseScoreNoPrefs = 30

	// Suggestion cache.
	MatchSuggestionCacheTTLMinutes = 10

	// Billing.
	RentFeeDueDays         = 10
	AcademicYearStartMonth = 6
	MonthsPerAcademicYear  = 12
)
