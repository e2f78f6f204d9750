package domain

type Category string

const (
	CategoryInsight       Category = "insight"
	CategoryInconsistency Category = "inconsistency"
	CategoryOpportunity   Category = "opportunity"
	CategoryAlert         Category = "alert"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// EntityRef points back at the record a finding was raised for. It is only
// used for navigation.
type EntityRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Insight is one finding of an analysis run. Findings are recomputed on
// every run and never stored.
type Insight struct {
	ID              string      `json:"id"`
	Category        Category    `json:"category"`
	Severity        Severity    `json:"severity"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Module          string      `json:"module"`
	Actionable      bool        `json:"actionable"`
	SuggestedAction *string     `json:"suggested_action,omitempty"`
	RelatedEntities []EntityRef `json:"related_entities"`
}

// Summary tallies findings across all four buckets.
type Summary struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
}

// Analysis is the result of one scan.
type Analysis struct {
	Insights        []Insight `json:"insights"`
	Inconsistencies []Insight `json:"inconsistencies"`
	Opportunities   []Insight `json:"opportunities"`
	Alerts          []Insight `json:"alerts"`
	Summary         Summary   `json:"summary"`
	// Unavailable names the collections that could not be read; their
	// checks contributed nothing.
	Unavailable []string `json:"unavailable,omitempty"`
}
