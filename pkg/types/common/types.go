package common

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ID is a string alias for UUID v4.
type ID string

// Metadata is an open-ended key-value bag used for extensible payloads such
// as valuation breakdowns and market-context maps.
type Metadata map[string]interface{}

// RiskLevel classifies how aggressively a detected crawler is presumed to
// exploit accessed content.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ParseRiskLevel maps a raw string onto a RiskLevel, defaulting to RiskLow
// for empty or unrecognised input so that detection output always carries a
// well-formed level.
func ParseRiskLevel(s string) RiskLevel {
	switch RiskLevel(s) {
	case RiskMedium:
		return RiskMedium
	case RiskHigh:
		return RiskHigh
	default:
		return RiskLow
	}
}

// Valid reports whether the level is one of the three declared constants.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// ContentCategory is the editorial classification of an accessed resource.
type ContentCategory string

const (
	CategoryEducational ContentCategory = "educational"
	CategoryNews        ContentCategory = "news"
	CategoryAcademic    ContentCategory = "academic"
	CategoryCommercial  ContentCategory = "commercial"
	CategoryGeneral     ContentCategory = "general"
)

// ContentType is the media classification of an accessed resource.
type ContentType string

const (
	ContentArticle ContentType = "article"
	ContentImage   ContentType = "image"
	ContentVideo   ContentType = "video"
	ContentAudio   ContentType = "audio"
)

// TemporalValue describes how an accessed resource's value decays over time.
// The zero value means "unknown / not classified".
type TemporalValue string

const (
	TemporalEvergreen TemporalValue = "evergreen"
	TemporalCurrent   TemporalValue = "current"
	TemporalStale     TemporalValue = "stale"
)

// LicensingPotential grades how strong a licensing-negotiation opportunity a
// detection represents.
type LicensingPotential string

const (
	LicensingLow    LicensingPotential = "low"
	LicensingMedium LicensingPotential = "medium"
	LicensingHigh   LicensingPotential = "high"
)

// Timestamp is a time.Time alias with ISO 8601 JSON serialization.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	*t = Timestamp(parsed.UTC())
	return nil
}

// DateRange defines a half-open time interval [From, To).
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Validate checks that the range is ordered.
func (dr DateRange) Validate() error {
	if dr.From.After(dr.To) {
		return fmt.Errorf("invalid date range: 'from' must be before or equal to 'to'")
	}
	return nil
}

// NewID generates a new UUID v4.
func NewID() ID {
	return ID(uuid.New().String())
}

// Validate checks if the ID is a valid UUID.
func (id ID) Validate() error {
	if id == "" {
		return fmt.Errorf("ID cannot be empty")
	}
	if _, err := uuid.Parse(string(id)); err != nil {
		return fmt.Errorf("invalid ID format: %w", err)
	}
	return nil
}

//Personal.AI order the ending
