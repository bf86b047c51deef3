// Package detection implements AI-crawler identification: an ordered
// signature registry for known operators and a heuristic scorer for unknown
// automated agents.
package detection

import (
	"github.com/turtacn/CrawlValue-Intelligence/pkg/errors"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// AccessEvent is one observed request against protected content.  It is the
// detector's sole input; all fields beyond UserAgent are carried through for
// downstream valuation and reporting.
type AccessEvent struct {
	UserAgent string           `json:"user_agent"`
	URI       string           `json:"uri"`
	IPAddress string           `json:"ip_address"`
	Timestamp common.Timestamp `json:"timestamp"`
}

// Detection is the outcome of analysing one access event.  The domain layer
// produces Detection values without identity or wall-clock stamps; the
// application layer assigns ID and DetectedAt before persistence so that the
// analysis itself stays deterministic.
type Detection struct {
	ID         common.ID        `json:"id,omitempty"`
	UserAgent  string           `json:"user_agent"`
	URI        string           `json:"uri,omitempty"`
	IPAddress  string           `json:"ip_address,omitempty"`
	DetectedAt common.Timestamp `json:"detected_at,omitempty"`

	IsBot      bool             `json:"is_bot"`
	Company    string           `json:"company"`
	BotType    string           `json:"bot_type"`
	RiskLevel  common.RiskLevel `json:"risk_level"`
	Commercial bool             `json:"commercial"`

	// Confidence is a 0–100 score; registry matches carry a fixed high
	// confidence, heuristic matches carry their capped suspicion score.
	Confidence int `json:"confidence"`

	// SuspicionScore is the raw (uncapped) heuristic score.  Zero for
	// registry matches.
	SuspicionScore int `json:"suspicion_score,omitempty"`

	// Evidence lists the human-readable reasons behind the verdict, in the
	// order they were established.
	Evidence []string `json:"evidence,omitempty"`
}

// Validate checks the structural integrity of a persisted Detection.
func (d *Detection) Validate() error {
	if d.UserAgent == "" && d.IsBot {
		return errors.NewValidation("bot detection must carry the matched user agent")
	}
	if d.Confidence < 0 || d.Confidence > 100 {
		return errors.NewValidation("detection confidence must be within [0, 100]")
	}
	if d.IsBot && !d.RiskLevel.Valid() {
		return errors.NewValidation("bot detection must carry a valid risk level")
	}
	return nil
}

//Personal.AI order the ending
