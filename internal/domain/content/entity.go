// Package content classifies accessed resources: editorial category, media
// type, temporal value, and quality/authority scoring.  Classification feeds
// the valuation calculator; it never blocks a detection.
package content

import (
	"time"

	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// Metadata is the full classification of one accessed resource.  Scores use a
// 0–100 scale with 50 as the neutral midpoint; the valuation calculator maps
// them onto clamped multipliers.
type Metadata struct {
	URI string `json:"uri"`

	Category common.ContentCategory `json:"category"`
	Type     common.ContentType     `json:"type"`
	Temporal common.TemporalValue   `json:"temporal"`

	QualityScore   int `json:"quality_score"`
	AuthorityScore int `json:"authority_score"`

	// PublishDate is nil when no collaborator supplied one; URI analysis
	// alone cannot derive it.
	PublishDate *time.Time `json:"publish_date,omitempty"`

	WordCount  int `json:"word_count,omitempty"`
	ImageCount int `json:"image_count,omitempty"`
}

// ExternalMetadata carries optional, externally-sourced facts about a
// resource (CMS fields, editorial systems, manual curation).  Nil pointer
// fields mean "not provided"; present fields override the analyzer's
// URI-derived classification.
type ExternalMetadata struct {
	Category       *common.ContentCategory `json:"category,omitempty"`
	Type           *common.ContentType     `json:"type,omitempty"`
	Temporal       *common.TemporalValue   `json:"temporal,omitempty"`
	QualityScore   *int                    `json:"quality_score,omitempty"`
	AuthorityScore *int                    `json:"authority_score,omitempty"`
	PublishDate    *time.Time              `json:"publish_date,omitempty"`
	WordCount      *int                    `json:"word_count,omitempty"`
	ImageCount     *int                    `json:"image_count,omitempty"`
}

//Personal.AI order the ending
