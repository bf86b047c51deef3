package content

import (
	"path"
	"strings"

	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// neutralScore is the midpoint of the 0–100 scoring scale; resources with no
// stronger signal are valued neither up nor down.
const neutralScore = 50

// categoryRule maps URI keywords onto an editorial category and temporal
// classification.  Rules are evaluated in order; the first keyword hit wins.
type categoryRule struct {
	keywords []string
	category common.ContentCategory
	temporal common.TemporalValue
}

var defaultCategoryRules = []categoryRule{
	{keywords: []string{"tutorial", "guide"}, category: common.CategoryEducational, temporal: common.TemporalEvergreen},
	{keywords: []string{"news", "press"}, category: common.CategoryNews, temporal: common.TemporalCurrent},
	{keywords: []string{"research", "study"}, category: common.CategoryAcademic, temporal: common.TemporalEvergreen},
}

var extensionTypes = map[string]common.ContentType{
	".jpg": common.ContentImage, ".jpeg": common.ContentImage, ".png": common.ContentImage,
	".gif": common.ContentImage, ".webp": common.ContentImage, ".svg": common.ContentImage,
	".bmp": common.ContentImage,

	".mp4": common.ContentVideo, ".webm": common.ContentVideo, ".mov": common.ContentVideo,
	".avi": common.ContentVideo, ".mkv": common.ContentVideo,

	".mp3": common.ContentAudio, ".wav": common.ContentAudio, ".ogg": common.ContentAudio,
	".flac": common.ContentAudio, ".m4a": common.ContentAudio,
}

// Analyzer derives content metadata from the accessed URI, optionally
// enriched by externally-sourced facts.  Like the detector, analysis is a
// total function: any URI string, including empty, produces a well-formed
// Metadata value.
type Analyzer struct {
	rules []categoryRule
}

// NewAnalyzer constructs an Analyzer with the built-in keyword rules.
func NewAnalyzer() *Analyzer {
	return &Analyzer{rules: defaultCategoryRules}
}

// AnalyzeContent classifies the resource at uri.  URI-derived classification
// is computed first; non-nil fields of ext then override it.  Quality is
// derived from word count only when neither the URI heuristics nor ext
// provided a score.
func (a *Analyzer) AnalyzeContent(uri string, ext *ExternalMetadata) Metadata {
	md := Metadata{
		URI:            uri,
		Category:       common.CategoryGeneral,
		Type:           common.ContentArticle,
		QualityScore:   neutralScore,
		AuthorityScore: neutralScore,
	}

	lowered := strings.ToLower(uri)
	for _, rule := range a.rules {
		if matched := firstKeyword(lowered, rule.keywords); matched != "" {
			md.Category = rule.category
			md.Temporal = rule.temporal
			break
		}
	}

	if t, ok := extensionTypes[strings.ToLower(path.Ext(stripQuery(lowered)))]; ok {
		md.Type = t
	}

	applyOverrides(&md, ext)

	if ext == nil || ext.QualityScore == nil {
		if md.WordCount > 0 {
			md.QualityScore = qualityFromLength(md.WordCount, md.ImageCount)
		}
	}

	return md
}

func applyOverrides(md *Metadata, ext *ExternalMetadata) {
	if ext == nil {
		return
	}
	if ext.Category != nil {
		md.Category = *ext.Category
	}
	if ext.Type != nil {
		md.Type = *ext.Type
	}
	if ext.Temporal != nil {
		md.Temporal = *ext.Temporal
	}
	if ext.QualityScore != nil {
		md.QualityScore = clampScore(*ext.QualityScore)
	}
	if ext.AuthorityScore != nil {
		md.AuthorityScore = clampScore(*ext.AuthorityScore)
	}
	if ext.PublishDate != nil {
		pd := *ext.PublishDate
		md.PublishDate = &pd
	}
	if ext.WordCount != nil {
		md.WordCount = *ext.WordCount
	}
	if ext.ImageCount != nil {
		md.ImageCount = *ext.ImageCount
	}
}

// qualityFromLength grades text depth by word count, with a small bonus for
// illustrated pieces.
func qualityFromLength(words, images int) int {
	var score int
	switch {
	case words < 300:
		score = 40
	case words < 1000:
		score = 55
	case words < 3000:
		score = 70
	default:
		score = 80
	}
	if images > 0 {
		score += 5
	}
	return clampScore(score)
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func firstKeyword(lowered string, keywords []string) string {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return kw
		}
	}
	return ""
}

// stripQuery drops the query and fragment so extension matching sees only the
// path component.
func stripQuery(uri string) string {
	if i := strings.IndexAny(uri, "?#"); i >= 0 {
		return uri[:i]
	}
	return uri
}

//Personal.AI order the ending
