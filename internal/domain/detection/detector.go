package detection

import (
	"fmt"
	"strings"

	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// Config carries the heuristic scoring parameters applied to agents that miss
// the signature registry.
type Config struct {
	// BotIndicators are lowercase tokens whose presence in a user agent adds
	// IndicatorScore to the suspicion score.
	BotIndicators []string

	// BrowserIndicators are tokens whose absence from a non-empty user agent
	// adds NoBrowserScore to the suspicion score.
	BrowserIndicators []string

	IndicatorScore      int
	NoBrowserScore      int
	BotThreshold        int // suspicion must strictly exceed this to flag a bot
	MediumRiskThreshold int // suspicion strictly above this raises heuristic risk to medium

	SignatureConfidence    int // fixed confidence for registry matches
	MaxHeuristicConfidence int // confidence ceiling for heuristic matches
}

// DefaultConfig returns the production heuristic tuning.
func DefaultConfig() Config {
	return Config{
		BotIndicators:          []string{"bot", "crawler", "spider", "scraper", "fetch"},
		BrowserIndicators:      []string{"Mozilla", "Chrome", "Safari", "Firefox", "Edge"},
		IndicatorScore:         30,
		NoBrowserScore:         25,
		BotThreshold:           50,
		MediumRiskThreshold:    70,
		SignatureConfidence:    95,
		MaxHeuristicConfidence: 85,
	}
}

// Detector classifies access events as AI-crawler traffic or not.  Analysis
// is a pure function of the event and the detector's configuration: the same
// input always yields the same Detection, and no input panics or errors.
type Detector struct {
	registry *Registry
	cfg      Config
}

// NewDetector constructs a Detector over the given registry.  Zero-valued
// tuning fields in cfg fall back to their defaults so a partially-populated
// config cannot silently disable scoring.
func NewDetector(registry *Registry, cfg Config) *Detector {
	def := DefaultConfig()
	if len(cfg.BotIndicators) == 0 {
		cfg.BotIndicators = def.BotIndicators
	}
	if len(cfg.BrowserIndicators) == 0 {
		cfg.BrowserIndicators = def.BrowserIndicators
	}
	if cfg.IndicatorScore == 0 {
		cfg.IndicatorScore = def.IndicatorScore
	}
	if cfg.NoBrowserScore == 0 {
		cfg.NoBrowserScore = def.NoBrowserScore
	}
	if cfg.BotThreshold == 0 {
		cfg.BotThreshold = def.BotThreshold
	}
	if cfg.MediumRiskThreshold == 0 {
		cfg.MediumRiskThreshold = def.MediumRiskThreshold
	}
	if cfg.SignatureConfidence == 0 {
		cfg.SignatureConfidence = def.SignatureConfidence
	}
	if cfg.MaxHeuristicConfidence == 0 {
		cfg.MaxHeuristicConfidence = def.MaxHeuristicConfidence
	}
	return &Detector{registry: registry, cfg: cfg}
}

// Analyze classifies one access event.  The registry is consulted first; a
// hit produces a high-confidence verdict carrying the signature's company,
// bot type, risk level, and commercial flag.  Agents that miss the registry
// are scored heuristically.
func (d *Detector) Analyze(event AccessEvent) Detection {
	det := Detection{
		UserAgent: event.UserAgent,
		URI:       event.URI,
		IPAddress: event.IPAddress,
	}

	if sig, pattern, ok := d.registry.Lookup(event.UserAgent); ok {
		det.IsBot = true
		det.Company = sig.Company
		det.BotType = sig.BotType
		det.RiskLevel = sig.RiskLevel
		det.Commercial = sig.Commercial
		det.Confidence = d.cfg.SignatureConfidence
		det.Evidence = []string{fmt.Sprintf("User Agent matches %s", pattern)}
		return det
	}

	return d.analyzeHeuristic(det)
}

// analyzeHeuristic scores an unrecognised agent.  Each bot-indicator token
// found in the agent adds IndicatorScore; a non-empty agent with no browser
// identifier adds NoBrowserScore.  The agent is flagged as a bot only when
// the total strictly exceeds BotThreshold.  Below the threshold the verdict
// carries only the raw score as a diagnostic; confidence, evidence, and all
// bot attribution stay at their defaults.
func (d *Detector) analyzeHeuristic(det Detection) Detection {
	ua := strings.ToLower(det.UserAgent)
	score := 0
	var evidence []string

	for _, indicator := range d.cfg.BotIndicators {
		if strings.Contains(ua, indicator) {
			score += d.cfg.IndicatorScore
			evidence = append(evidence, fmt.Sprintf("Contains bot indicator %q", indicator))
		}
	}

	if det.UserAgent != "" && !d.hasBrowserIdentifier(ua) {
		score += d.cfg.NoBrowserScore
		evidence = append(evidence, "No typical browser identifiers")
	}

	det.SuspicionScore = score

	if score <= d.cfg.BotThreshold {
		det.RiskLevel = common.RiskLow
		return det
	}

	det.IsBot = true
	det.Company = "Unknown"
	det.BotType = "Unknown Bot"
	det.Commercial = false
	det.Evidence = evidence
	det.Confidence = minInt(score, d.cfg.MaxHeuristicConfidence)
	if score > d.cfg.MediumRiskThreshold {
		det.RiskLevel = common.RiskMedium
	} else {
		det.RiskLevel = common.RiskLow
	}
	return det
}

func (d *Detector) hasBrowserIdentifier(loweredUA string) bool {
	for _, b := range d.cfg.BrowserIndicators {
		if strings.Contains(loweredUA, strings.ToLower(b)) {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

//Personal.AI order the ending
