package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

func newTestDetector(t *testing.T) *Detector {
	t.Helper()
	registry, err := NewRegistry(testSignatures())
	require.NoError(t, err)
	return NewDetector(registry, DefaultConfig())
}

func TestDetector_Analyze_SignatureMatch(t *testing.T) {
	d := newTestDetector(t)

	det := d.Analyze(AccessEvent{UserAgent: "GPTBot/1.0", URI: "/blog/post"})

	assert.True(t, det.IsBot)
	assert.Equal(t, "OpenAI", det.Company)
	assert.Equal(t, "AI Training Crawler", det.BotType)
	assert.Equal(t, common.RiskHigh, det.RiskLevel)
	assert.True(t, det.Commercial)
	assert.Equal(t, 95, det.Confidence)
	assert.Equal(t, []string{"User Agent matches GPTBot"}, det.Evidence)
	assert.Equal(t, "/blog/post", det.URI)

	// Registry matches carry no heuristic score.
	assert.Zero(t, det.SuspicionScore)
}

func TestDetector_Analyze_HeuristicBot(t *testing.T) {
	d := newTestDetector(t)

	det := d.Analyze(AccessEvent{UserAgent: "SomeScraperBot/2.0"})

	// "bot" and "scraper" indicators plus the missing browser identifier:
	// 30 + 30 + 25 = 85.
	assert.True(t, det.IsBot)
	assert.Equal(t, 85, det.SuspicionScore)
	assert.Equal(t, 85, det.Confidence)
	assert.Equal(t, "Unknown", det.Company)
	assert.Equal(t, "Unknown Bot", det.BotType)
	assert.Equal(t, common.RiskMedium, det.RiskLevel)
	assert.False(t, det.Commercial)
	assert.Contains(t, det.Evidence, `Contains bot indicator "bot"`)
	assert.Contains(t, det.Evidence, `Contains bot indicator "scraper"`)
	assert.Contains(t, det.Evidence, "No typical browser identifiers")
}

func TestDetector_Analyze_ToolTrafficIsNotFlagged(t *testing.T) {
	d := newTestDetector(t)

	// curl has no bot indicator and no browser identifier: score 25 stays
	// under the threshold, and a negative verdict carries only the raw
	// score — no confidence, evidence, or attribution.
	det := d.Analyze(AccessEvent{UserAgent: "curl/7.68.0"})

	assert.False(t, det.IsBot)
	assert.Equal(t, 25, det.SuspicionScore)
	assert.Zero(t, det.Confidence)
	assert.Empty(t, det.Evidence)
	assert.Equal(t, common.RiskLow, det.RiskLevel)
	assert.Empty(t, det.Company)
	assert.Empty(t, det.BotType)
	assert.False(t, det.Commercial)
}

func TestDetector_Analyze_BrowserTraffic(t *testing.T) {
	d := newTestDetector(t)

	det := d.Analyze(AccessEvent{
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36",
	})

	assert.False(t, det.IsBot)
	assert.Zero(t, det.SuspicionScore)
	assert.Zero(t, det.Confidence)
	assert.Empty(t, det.Evidence)
}

func TestDetector_Analyze_SubThresholdIndicatorLeavesNoTrace(t *testing.T) {
	d := newTestDetector(t)

	// One indicator hit inside a browser agent: 30 stays under the
	// threshold, so the hit must not leak into evidence or confidence.
	det := d.Analyze(AccessEvent{UserAgent: "Mozilla/5.0 (compatible) prefetch-helper"})

	assert.False(t, det.IsBot)
	assert.Equal(t, 30, det.SuspicionScore)
	assert.Zero(t, det.Confidence)
	assert.Empty(t, det.Evidence)
}

func TestDetector_Analyze_EmptyUserAgent(t *testing.T) {
	d := newTestDetector(t)

	// The no-browser penalty applies only to non-empty agents; an empty
	// agent scores zero and is never a bot.
	det := d.Analyze(AccessEvent{UserAgent: ""})

	assert.False(t, det.IsBot)
	assert.Zero(t, det.SuspicionScore)
	assert.Empty(t, det.Evidence)
}

func TestDetector_Analyze_Deterministic(t *testing.T) {
	d := newTestDetector(t)
	event := AccessEvent{UserAgent: "SomeScraperBot/2.0", URI: "/a", IPAddress: "10.0.0.1"}

	first := d.Analyze(event)
	second := d.Analyze(event)
	assert.Equal(t, first, second)
}

func TestDetector_Analyze_MediumRiskBoundary(t *testing.T) {
	d := newTestDetector(t)

	// A single indicator plus the no-browser penalty: 30 + 25 = 55.  Above
	// the bot threshold, at or below the medium-risk threshold, so the
	// verdict stays low risk.
	det := d.Analyze(AccessEvent{UserAgent: "fetchlib/0.3"})

	assert.True(t, det.IsBot)
	assert.Equal(t, 55, det.SuspicionScore)
	assert.Equal(t, common.RiskLow, det.RiskLevel)
}

//Personal.AI order the ending
