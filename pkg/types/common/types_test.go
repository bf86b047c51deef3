package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRiskLevel(t *testing.T) {
	assert.Equal(t, RiskLow, ParseRiskLevel("low"))
	assert.Equal(t, RiskMedium, ParseRiskLevel("medium"))
	assert.Equal(t, RiskHigh, ParseRiskLevel("high"))

	// Unknown and empty input default to low so detections always carry a
	// well-formed level.
	assert.Equal(t, RiskLow, ParseRiskLevel(""))
	assert.Equal(t, RiskLow, ParseRiskLevel("severe"))
}

func TestRiskLevel_Valid(t *testing.T) {
	assert.True(t, RiskHigh.Valid())
	assert.False(t, RiskLevel("critical").Valid())
	assert.False(t, RiskLevel("").Valid())
}

func TestTimestamp_JSONRoundTrip(t *testing.T) {
	orig := Timestamp(time.Date(2026, 8, 30, 10, 15, 30, 123456789, time.UTC))

	raw, err := json.Marshal(orig)
	require.NoError(t, err)

	var decoded Timestamp
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, time.Time(orig).Equal(time.Time(decoded)))
}

func TestDateRange_Validate(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, DateRange{From: from, To: to}.Validate())
	assert.NoError(t, DateRange{}.Validate())
	assert.Error(t, DateRange{From: to, To: from}.Validate())
}

func TestID(t *testing.T) {
	id := NewID()
	assert.NoError(t, id.Validate())
	assert.Error(t, ID("").Validate())
	assert.Error(t, ID("not-a-uuid").Validate())
}

//Personal.AI order the ending
