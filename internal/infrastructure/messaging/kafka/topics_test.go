package kafka

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicFor(t *testing.T) {
	assert.Equal(t, TopicCrawlerDetected, TopicFor(EventTypeCrawlerDetected))
	assert.Equal(t, TopicContentValued, TopicFor(EventTypeContentValued))
	assert.Equal(t, TopicPortfolioAnalyzed, TopicFor(EventTypePortfolioAnalyzed))

	// Unknown types land on the detection topic rather than being dropped.
	assert.Equal(t, TopicCrawlerDetected, TopicFor("mystery.event"))
}

func TestNewEvent_Envelope(t *testing.T) {
	payload := map[string]string{"company": "OpenAI"}

	event, err := NewEvent(EventTypeCrawlerDetected, "crawlvalue-intelligence", payload)
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventTypeCrawlerDetected, event.Type)
	assert.Equal(t, "crawlvalue-intelligence", event.Source)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(event.Payload, &decoded))
	assert.Equal(t, payload, decoded)

	raw, err := json.Marshal(event)
	require.NoError(t, err)
	var roundTrip Event
	require.NoError(t, json.Unmarshal(raw, &roundTrip))
	assert.Equal(t, event.ID, roundTrip.ID)
	assert.Equal(t, event.Type, roundTrip.Type)
}

func TestNewEvent_UnmarshalablePayload(t *testing.T) {
	_, err := NewEvent(EventTypeContentValued, "test", func() {})
	require.Error(t, err)
}

//Personal.AI order the ending
