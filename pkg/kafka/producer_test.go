package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_Fields(t *testing.T) {
	type BrandData struct {
		BrandID   int64  `json:"brand_id"`
		BrandName string `json:"brand_name"`
	}

	data := BrandData{BrandID: 1, BrandName: "Acme"}
	event, err := NewEvent("brand.created", "1", "brand", "brand-service", data)
	require.NoError(t, err)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "brand.created", event.EventType)
	assert.Equal(t, "1", event.AggregateID)
	assert.Equal(t, "brand", event.AggregateType)
	assert.Equal(t, "brand-service", event.Source)
	assert.Equal(t, 1, event.Version)
	assert.WithinDuration(t, time.Now().UTC(), event.Timestamp, 2*time.Second)
	assert.NotNil(t, event.Metadata)

	var roundTripped BrandData
	require.NoError(t, json.Unmarshal(event.Data, &roundTripped))
	assert.Equal(t, data, roundTripped)
}

func TestNewEvent_InvalidData(t *testing.T) {
	// Channels are not serializable to JSON.
	_, err := NewEvent("brand.created", "1", "brand", "brand-service", make(chan int))
	require.Error(t, err)
}

func TestEvent_Marshal_Unmarshal(t *testing.T) {
	original, err := NewEvent("brand.updated", "7", "brand", "brand-service", map[string]string{"brand_name": "Acme"})
	require.NoError(t, err)
	original.WithCorrelationID("corr-abc")

	data, err := original.Marshal()
	require.NoError(t, err)

	restored, err := UnmarshalEvent(data)
	require.NoError(t, err)

	assert.Equal(t, original.EventID, restored.EventID)
	assert.Equal(t, original.EventType, restored.EventType)
	assert.Equal(t, original.AggregateID, restored.AggregateID)
	assert.Equal(t, "corr-abc", restored.CorrelationID)
}

func TestEvent_UnmarshalData(t *testing.T) {
	event, err := NewEvent("brand.deactivated", "3", "brand", "brand-service", map[string]int64{"brand_id": 3})
	require.NoError(t, err)

	var payload map[string]int64
	require.NoError(t, event.UnmarshalData(&payload))
	assert.Equal(t, int64(3), payload["brand_id"])
}

func TestDefaultProducerConfig(t *testing.T) {
	cfg := DefaultProducerConfig([]string{"localhost:9092"})

	assert.Equal(t, []string{"localhost:9092"}, cfg.Brokers)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, 10*time.Millisecond, cfg.BatchTimeout)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}
