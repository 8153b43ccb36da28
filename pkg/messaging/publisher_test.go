package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogPublisherRecordsMessage(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewLogPublisher(zap.New(core))

	require.NoError(t, p.Publish(context.Background(), "tender.alert", []byte(`{"tender_id":"t-1"}`)))
	require.NoError(t, p.Close())

	entries := logs.FilterMessage("message published").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "tender.alert", fields["routing_key"])
	assert.Equal(t, `{"tender_id":"t-1"}`, fields["body"])
}

func TestNewAMQPPublisherRequiresConfig(t *testing.T) {
	_, err := NewAMQPPublisher(AMQPConfig{Exchange: "tender.alerts"}, nil)
	assert.Error(t, err)

	_, err = NewAMQPPublisher(AMQPConfig{URL: "amqp://localhost"}, nil)
	assert.Error(t, err)
}
