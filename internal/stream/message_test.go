package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScanEvent(t *testing.T) {
	msg := &StreamMessage{
		ID: "1693000000000-0",
		Fields: map[string]string{
			"teamId":      "team-1",
			"scanId":      "scan-abc",
			"requestedBy": "user-9",
		},
	}

	event, err := ParseScanEvent(msg)
	require.NoError(t, err)
	assert.Equal(t, "team-1", event.TeamID)
	assert.Equal(t, "scan-abc", event.ScanID)
	assert.Equal(t, "user-9", event.RequestedBy)
}

func TestParseScanEventMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		errMsg string
	}{
		{
			name:   "missing teamId",
			fields: map[string]string{"scanId": "scan-abc"},
			errMsg: "missing teamId",
		},
		{
			name:   "missing scanId",
			fields: map[string]string{"teamId": "team-1"},
			errMsg: "missing scanId",
		},
		{
			name:   "empty fields",
			fields: map[string]string{},
			errMsg: "missing teamId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := ParseScanEvent(&StreamMessage{ID: "1-0", Fields: tt.fields})
			require.Error(t, err)
			assert.Nil(t, event)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestScanEventValuesRoundTrip(t *testing.T) {
	event := &ScanEvent{TeamID: "team-1", ScanID: "scan-abc", RequestedBy: "user-9"}

	values := event.Values()
	assert.Equal(t, "team-1", values["teamId"])
	assert.Equal(t, "scan-abc", values["scanId"])
	assert.Equal(t, "user-9", values["requestedBy"])
}
