package stream

import (
	"fmt"
)

// StreamMessage is a decoded Redis stream entry.
type StreamMessage struct {
	ID     string
	Fields map[string]string
}

// ScanEvent is a scan request carried on the scan stream.
type ScanEvent struct {
	TeamID      string
	ScanID      string
	RequestedBy string
}

// ParseScanEvent validates and extracts a scan event from a stream message.
func ParseScanEvent(msg *StreamMessage) (*ScanEvent, error) {
	event := &ScanEvent{
		TeamID:      msg.Fields["teamId"],
		ScanID:      msg.Fields["scanId"],
		RequestedBy: msg.Fields["requestedBy"],
	}

	if event.TeamID == "" {
		return nil, fmt.Errorf("scan event %s missing teamId", msg.ID)
	}
	if event.ScanID == "" {
		return nil, fmt.Errorf("scan event %s missing scanId", msg.ID)
	}

	return event, nil
}

// Values returns the event as stream field values for XAdd.
func (e *ScanEvent) Values() map[string]interface{} {
	return map[string]interface{}{
		"teamId":      e.TeamID,
		"scanId":      e.ScanID,
		"requestedBy": e.RequestedBy,
	}
}
