package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"support-chat-backend/pkg/response"
)

func TestUnixMilliMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.UnixMilli(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling UnixMilli: %v", err)
	}

	if string(b) != "1714577400000" {
		t.Errorf("expected 1714577400000, got %s", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	tm := time.Date(2024, 5, 1, 21, 0, 0, 0, loc)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if string(b) != `"2024-05-01T15:30:00Z"` {
		t.Errorf("unexpected datetime: %s", b)
	}
}
