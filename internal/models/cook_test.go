package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Zahlii/meater-api/internal/reference"
)

// sampleCookJSON is a pared-down primary-API cook element: one hour total,
// peak 60°C, one history sample at 2024-01-01T00:00:00Z.
const sampleCookJSON = `{
	"id": "abc",
	"totalTime": 3600,
	"isFavourite": false,
	"isDeleted": false,
	"isOwner": true,
	"updatedAt": "2024-01-01T00:00:00Z",
	"feedback": null,
	"raw": {
		"masterType": 1,
		"probeID": "probe-1",
		"probeNumber": 16,
		"probeFirmwareRevision": "2.1.0",
		"parentDeviceID": "parent-1",
		"parentDeviceProbeNumber": 0,
		"parentDeviceFirmwareRevision": "2.1.0",
		"deviceInfo": "iPhone",
		"peak": 1920,
		"appVersion": "4.4.2",
		"osVersion": "18.2",
		"emailAddress": "user@example.com",
		"sendingDeviceCloudID": "cloud-1",
		"setup": {
			"sequenceNumber": 1,
			"state": 6,
			"name": "Sunday roast",
			"targetInternalTemperature": 1760,
			"alarms": [{"type": 2, "state": 2, "limit": 1760}],
			"cookID": "cook-1",
			"cutID": 1,
			"presetID": 1,
			"clipNumber": 0,
			"estimatorConfig": {
				"temperatureChangeBeforeReady": 5,
				"secondsDelayBeforeReady": 30,
				"secondsDelayBeforeResting": 60,
				"estimatorType": 1
			}
		},
		"history": {
			"interval": 60,
			"startTime": 1704067200,
			"values": [{"ambient": 800, "internal": 320}]
		}
	}
}`

func decodeSampleCook(t *testing.T) Cook {
	t.Helper()
	var c Cook
	if err := json.Unmarshal([]byte(sampleCookJSON), &c); err != nil {
		t.Fatalf("failed to decode sample cook: %v", err)
	}
	return c
}

func TestCookDerivedValues(t *testing.T) {
	c := decodeSampleCook(t)

	if err := c.Validate(); err != nil {
		t.Fatalf("sample cook failed validation: %v", err)
	}
	if got := c.Duration(); got != time.Hour {
		t.Errorf("Duration() = %s, want 1h", got)
	}
	if got := c.Raw.PeakCelsius(); got != 60.0 {
		t.Errorf("PeakCelsius() = %v, want 60.0", got)
	}
	if got := c.Raw.Setup.TargetCelsius(); got != 55.0 {
		t.Errorf("TargetCelsius() = %v, want 55.0", got)
	}
	if got := c.StartedAt().Unix(); got != 1704067200 {
		t.Errorf("StartedAt().Unix() = %d, want 1704067200", got)
	}
	if got := c.Raw.Setup.State; got != CookStateFinished {
		t.Errorf("setup state = %v, want FINISHED", got)
	}
}

func TestCookHistoryTable(t *testing.T) {
	c := decodeSampleCook(t)

	rows := c.HistoryTable()
	if len(rows) != 1 {
		t.Fatalf("HistoryTable() returned %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.Time.Unix() != c.StartedAt().Unix() {
		t.Errorf("first row at %v, want start time %v", row.Time, c.StartedAt())
	}
	if row.InternalC != 10.0 {
		t.Errorf("internal = %v, want 10.0", row.InternalC)
	}
	if row.AmbientC != 25.0 {
		t.Errorf("ambient = %v, want 25.0", row.AmbientC)
	}
}

func TestCookHistoryTableSpacing(t *testing.T) {
	c := decodeSampleCook(t)
	c.Raw.History.Values = []HistoryValue{
		{Ambient: 800, Internal: 320},
		{Ambient: 832, Internal: 480},
		{Ambient: 864, Internal: 640},
	}

	rows := c.HistoryTable()
	if len(rows) != 3 {
		t.Fatalf("HistoryTable() returned %d rows, want 3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if gap := rows[i].Time.Sub(rows[i-1].Time); gap != time.Minute {
			t.Errorf("gap between rows %d and %d = %s, want 1m", i-1, i, gap)
		}
	}
	if rows[2].InternalC != 20.0 {
		t.Errorf("last internal = %v, want 20.0", rows[2].InternalC)
	}
}

func TestCookSummary(t *testing.T) {
	tables, err := reference.Load()
	if err != nil {
		t.Fatalf("failed to load reference tables: %v", err)
	}
	c := decodeSampleCook(t)

	got := c.Summary(tables)
	for _, want := range []string{"Beef Ribeye Steak", "Rare", "1h0m0s", "peak=60.0°C", "target=55.0°C"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() = %q, missing %q", got, want)
		}
	}
}

func TestCookSummaryUnknownReferences(t *testing.T) {
	tables, err := reference.Load()
	if err != nil {
		t.Fatalf("failed to load reference tables: %v", err)
	}
	c := decodeSampleCook(t)
	c.Raw.Setup.CutID = 99999
	c.Raw.Setup.PresetID = 99999

	got := c.Summary(tables)
	if !strings.Contains(got, "unknown cut") || !strings.Contains(got, "unknown preset") {
		t.Errorf("Summary() with unmatched IDs = %q, want unknown placeholders", got)
	}
}

func TestCookValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Cook)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Cook) {}, wantErr: false},
		{name: "missing id", mutate: func(c *Cook) { c.ID = "" }, wantErr: true},
		{
			name: "values without interval",
			mutate: func(c *Cook) {
				c.Raw.History.Interval = 0
			},
			wantErr: true,
		},
		{
			name: "empty history needs no interval",
			mutate: func(c *Cook) {
				c.Raw.History.Interval = 0
				c.Raw.History.Values = nil
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := decodeSampleCook(t)
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetupLookupsAreLenient(t *testing.T) {
	tables, err := reference.Load()
	if err != nil {
		t.Fatalf("failed to load reference tables: %v", err)
	}

	s := Setup{CutID: 1, PresetID: 99999}
	if _, ok := s.Cut(tables); !ok {
		t.Errorf("Cut(1) not found, want bundled ribeye")
	}
	if _, ok := s.Preset(tables); ok {
		t.Errorf("Preset(99999) found, want miss")
	}
	if _, ok := s.Cut(nil); ok {
		t.Errorf("Cut(nil tables) found, want miss")
	}
}
