// Package models holds the typed records the MEATER cloud APIs return. The
// primary (v2) API uses fixed-point temperatures (°C × 32) and camelCase
// fields; the public v1 API uses plain float °C. Records are constructed fresh
// from server JSON on every fetch and never mutated afterwards.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Zahlii/meater-api/internal/reference"
)

// Alarm is a single configured alert on a cook. The limit is a fixed-point
// temperature for the ambient/internal types and seconds for the time types.
type Alarm struct {
	Type  AlarmType  `json:"type"`
	State AlarmState `json:"state"`
	Limit int        `json:"limit"`
}

// EstimatorConfig tunes the vendor's time-to-ready estimator.
type EstimatorConfig struct {
	TemperatureChangeBeforeReady int `json:"temperatureChangeBeforeReady"`
	SecondsDelayBeforeReady      int `json:"secondsDelayBeforeReady"`
	SecondsDelayBeforeResting    int `json:"secondsDelayBeforeResting"`
	EstimatorType                int `json:"estimatorType"`
}

// Setup is the configuration a cook was started with. CutID and PresetID
// reference the bundled dataset; the entities themselves are not embedded.
type Setup struct {
	SequenceNumber            *int            `json:"sequenceNumber"`
	State                     CookState       `json:"state"`
	Name                      string          `json:"name"`
	TargetInternalTemperature int             `json:"targetInternalTemperature"` // °C × 32
	Alarms                    []Alarm         `json:"alarms"`
	CookID                    string          `json:"cookID"`
	CutID                     int             `json:"cutID"`
	PresetID                  int             `json:"presetID"`
	ClipNumber                int             `json:"clipNumber"`
	CookingAppliance          *int            `json:"cookingAppliance,omitempty"`
	EstimatorConfig           EstimatorConfig `json:"estimatorConfig"`
}

// Cut resolves the referenced cut against the loaded reference tables.
// The vendor ships cuts newer than the bundled dataset, so a miss is not an
// error; ok reports whether the ID was found.
func (s Setup) Cut(tables *reference.Tables) (reference.Cut, bool) {
	if tables == nil {
		return reference.Cut{}, false
	}
	return tables.Cut(s.CutID)
}

// Preset resolves the referenced temperature preset, with the same lenient
// miss semantics as Cut.
func (s Setup) Preset(tables *reference.Tables) (reference.TemperatureRange, bool) {
	if tables == nil {
		return reference.TemperatureRange{}, false
	}
	return tables.Preset(s.PresetID)
}

// TargetCelsius is the configured target internal temperature in °C.
func (s Setup) TargetCelsius() float64 {
	return ToCelsius(s.TargetInternalTemperature)
}

// HistoryValue is one sampled temperature pair, fixed-point encoded.
type HistoryValue struct {
	Ambient  int `json:"ambient"`
	Internal int `json:"internal"`
}

// History is the recorded temperature series of a cook: one value per
// sampling tick of Interval seconds, starting at StartTime (epoch seconds).
type History struct {
	Interval  int            `json:"interval"`
	StartTime int64          `json:"startTime"`
	Values    []HistoryValue `json:"values"`
}

// Raw is the probe/device snapshot embedded in a cook record.
type Raw struct {
	MasterType                   MasterType `json:"masterType"`
	ProbeID                      string     `json:"probeID"`
	ProbeNumber                  ProbeType  `json:"probeNumber"`
	ProbeFirmwareRevision        string     `json:"probeFirmwareRevision"`
	ParentDeviceID               string     `json:"parentDeviceID"`
	ParentDeviceProbeNumber      int        `json:"parentDeviceProbeNumber"`
	ParentDeviceFirmwareRevision string     `json:"parentDeviceFirmwareRevision"`
	Setup                        Setup      `json:"setup"`
	History                      History    `json:"history"`
	DeviceInfo                   string     `json:"deviceInfo"`
	Peak                         int        `json:"peak"` // °C × 32
	AppVersion                   string     `json:"appVersion"`
	OSVersion                    string     `json:"osVersion"`
	EmailAddress                 string     `json:"emailAddress"`
	SendingDeviceCloudID         string     `json:"sendingDeviceCloudID"`
}

// PeakCelsius is the highest internal temperature reached, in °C.
func (r Raw) PeakCelsius() float64 {
	return ToCelsius(r.Peak)
}

// Cook is one probe-monitored cooking session from the primary API.
type Cook struct {
	ID          string    `json:"id"`
	TotalTime   int       `json:"totalTime"` // seconds
	IsFavourite bool      `json:"isFavourite"`
	IsDeleted   bool      `json:"isDeleted"`
	IsOwner     bool      `json:"isOwner"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Feedback    *int      `json:"feedback"`
	Raw         Raw       `json:"raw"`
}

// Validate rejects records the server returned without the fields the rest of
// the client relies on.
func (c Cook) Validate() error {
	if c.ID == "" {
		return errors.New("cook is missing an id")
	}
	if len(c.Raw.History.Values) > 0 && c.Raw.History.Interval <= 0 {
		return fmt.Errorf("cook %s: history has values but interval %d", c.ID, c.Raw.History.Interval)
	}
	return nil
}

// StartedAt derives the cook's start from the history start timestamp.
func (c Cook) StartedAt() time.Time {
	return time.Unix(c.Raw.History.StartTime, 0)
}

// Duration is the total cooking time.
func (c Cook) Duration() time.Duration {
	return time.Duration(c.TotalTime) * time.Second
}

// HistoryRow is one row of the derived time-series view, in float °C.
type HistoryRow struct {
	Time      time.Time
	AmbientC  float64
	InternalC float64
}

// HistoryTable converts the fixed-point history into timestamped float rows,
// one per sampling tick.
func (c Cook) HistoryTable() []HistoryRow {
	h := c.Raw.History
	rows := make([]HistoryRow, len(h.Values))
	step := time.Duration(h.Interval) * time.Second
	for i, v := range h.Values {
		rows[i] = HistoryRow{
			Time:      c.StartedAt().Add(time.Duration(i) * step),
			AmbientC:  ToCelsius(v.Ambient),
			InternalC: ToCelsius(v.Internal),
		}
	}
	return rows
}

// Summary renders a human-readable one-liner for the cook, resolving cut and
// preset names against the reference tables when present.
func (c Cook) Summary(tables *reference.Tables) string {
	cutName := "unknown cut"
	if cut, ok := c.Raw.Setup.Cut(tables); ok {
		cutName = cut.NameLong
	}
	presetName := "unknown preset"
	if preset, ok := c.Raw.Setup.Preset(tables); ok {
		presetName = preset.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Cook(updated_at=%s, started_at=%s,\n",
		c.UpdatedAt.Format("2006-01-02 15:04"), c.StartedAt().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "     cut=%s, preset=%s, duration=%s, peak=%.1f°C, target=%.1f°C)",
		cutName, presetName, c.Duration(), c.Raw.PeakCelsius(), c.Raw.Setup.TargetCelsius())
	return b.String()
}
