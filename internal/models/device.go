package models

import (
	"errors"
	"time"
)

// Temperature is a live ambient/internal reading from the public v1 API,
// already in float °C.
type Temperature struct {
	Internal float64 `json:"internal"`
	Ambient  float64 `json:"ambient"`
}

// CookTemperature carries the target and peak of an in-progress cook.
type CookTemperature struct {
	Target float64 `json:"target"`
	Peak   float64 `json:"peak"`
}

// CookTime is elapsed/remaining seconds of an in-progress cook. Remaining is
// -1 while the estimator has no prediction yet.
type CookTime struct {
	Elapsed   int `json:"elapsed"`
	Remaining int `json:"remaining"`
}

// ElapsedTime returns the elapsed time as a duration.
func (t CookTime) ElapsedTime() time.Duration {
	return time.Duration(t.Elapsed) * time.Second
}

// RemainingTime returns the remaining time as a duration.
func (t CookTime) RemainingTime() time.Duration {
	return time.Duration(t.Remaining) * time.Second
}

// V1Cook is the flat cook snapshot embedded in a live device.
type V1Cook struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	State       string          `json:"state"`
	Temperature CookTemperature `json:"temperature"`
	Time        CookTime        `json:"time"`
}

// Device is one probe as reported by the public v1 device list.
type Device struct {
	ID          string      `json:"id"`
	Temperature Temperature `json:"temperature"`
	Cook        *V1Cook     `json:"cook"`
	UpdatedAt   int64       `json:"updated_at"`
}

// Validate rejects device records without an identifier.
func (d Device) Validate() error {
	if d.ID == "" {
		return errors.New("device is missing an id")
	}
	return nil
}

// UpdatedTime converts the epoch-seconds update stamp to a calendar time.
func (d Device) UpdatedTime() time.Time {
	return time.Unix(d.UpdatedAt, 0)
}
