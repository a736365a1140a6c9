package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// OperationMode is the air-conditioner function applied when a trigger fires.
type OperationMode string

const (
	OperationModeAuto OperationMode = "auto"
	OperationModeCool OperationMode = "cool"
	OperationModeDry  OperationMode = "dry"
	OperationModeFan  OperationMode = "fan"
	OperationModeHeat OperationMode = "heat"
)

// OperationModes lists the closed set of supported modes.
var OperationModes = []OperationMode{
	OperationModeAuto,
	OperationModeCool,
	OperationModeDry,
	OperationModeFan,
	OperationModeHeat,
}

// Valid reports whether m is one of OperationModes.
func (m OperationMode) Valid() bool {
	for _, known := range OperationModes {
		if m == known {
			return true
		}
	}
	return false
}

// ACSettings are the settings pushed to the air conditioner.
type ACSettings struct {
	Mode OperationMode `json:"mode" example:"cool"`
	Temp float64       `json:"temp" example:"24"`
} // @name ACSettings

// TimeOfDay is an hour and minute with no date attached.
type TimeOfDay struct {
	Hour   int `json:"hour" example:"7"`
	Minute int `json:"minute" example:"30"`
} // @name TimeOfDay

// NewTimeOfDay builds a TimeOfDay and validates its range.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	t := TimeOfDay{Hour: hour, Minute: minute}
	return t, t.Validate()
}

// Validate checks hour is in [0,23] and minute in [0,59].
func (t TimeOfDay) Validate() error {
	if t.Hour < 0 || t.Hour > 23 {
		return fmt.Errorf("hour must be between 0 and 23, got %d", t.Hour)
	}
	if t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("minute must be between 0 and 59, got %d", t.Minute)
	}
	return nil
}

// String formats as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Value stores the time of day as a SQL TIME literal.
func (t TimeOfDay) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minute), nil
}

// Scan reads a TIME column. Drivers hand it over as text ("HH:MM[:SS]") or, when they
// parse it themselves, as a time.Time whose date part is ignored.
func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Hour, t.Minute = v.Hour(), v.Minute()
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	case nil:
		return fmt.Errorf("scan time of day: NULL value")
	default:
		return fmt.Errorf("scan time of day: unsupported type %T", src)
	}
}

func (t *TimeOfDay) parse(s string) error {
	var h, m, sec int
	n, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec)
	if n < 2 {
		return fmt.Errorf("scan time of day %q: %w", s, err)
	}
	parsed := TimeOfDay{Hour: h, Minute: m}
	if err := parsed.Validate(); err != nil {
		return fmt.Errorf("scan time of day %q: %w", s, err)
	}
	*t = parsed
	return nil
}

// DefaultTrigger fires every day at Time.
type DefaultTrigger struct {
	ID   string     `json:"id" example:"0b6f6c2e-5d0a-4a7f-9a55-3f7c1c2a9d10"`
	Time TimeOfDay  `json:"time"`
	Temp float64    `json:"temp" example:"26"`
	AC   ACSettings `json:"ac"`
} // @name DefaultTrigger

// DateTrigger fires once at DateTime.
type DateTrigger struct {
	ID       string     `json:"id" example:"0b6f6c2e-5d0a-4a7f-9a55-3f7c1c2a9d10"`
	DateTime time.Time  `json:"dateTime" example:"2025-07-01T07:30:00Z"`
	Temp     float64    `json:"temp" example:"26"`
	AC       ACSettings `json:"ac"`
} // @name DateTrigger

// CreateDefaultTriggerRequest is a DefaultTrigger without its id.
type CreateDefaultTriggerRequest struct {
	Time TimeOfDay  `json:"time"`
	Temp float64    `json:"temp" example:"26"`
	AC   ACSettings `json:"ac"`
} // @name CreateDefaultTriggerRequest

// CreateDateTriggerRequest is a DateTrigger without its id.
type CreateDateTriggerRequest struct {
	DateTime time.Time  `json:"dateTime" example:"2025-07-01T07:30:00Z"`
	Temp     float64    `json:"temp" example:"26"`
	AC       ACSettings `json:"ac"`
} // @name CreateDateTriggerRequest

// UpdateTimeRequest is the body of PUT /{id}/time.
type UpdateTimeRequest struct {
	Time TimeOfDay `json:"time"`
} // @name UpdateTimeRequest

// UpdateDateTimeRequest is the body of PUT /{id}/dateTime.
type UpdateDateTimeRequest struct {
	DateTime time.Time `json:"dateTime" example:"2025-07-01T07:30:00Z"`
} // @name UpdateDateTimeRequest

// UpdateTempRequest is the body of PUT /{id}/temp and PUT /{id}/acTemp.
type UpdateTempRequest struct {
	Temp float64 `json:"temp" example:"27"`
} // @name UpdateTempRequest

// UpdateModeRequest is the body of PUT /{id}/acMode.
type UpdateModeRequest struct {
	Mode OperationMode `json:"mode" example:"heat"`
} // @name UpdateModeRequest

// DefaultTriggerListResponse wraps the list endpoint payload.
type DefaultTriggerListResponse struct {
	Triggers []DefaultTrigger `json:"triggers"`
} // @name DefaultTriggerListResponse

// DefaultTriggerResponse wraps a single default trigger.
type DefaultTriggerResponse struct {
	Trigger DefaultTrigger `json:"trigger"`
} // @name DefaultTriggerResponse

// DateTriggerListResponse wraps the list endpoint payload.
type DateTriggerListResponse struct {
	Triggers []DateTrigger `json:"triggers"`
} // @name DateTriggerListResponse

// DateTriggerResponse wraps a single date trigger.
type DateTriggerResponse struct {
	Trigger DateTrigger `json:"trigger"`
} // @name DateTriggerResponse
