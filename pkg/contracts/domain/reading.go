package domain

import (
	"time"
)

// RawRecord is a single line of the household power consumption source file
// with every field kept as the raw string read from disk. Conversion to typed
// values happens in internal/dataprocessing.
type RawRecord struct {
	Date                string `json:"date"`
	Time                string `json:"time"`
	GlobalActivePower   string `json:"global_active_power"`
	GlobalReactivePower string `json:"global_reactive_power"`
	Voltage             string `json:"voltage"`
	GlobalIntensity     string `json:"global_intensity"`
	SubMetering1        string `json:"sub_metering_1"`
	SubMetering2        string `json:"sub_metering_2"`
	SubMetering3        string `json:"sub_metering_3"`
}

// Reading is the typed form of a RawRecord. Numeric fields are pointers so a
// missing measurement (the "?" marker in the source file) stays distinguishable
// from zero. Timestamp is derived from Date and Time; it is the zero time when
// either string is malformed.
type Reading struct {
	Date                string    `json:"date"`
	Time                string    `json:"time"`
	GlobalActivePower   *float64  `json:"global_active_power"`
	GlobalReactivePower *float64  `json:"global_reactive_power"`
	Voltage             *float64  `json:"voltage"`
	GlobalIntensity     *float64  `json:"global_intensity"`
	SubMetering1        *float64  `json:"sub_metering_1"`
	SubMetering2        *float64  `json:"sub_metering_2"`
	SubMetering3        *float64  `json:"sub_metering_3"`
	Timestamp           time.Time `json:"timestamp"`
}

// HasTimestamp reports whether the Date/Time pair parsed successfully.
func (r Reading) HasTimestamp() bool {
	return !r.Timestamp.IsZero()
}

// Dataset is the filtered, normalized set of readings for the target window,
// in source file order (chronological).
type Dataset struct {
	Readings []Reading `json:"readings"`
}
