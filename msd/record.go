package msd

import "fmt"

// Vector holds one signed fixed-point sensor triple after scaling.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ExtendedAlarms carries the ten named alarm conditions from the
// extended alarm word. It is only present on a Record when the payload
// variant actually contains that word; absence of the word means absence
// of the flags, not flags set to false.
type ExtendedAlarms struct {
	MoveAccelerometer        bool `json:"moveAccelerometer"`
	LevelAccelerometer       bool `json:"levelAccelerometer"`
	LevelTemperature         bool `json:"levelTemperature"`
	LevelHumidity            bool `json:"levelHumidity"`
	ContactChange            bool `json:"contactChange"`
	MoveStopped              bool `json:"moveStopped"`
	MoveGTimer               bool `json:"moveGTimer"`
	LevelAccelerometerChange bool `json:"levelAccelerometerChange"`
	LevelMagnetChange        bool `json:"levelMagnetChange"`
	LevelMagnetTimer         bool `json:"levelMagnetTimer"`
}

// Alarms holds the decoded alarm flags. LowBattery is always decoded;
// Extended is nil unless the payload carries the extended alarm word.
type Alarms struct {
	LowBattery bool            `json:"lowBattery"`
	Extended   *ExtendedAlarms `json:"extended,omitempty"`
}

// Record is a decoded MSD payload. It is built incrementally by the
// model-specific field decoders; Model and ModelLabel are written once,
// at the head of the pipeline, and never change afterwards.
type Record struct {
	DataType          ADType `json:"dataType"`
	CompanyIdentifier uint16 `json:"companyIdentifier"`
	Model             Model  `json:"model"`
	ModelLabel        string `json:"modelLabel"`
	RTTO              bool   `json:"rtto"`
	Alarms            Alarms `json:"alarms"`
	Position          Vector `json:"position"`
	MagneticField     Vector `json:"magneticField"`
}

// String returns a human-readable representation of the record.
func (r *Record) String() string {
	return fmt.Sprintf("Record{model=%s, company=0x%04X, rtto=%v, lowBattery=%v, position=(%g, %g, %g), magneticField=(%g, %g, %g)}",
		r.Model, r.CompanyIdentifier, r.RTTO, r.Alarms.LowBattery,
		r.Position.X, r.Position.Y, r.Position.Z,
		r.MagneticField.X, r.MagneticField.Y, r.MagneticField.Z)
}
