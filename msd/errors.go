package msd

import "fmt"

// UnknownModelError is returned by Decode and DecodeInto when the model
// byte has no registered decoder. The advertisement-registry path never
// returns it; foreign vendors' MSD is expected there and skipped.
type UnknownModelError struct {
	Model Model
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown device model 0x%02X", byte(e.Model))
}

// ShortBufferError is returned when a field read would run past the end
// of the payload. Field names the record field whose read failed.
type ShortBufferError struct {
	Field string
	Need  int
	Have  int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("buffer too short for %s: need %d bytes, have %d", e.Field, e.Need, e.Have)
}
