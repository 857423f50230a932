package msd

import "encoding/binary"

// Status byte bits.
const (
	rttoBit = 0x02
)

// Alarm mask bits. The extended word carries bits 0x01 through 0x200;
// the low-battery bit is synthesized into position 15 from the battery
// byte.
const (
	alarmMoveAccelerometer        = 0x0001
	alarmLevelAccelerometer       = 0x0002
	alarmLevelTemperature         = 0x0004
	alarmLevelHumidity            = 0x0008
	alarmContactChange            = 0x0010
	alarmMoveStopped              = 0x0020
	alarmMoveGTimer               = 0x0040
	alarmLevelAccelerometerChange = 0x0080
	alarmLevelMagnetChange        = 0x0100
	alarmLevelMagnetTimer         = 0x0200
	alarmLowBattery               = 0x8000
)

// Offset is an optional byte offset. The zero value means "absent";
// use At to point at an index. Payload variants differ in which alarm
// sources they carry, so alarm layouts take Offsets rather than a magic
// sentinel index.
type Offset struct {
	index   int
	present bool
}

// At returns an Offset pointing at index i.
func At(i int) Offset {
	return Offset{index: i, present: true}
}

// Index returns the offset index and whether the offset is present.
func (o Offset) Index() (int, bool) {
	return o.index, o.present
}

// AlarmLayout describes where a payload variant keeps its alarm
// sources. Battery points at the status byte whose bit 0x02 feeds the
// low-battery flag; Extended points at the 16-bit extended alarm word.
// Either may be absent.
type AlarmLayout struct {
	Battery  Offset
	Extended Offset
}

func readByte(data []byte, off int, field string) (byte, error) {
	if off < 0 || off >= len(data) {
		return 0, &ShortBufferError{Field: field, Need: off + 1, Have: len(data)}
	}
	return data[off], nil
}

func readUint16(data []byte, off int, field string) (uint16, error) {
	if off < 0 || off+2 > len(data) {
		return 0, &ShortBufferError{Field: field, Need: off + 2, Have: len(data)}
	}
	return binary.LittleEndian.Uint16(data[off:]), nil
}

func readInt16(data []byte, off int, field string) (int16, error) {
	v, err := readUint16(data, off, field)
	return int16(v), err
}

// decodeVector reads three consecutive signed 16-bit words starting at
// off and scales each by 1/scale.
func decodeVector(data []byte, off int, scale float64, field string) (Vector, error) {
	x, err := readInt16(data, off, field)
	if err != nil {
		return Vector{}, err
	}
	y, err := readInt16(data, off+2, field)
	if err != nil {
		return Vector{}, err
	}
	z, err := readInt16(data, off+4, field)
	if err != nil {
		return Vector{}, err
	}
	return Vector{
		X: float64(x) / scale,
		Y: float64(y) / scale,
		Z: float64(z) / scale,
	}, nil
}

// decodeRTTO reads the real-time-trusted-offset flag from bit 0x02 of
// the byte at off.
func decodeRTTO(data []byte, off int) (bool, error) {
	b, err := readByte(data, off, "rtto")
	if err != nil {
		return false, err
	}
	return b&rttoBit != 0, nil
}

// decodeAlarms builds the combined 16-bit alarm mask from the sources
// the layout declares and extracts the flags.
//
// Only bit 2 (0x04) of the battery byte can ever reach the mask:
// shifted left by 13 it lands on 0x8000 and everything else is masked
// off. This matches the device firmware's encoding and is pinned by
// tests; do not "simplify" the expression.
func decodeAlarms(data []byte, layout AlarmLayout) (Alarms, error) {
	var mask uint16
	if off, ok := layout.Battery.Index(); ok {
		b, err := readByte(data, off, "alarms.battery")
		if err != nil {
			return Alarms{}, err
		}
		mask |= (uint16(b) << 13) & alarmLowBattery
	}
	hasExtended := false
	if off, ok := layout.Extended.Index(); ok {
		w, err := readUint16(data, off, "alarms.extended")
		if err != nil {
			return Alarms{}, err
		}
		mask |= w
		hasExtended = true
	}

	alarms := Alarms{LowBattery: mask&alarmLowBattery != 0}
	if hasExtended {
		alarms.Extended = &ExtendedAlarms{
			MoveAccelerometer:        mask&alarmMoveAccelerometer != 0,
			LevelAccelerometer:       mask&alarmLevelAccelerometer != 0,
			LevelTemperature:         mask&alarmLevelTemperature != 0,
			LevelHumidity:            mask&alarmLevelHumidity != 0,
			ContactChange:            mask&alarmContactChange != 0,
			MoveStopped:              mask&alarmMoveStopped != 0,
			MoveGTimer:               mask&alarmMoveGTimer != 0,
			LevelAccelerometerChange: mask&alarmLevelAccelerometerChange != 0,
			LevelMagnetChange:        mask&alarmLevelMagnetChange != 0,
			LevelMagnetTimer:         mask&alarmLevelMagnetTimer != 0,
		}
	}
	return alarms, nil
}
