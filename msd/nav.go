package msd

const navLabel = "iNode Nav"

// Nav payload field offsets and scales.
const (
	navStatusOffset   = 0
	navAccelOffset    = 2
	navMagneticOffset = 8

	navAccelScale    = 16000
	navMagneticScale = 10000

	// NavMinLength is the smallest buffer the Nav decoder can read
	// completely: the magnetic-field Z word ends at offset 14.
	NavMinLength = 14
)

// Nav payloads carry no extended alarm word; only the low-battery flag
// is available, sourced from the status byte.
var navAlarmLayout = AlarmLayout{Battery: At(navStatusOffset)}

func init() {
	Register(ModelNav, decodeNav)
}

// decodeNav runs the Nav field pipeline: identity, accelerometer,
// magnetic field, RTTO, alarms. The field decoders are independent and
// read disjoint ranges (the status byte intentionally serves both RTTO
// and the battery alarm); all values are computed before the record is
// touched so a short buffer never leaves partial sensor fields behind.
func decodeNav(data []byte, rec *Record) error {
	position, err := decodeVector(data, navAccelOffset, navAccelScale, "position")
	if err != nil {
		return err
	}
	magnetic, err := decodeVector(data, navMagneticOffset, navMagneticScale, "magneticField")
	if err != nil {
		return err
	}
	rtto, err := decodeRTTO(data, navStatusOffset)
	if err != nil {
		return err
	}
	alarms, err := decodeAlarms(data, navAlarmLayout)
	if err != nil {
		return err
	}

	rec.Model = ModelNav
	rec.ModelLabel = navLabel
	rec.Position = position
	rec.MagneticField = magnetic
	rec.RTTO = rtto
	rec.Alarms = alarms
	return nil
}
