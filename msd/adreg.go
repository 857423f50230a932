package msd

// ADType is a BLE advertisement data-type tag.
type ADType byte

// ADManufacturerData is the assigned tag for manufacturer-specific data.
const ADManufacturerData ADType = 0xFF

// ADDecoder decodes one advertisement structure's payload into a record.
// This is the signature a host advertisement parser dispatches through.
type ADDecoder func(data []byte, rec *Record) error

// ADRegistry maps advertisement data-type tags to their decoders. A host
// parser owns such a mapping; this package only ever touches the
// manufacturer-specific-data slot.
type ADRegistry map[ADType]ADDecoder

// WrapManufacturerData composes this package's model dispatch with a
// previously installed MSD decoder. The returned decoder handles
// payloads whose model byte is registered here; anything else is handed
// to prev, or silently skipped when prev is nil. Unknown models are not
// an error on this path: the MSD slot is shared with every other vendor
// on air.
func WrapManufacturerData(prev ADDecoder) ADDecoder {
	return func(data []byte, rec *Record) error {
		if len(data) > modelOffset {
			if decode, ok := DecoderFor(Model(data[modelOffset])); ok {
				return decode(data, rec)
			}
		}
		if prev != nil {
			return prev(data, rec)
		}
		return nil
	}
}

// RegisterInto replaces the manufacturer-specific-data entry of a host
// registry with the wrapped decoder, chaining to whatever was installed
// there before.
func RegisterInto(reg ADRegistry) {
	reg[ADManufacturerData] = WrapManufacturerData(reg[ADManufacturerData])
}
