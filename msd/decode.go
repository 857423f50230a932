package msd

import "encoding/binary"

// Payload header layout. The model byte overlaps the company
// identifier: iNode encodes the model in the identifier's high byte.
const (
	companyIDOffset = 0
	modelOffset     = 1
	headerLength    = 2
)

// Decode decodes an MSD payload into a fresh record. It reads the model
// byte at index 1, dispatches to the registered decoder, and fails with
// *UnknownModelError when the model is not registered or with
// *ShortBufferError when the buffer cannot cover a field read.
func Decode(data []byte) (*Record, error) {
	if len(data) < headerLength {
		return nil, &ShortBufferError{Field: "companyIdentifier", Need: headerLength, Have: len(data)}
	}
	rec := &Record{
		DataType:          ADManufacturerData,
		CompanyIdentifier: binary.LittleEndian.Uint16(data[companyIDOffset:]),
	}
	if err := DecodeInto(data, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// DecodeInto decodes an MSD payload into a caller-supplied record,
// augmenting whatever fields it already carries. DataType and
// CompanyIdentifier are left alone; use Decode when a complete record is
// wanted. On error the model-specific fields are untouched.
func DecodeInto(data []byte, rec *Record) error {
	if len(data) <= modelOffset {
		return &ShortBufferError{Field: "model", Need: modelOffset + 1, Have: len(data)}
	}
	model := Model(data[modelOffset])
	decode, ok := DecoderFor(model)
	if !ok {
		return &UnknownModelError{Model: model}
	}
	return decode(data, rec)
}
