// Package msd decodes iNode manufacturer-specific data (MSD) payloads
// from Bluetooth LE advertisements into structured sensor records.
//
// The package deals only with the raw MSD byte buffer: it does not parse
// the surrounding advertisement packet and performs no Bluetooth I/O.
// Callers hand it the manufacturer data exactly as extracted by whatever
// BLE stack they use.
//
// # Payload layout
//
// All multi-byte integers are little-endian. The first two bytes carry
// the company identifier, and the device model byte overlaps it at index
// 1 (an iNode quirk: the model is encoded in the identifier's high byte).
// For the Nav model (0x89):
//
//	offset 0-1   company identifier (uint16)
//	offset 1     device model (0x89)
//	offset 0     status byte: bit 0x02 = RTTO flag, bit 0x04 = low battery
//	offset 2-7   acceleration x,y,z (3 x int16, scale 1/16000)
//	offset 8-13  magnetic field x,y,z (3 x int16, scale 1/10000)
//
// # Usage
//
// Direct decoding, for callers that already know the buffer is iNode MSD:
//
//	rec, err := msd.Decode(data)
//
// Decode fails with *UnknownModelError when the model byte is not
// registered and with *ShortBufferError when the buffer cannot cover a
// field read. DecodeInto merges into a caller-owned record instead of
// allocating one.
//
// Integration with a host advertisement parser goes through
// WrapManufacturerData, which composes this package's model dispatch
// with whatever decoder the host had installed for the MSD slot. Unlike
// Decode, that path treats unknown models as foreign vendors' data and
// stays silent.
//
// Decoding is stateless and safe for concurrent use; the model registry
// is populated in init and guarded for the rare case of runtime
// registration.
package msd
