package msd

import "testing"

func TestWrapManufacturerDataKnownModel(t *testing.T) {
	data := navPayload(0x02, [3]int16{1, 0, 0}, [3]int16{0, 0, 0})

	fallbackCalled := false
	decode := WrapManufacturerData(func([]byte, *Record) error {
		fallbackCalled = true
		return nil
	})

	var rec Record
	if err := decode(data, &rec); err != nil {
		t.Fatalf("wrapped decoder error = %v", err)
	}
	if fallbackCalled {
		t.Error("fallback called for a known model")
	}
	if rec.Model != ModelNav || !rec.RTTO {
		t.Errorf("record not decoded: %s", &rec)
	}
}

func TestWrapManufacturerDataUnknownModelFallsBack(t *testing.T) {
	data := []byte{0x4C, 0x00, 0x01, 0x02} // foreign vendor, model byte 0x00

	fallbackCalled := false
	decode := WrapManufacturerData(func(got []byte, _ *Record) error {
		fallbackCalled = true
		if len(got) != len(data) {
			t.Errorf("fallback received %d bytes, want %d", len(got), len(data))
		}
		return nil
	})

	var rec Record
	if err := decode(data, &rec); err != nil {
		t.Fatalf("wrapped decoder error = %v", err)
	}
	if !fallbackCalled {
		t.Error("fallback not called for an unknown model")
	}
	if rec.Model != 0 || rec.ModelLabel != "" {
		t.Errorf("record modified for an unknown model: %s", &rec)
	}
}

func TestWrapManufacturerDataNoFallbackIsSilent(t *testing.T) {
	decode := WrapManufacturerData(nil)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "unknown_model", data: []byte{0x4C, 0x00, 0x01}},
		{name: "empty", data: nil},
		{name: "one_byte", data: []byte{0x4C}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var rec Record
			if err := decode(tc.data, &rec); err != nil {
				t.Errorf("wrapped decoder error = %v, want nil", err)
			}
			if rec != (Record{}) {
				t.Errorf("record modified: %s", &rec)
			}
		})
	}
}

func TestRegisterIntoChainsPreviousDecoder(t *testing.T) {
	previousCalled := false
	reg := ADRegistry{
		ADManufacturerData: func([]byte, *Record) error {
			previousCalled = true
			return nil
		},
	}
	RegisterInto(reg)

	// Known model goes to this package's registry.
	var rec Record
	if err := reg[ADManufacturerData](navPayload(0x00, [3]int16{}, [3]int16{}), &rec); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if previousCalled {
		t.Error("previous decoder called for a known model")
	}
	if rec.Model != ModelNav {
		t.Errorf("Model = 0x%02X, want 0x%02X", byte(rec.Model), byte(ModelNav))
	}

	// Unknown model falls through to the previous decoder.
	if err := reg[ADManufacturerData]([]byte{0x4C, 0x00}, &Record{}); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if !previousCalled {
		t.Error("previous decoder not called for an unknown model")
	}
}

func TestRegisterIntoEmptyRegistry(t *testing.T) {
	reg := ADRegistry{}
	RegisterInto(reg)

	if reg[ADManufacturerData] == nil {
		t.Fatal("manufacturer-data slot not installed")
	}
	if err := reg[ADManufacturerData]([]byte{0x4C, 0x00}, &Record{}); err != nil {
		t.Errorf("decode error = %v, want nil for unknown model with no fallback", err)
	}
}
