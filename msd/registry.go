package msd

import (
	"fmt"
	"sort"
	"sync"
)

// Model is the one-byte device-model identifier that selects the
// decoding schema for a payload.
type Model byte

// Known device models.
const (
	ModelNav Model = 0x89
)

// String returns the human-readable model name.
func (m Model) String() string {
	switch m {
	case ModelNav:
		return navLabel
	default:
		return fmt.Sprintf("Unknown(0x%02X)", byte(m))
	}
}

// DecoderFunc decodes one model's fields from data into rec.
type DecoderFunc func(data []byte, rec *Record) error

var (
	regMu    sync.RWMutex
	registry = make(map[Model]DecoderFunc)
)

// Register stores a model decoder in the registry. Models ship their
// registration in init; runtime registration is allowed and safe against
// concurrent lookups.
func Register(m Model, decode DecoderFunc) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[m] = decode
}

// DecoderFor returns the decoder registered for the model, if any.
func DecoderFor(m Model) (DecoderFunc, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	decode, ok := registry[m]
	return decode, ok
}

// Models lists the registered model identifiers in ascending order.
func Models() []Model {
	regMu.RLock()
	defer regMu.RUnlock()
	models := make([]Model, 0, len(registry))
	for m := range registry {
		models = append(models, m)
	}
	sort.Slice(models, func(i, j int) bool { return models[i] < models[j] })
	return models
}
