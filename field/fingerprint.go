package field

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a content hash of the current tensor data, letting
// callers detect whether a field changed between two points without
// diffing the whole grid.
func (f *Field) Fingerprint() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	h := xxhash.New()
	var buf [8]byte
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	for i := 0; i < f.height; i++ {
		for j := 0; j < f.width; j++ {
			t := f.data[i][j]
			writeFloat(t.A)
			writeFloat(t.B)
			writeFloat(t.C)
			writeFloat(t.D)
		}
	}
	return h.Sum64()
}
