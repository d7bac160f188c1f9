package ledger

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/jaredlewiswechs/newtonfield/bezier"
	"github.com/jaredlewiswechs/newtonfield/law"
)

// Hasher computes a ledger entry's content hash. The default, hashEntry,
// uses xxhash; WithHasher lets a caller substitute a different 64-bit (or
// wider) mixing function without changing anything else about Ledger, as
// spec §4.7/§9 permit.
type Hasher func(cp bezier.ControlPoints, lawVersion uint64, lawNames []string, verdict law.Verdict, sequenceIndex uint64) string

// hashEntry is the default Hasher: xxhash/v2 over the canonical byte
// serialization spec §4.7 and §9 describe (little-endian IEEE-754 for
// doubles, little-endian for integers, UTF-8 for names), rendered as a
// lowercase hex string.
func hashEntry(cp bezier.ControlPoints, lawVersion uint64, lawNames []string, verdict law.Verdict, sequenceIndex uint64) string {
	digest := xxhash.New()

	var buf [8]byte
	writeFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = digest.Write(buf[:])
	}
	writeUint64 := func(n uint64) {
		binary.LittleEndian.PutUint64(buf[:], n)
		_, _ = digest.Write(buf[:])
	}

	for _, point := range [][]float64{cp.P0, cp.P1, cp.P2, cp.P3} {
		for _, coord := range point {
			writeFloat(coord)
		}
	}

	writeUint64(lawVersion)

	for _, name := range lawNames {
		_, _ = digest.Write([]byte(name))
	}

	var tag byte
	if verdict.IsReject() {
		tag = 1
	}
	_, _ = digest.Write([]byte{tag})

	writeUint64(sequenceIndex)

	return hex.EncodeToString(digest.Sum(nil))
}
