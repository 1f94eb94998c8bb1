// SPDX-License-Identifier: MIT

package poly

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/blake3"
)

// digestTag domain-separates polynomial digests from other blake3 uses.
const digestTag = "lvpoly/poly/v1"

// Digest returns a blake3-256 fingerprint of p's canonical encoding:
// the tag, the term count, then (degree, IEEE-754 bits of coeff) per term,
// all big-endian, highest degree first.
//
// Equal polynomials (see Equal) have equal digests; options do not
// participate. Complexity: O(n).
func (p *Polynomial) Digest() [32]byte {
	buf := make([]byte, 0, len(digestTag)+8+16*len(p.terms))
	buf = append(buf, digestTag...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(len(p.terms)))
	for _, t := range p.terms {
		buf = binary.BigEndian.AppendUint64(buf, uint64(t.Degree))
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(t.Coeff))
	}

	hasher := blake3.New()
	_, _ = hasher.Write(buf)

	var out [32]byte
	copy(out[:], hasher.Sum(nil))

	return out
}
