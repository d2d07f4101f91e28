package sampling

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Source is a deterministic stream of SHAKE-128(seed||nonce) output,
// read in 32-bit little-endian words.
type Source struct {
	h   sha3.ShakeHash
	buf [168]byte // SHAKE128 rate
	pos int
	end int
}

// NewSource creates a stream for seed||nonce.
func NewSource(seed []byte, nonce uint16) *Source {
	s := &Source{h: sha3.NewShake128()}
	s.Reset(seed, nonce)
	return s
}

// Reset restarts the stream for a new seed||nonce.
func (s *Source) Reset(seed []byte, nonce uint16) {
	s.h.Reset()
	s.h.Write(seed)
	s.h.Write([]byte{byte(nonce & 0xFF), byte(nonce >> 8)})
	s.pos = 0
	s.end = 0
}

// Uint32 returns the next four bytes of output.
func (s *Source) Uint32() uint32 {
	if s.pos+4 > s.end {
		leftover := s.end - s.pos
		if leftover > 0 {
			copy(s.buf[:leftover], s.buf[s.pos:s.end])
		}
		n, _ := s.h.Read(s.buf[leftover:])
		s.pos = 0
		s.end = leftover + n
	}
	v := binary.LittleEndian.Uint32(s.buf[s.pos:])
	s.pos += 4
	return v
}

// Intn returns a uniform integer in [-bound, bound] by rejection sampling.
func (s *Source) Intn(bound int32) int32 {
	if bound < 0 {
		panic("sampling: negative bound")
	}
	span := uint64(bound)*2 + 1
	limit := (uint64(1) << 32) / span * span
	for {
		v := uint64(s.Uint32())
		if v < limit {
			return int32(int64(v%span) - int64(bound))
		}
	}
}
