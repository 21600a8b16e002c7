package pipeline

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Simple ULID generator that doesn't require external dependencies.
// ULIDs are 26-character Crockford Base32 encoded strings with timestamp prefix.

var (
	ulidMu  sync.Mutex
	lastTS  uint64
	lastSeq uint16
)

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

func generateULID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	ts := uint64(time.Now().UnixMilli())
	if ts == lastTS {
		lastSeq++
	} else {
		lastTS = ts
		lastSeq = 0
	}

	var random [10]byte
	rand.Read(random[:])
	// Embed sequence in the leading random bytes to ensure uniqueness
	// within the same millisecond.
	binary.BigEndian.PutUint16(random[:2], lastSeq)

	var out [26]byte
	// 48-bit timestamp -> 10 characters, most significant first.
	for i := 9; i >= 0; i-- {
		out[i] = crockford[ts&31]
		ts >>= 5
	}
	// 80 bits of randomness -> 16 characters of 5 bits each.
	for i := 0; i < 16; i++ {
		out[10+i] = crockford[bits5(random[:], i*5)]
	}
	return string(out[:])
}

// bits5 reads 5 bits starting at the given bit offset of a big-endian
// byte string.
func bits5(b []byte, offset int) byte {
	byteIdx := offset / 8
	bitIdx := offset % 8
	v := uint16(b[byteIdx]) << 8
	if byteIdx+1 < len(b) {
		v |= uint16(b[byteIdx+1])
	}
	return byte(v>>(11-bitIdx)) & 31
}
