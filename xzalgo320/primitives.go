package xzalgo320

import (
	"encoding/binary"
	"math/bits"
)

// Rotation counts are reduced mod 64, matching the behavior of the
// constant schedules that produce counts well above word size.

func rotl64(x uint64, n uint) uint64 {
	return bits.RotateLeft64(x, int(n&63))
}

func rotr64(x uint64, n uint) uint64 {
	return bits.RotateLeft64(x, -int(n&63))
}

// All byte/word conversion in the algorithm is little-endian.

func u64LE(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

func putU64LE(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}

// rc indexes the round-constant table with circular addressing.
func rc(i uint64) uint64 {
	return roundConstants[i&(roundConstantsSize-1)]
}
