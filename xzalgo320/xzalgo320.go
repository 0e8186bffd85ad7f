// Package xzalgo320 implements the 320-bit XzalgoChain hash. The function
// absorbs input in 128-byte blocks through an ARX compression and, on
// finalization, drives a network of five BIG boxes of ten LITTLE boxes
// each, seeded by salts derived from the running state, before folding
// everything back into a 40-byte digest.
//
// The function is keyless and makes no security claim; it exists to be
// exactly reproducible. Note that the padding carries no length encoding:
// the message ends with a 0x80 marker and zero fill, and nothing else.
package xzalgo320

import (
	"errors"
	"hash"
)

const (
	// Size of the digest in bytes.
	Size = 40
	// BlockSize of the absorption buffer in bytes.
	BlockSize = 128

	bigBoxCount        = 5
	littleBoxCount     = 10
	littleBoxProcesses = 10

	version = "0.0.1"
)

var errFinalized = errors.New("xzalgo320: use of uninitialized or finalized digest")

// Digest holds the running state of a hash computation. A Digest is
// single-owner: no two operations on the same Digest may run concurrently.
// Distinct Digests are independent.
type Digest struct {
	h         [5]uint64
	littleBox [littleBoxCount][littleBoxProcesses]uint64
	bigBox    [bigBoxCount][5]uint64

	buf    [BlockSize]byte
	bufLen int

	// totalBits counts absorbed bits. It is maintained for completeness
	// but the padding does not consume it.
	totalBits uint64

	engine Engine
	live   bool
}

var _ hash.Hash = (*Digest)(nil)

// New returns an initialized Digest using the process-default engine.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// NewWithEngine returns an initialized Digest pinned to a specific
// LITTLE-box engine. Every engine produces the same digests; the tag only
// selects the implementation.
func NewWithEngine(e Engine) *Digest {
	d := New()
	d.engine = e
	return d
}

// Reset returns the Digest to its initial state, as if freshly created.
func (d *Digest) Reset() {
	*d = Digest{}

	d.h[0] = 0xBB67AE854A7D9E31
	d.h[1] = 0x5BE0CD19B7F3A69C
	d.h[2] = 0x6A09E667F2B5C8D3
	d.h[3] = 0x3C6EF372D8B4F1A6
	d.h[4] = 0x510E527F4D8C3A92

	d.h[0] ^= 0x9E3779B97F4A7C15
	d.h[1] ^= 0xBF58476D1CE4E5B9
	d.h[2] ^= 0x94D049BB133111EB

	// The cross-lane XOR reads lanes already rewritten by earlier
	// iterations; the order is part of the definition.
	for i := 0; i < 5; i++ {
		d.h[i] ^= roundConstants[i*10]
		d.h[i] = rotl64(d.h[i], uint(17+i*7))
		d.h[i] *= 0x9E3779B97F4A7C15
		d.h[i] ^= d.h[(i+2)%5]
	}

	d.engine = defaultEngine()
	d.live = true
}

// Size returns the digest length in bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns the absorption block size in bytes.
func (d *Digest) BlockSize() int { return BlockSize }

// Write absorbs p into the running hash. It only fails on a Digest that
// was never initialized or has been finalized.
func (d *Digest) Write(p []byte) (int, error) {
	if !d.live {
		return 0, errFinalized
	}

	n := len(p)
	d.totalBits += uint64(n) * 8

	// Top up a partially filled buffer first.
	if d.bufLen > 0 {
		c := copy(d.buf[d.bufLen:], p)
		d.bufLen += c
		p = p[c:]
		if d.bufLen == BlockSize {
			d.compressBuffer()
			d.bufLen = 0
		}
	}

	// Whole blocks straight from the input.
	for len(p) >= BlockSize {
		var block [16]uint64
		for i := range block {
			block[i] = u64LE(p[i*8:])
		}
		processBlock(&d.h, &block)
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		d.bufLen = copy(d.buf[:], p)
	}
	return n, nil
}

func (d *Digest) compressBuffer() {
	var block [16]uint64
	for i := range block {
		block[i] = u64LE(d.buf[i*8:])
	}
	processBlock(&d.h, &block)
}

// Sum appends the current digest to b and returns the resulting slice. It
// does not change the underlying state: the finalization runs on a copy,
// so the caller can keep writing. On a dead Digest, b is returned
// unchanged.
func (d *Digest) Sum(b []byte) []byte {
	if !d.live {
		return b
	}

	dCopy := *d

	var out []byte
	if n := len(b) + Size; cap(b) >= n {
		out = b[:n]
	} else {
		out = make([]byte, n)
		copy(out, b)
	}

	dCopy.finalize(out[len(b):])
	dCopy = Digest{} // scrub the working copy

	return out
}

// Finalize consumes the Digest: it pads, runs the permutation network and
// output mixing, zeroes the entire context, and returns the 40-byte
// digest. The Digest must be Reset before further use.
func (d *Digest) Finalize() ([Size]byte, error) {
	var out [Size]byte
	if !d.live {
		return out, errFinalized
	}
	d.finalize(out[:])
	*d = Digest{}
	return out, nil
}

// finalize runs the closing phases in their defined order: padding and the
// final compression; the five BIG boxes (the state is unchanged between
// them, so they all derive the same salt); the state scramble; the BIG-box
// fold; the extra-mix rounds; the carousel; and the two output word mixes.
// The output mixes operate on the serialized little-endian words, which is
// the same as mixing the state words directly since serialization is
// little-endian both ways.
func (d *Digest) finalize(out []byte) {
	d.buf[d.bufLen] = 0x80
	d.bufLen++
	for i := d.bufLen; i < BlockSize; i++ {
		d.buf[i] = 0
	}
	d.compressBuffer()

	for bb := 0; bb < bigBoxCount; bb++ {
		d.bigBoxExecute(bb, uint64(bb)*2000)
	}

	rotParams := [5]uint{31, 27, 33, 23, 29}
	for i := 0; i < 5; i++ {
		x := d.h[i]
		x ^= rotr64(x, rotParams[i])
		x *= 0x510E9BB7927522F5
		x += 0x243F6A8885A308D3
		x ^= rotr64(x, rotParams[(i+1)%5])
		x *= 0xA0761D647ABD642F
		x ^= x >> 23
		x ^= x >> 38
		d.h[i] = x
	}

	var finalMix [5]uint64
	for i := 0; i < 5; i++ {
		acc := d.h[i]
		for bb := 0; bb < bigBoxCount; bb++ {
			acc ^= d.bigBox[bb][i]
			acc = rotr64(acc, 19) ^ rotl64(acc, 37)
			acc += d.bigBox[bb][(i+2)%5]
			acc *= 0x9E3779B97F4A7C15
		}
		acc ^= acc >> 29
		acc *= 0xBF58476D1CE4E5B9
		acc ^= acc >> 27
		acc *= 0x94D049BB133111EB
		acc ^= acc >> 31
		finalMix[i] = acc
	}
	d.h = finalMix

	for round := 0; round < 3; round++ {
		for i := 0; i < 5; i++ {
			d.h[i] = extraMix(d.h[i])
			d.h[i] ^= d.bigBox[round%bigBoxCount][i]
			d.h[i] = rotl64(d.h[i], uint(17+round*5))
		}
	}

	for round := 0; round < 5; round++ {
		var mix uint64
		for i := 0; i < 5; i++ {
			mix ^= d.h[i]
			mix = rotl64(mix, 17) ^ d.h[(i+2)%5]
		}
		for i := 0; i < 5; i++ {
			d.h[i] ^= rotl64(mix, uint(i*13))
			d.h[i] *= 0x9E3779B97F4A7C15
			d.h[i] ^= d.h[(i+1)%5] >> uint(i*7+3)
			d.h[i] = rotr64(d.h[i], uint(23+i*5))
		}
	}

	w := d.h
	for round := 0; round < 3; round++ {
		var acc uint64
		for i := 0; i < 5; i++ {
			acc ^= w[i]
			w[i] = rotr64(w[i], 19) ^ rotl64(acc, 37)
			w[i] *= 0xBF58476D1CE4E5B9
			w[i] ^= w[(i+2)%5] >> 27
		}
	}
	for i := 0; i < 5; i++ {
		w[i] = extraMix(w[i])
		w[i] ^= w[(i+2)%5]
	}

	for i := 0; i < 5; i++ {
		putU64LE(out[i*8:], w[i])
	}
}

// Hash computes the digest of data in one shot. It is equivalent to
// New, Write, Finalize.
func Hash(data []byte) [Size]byte {
	d := New()
	d.Write(data)
	out, _ := d.Finalize()
	return out
}

// Version returns the implementation version string.
func Version() string { return version }
