package xzalgo320

// gammaMix is the core non-linear transformation. It combines three words
// and a round value through XOR, rotation, a majority-style AND layer, and
// two constant multiplications.
func gammaMix(x, y, z, round uint64) uint64 {
	r := x ^ y ^ z
	r += rotl64(x, 13) ^ rotr64(y, 7) ^ rotl64(z, 29)
	r ^= (x & y) | (z &^ x)
	r += round
	r = rotr64(r, 17) ^ rotl64(r, 23)
	r ^= (r << 19) | (r >> 45)
	r += (x * 0x8000000080008009) ^ (y * 0x8000000000008081)
	return r
}

// sigmaTransform applies one of four rotation/shift diffusion patterns in
// the style of the SHA-2 sigma functions.
func sigmaTransform(x uint64, v int) uint64 {
	switch v {
	case 0:
		return rotr64(x, 28) ^ rotr64(x, 34) ^ rotr64(x, 39)
	case 1:
		return rotr64(x, 14) ^ rotr64(x, 18) ^ rotr64(x, 41)
	case 2:
		return rotr64(x, 1) ^ rotr64(x, 8) ^ (x >> 7)
	case 3:
		return rotr64(x, 19) ^ rotr64(x, 61) ^ (x >> 6)
	default:
		return x
	}
}

// extraMix is a splitmix-style finisher used by the output stages.
func extraMix(x uint64) uint64 {
	x ^= x >> 27
	x *= 0x9E3779B97F4A7C15
	x ^= x >> 31
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 29
	x += rotl64(x, 41)
	return x
}

// The box process set below is part of the algorithm's defined surface but
// is not invoked by the digest pipeline itself.

func boxProcess1(in, salt, round uint64) uint64 {
	return gammaMix(in, salt, round, rc(round))
}

func boxProcess2(x, round uint64) uint64 {
	x ^= rotr64(x, 19) ^ rotl64(x, 42)
	x += sigmaTransform(x, 0)
	return x ^ rc(round+1)
}

func boxProcess3(x, round uint64) uint64 {
	x = rotl64(x, 27) ^ rotr64(x, 31)
	x ^= sigmaTransform(x, 1)
	return x + rc(round+2)
}

func boxProcess4(x, round uint64) uint64 {
	x ^= (x << 23) | (x >> 41)
	x += sigmaTransform(x, 2)
	return x ^ rc(round+3)
}

func boxProcess5(x, round uint64) uint64 {
	// The multiplier is 2^64 - 1, so this is negation mod 2^64.
	x *= 0xFFFFFFFFFFFFFFFF
	x ^= rotr64(x, 33)
	x += sigmaTransform(x, 3)
	return x ^ rc(round+4)
}

func boxProcess6(x, round uint64) uint64 {
	x ^= rotl64(x, 37) ^ rotr64(x, 29)
	x += sigmaTransform(x, 0)
	return x ^ rc(round+5)
}

func boxProcess7(x, round uint64) uint64 {
	x ^= (x >> 17) ^ (x << 47)
	x += sigmaTransform(x, 1)
	return x ^ rc(round+6)
}

func boxProcess8(x, round uint64) uint64 {
	x ^= rotr64(x, 11) ^ rotl64(x, 53)
	x += sigmaTransform(x, 2)
	return x ^ rc(round+7)
}

func boxProcess9(x, round uint64) uint64 {
	return gammaMix(x, rotr64(x, 31), rotl64(x, 29), rc(round+8))
}

// boxProcess10 folds nine words into one with position-dependent
// rotations before a final gamma pass.
func boxProcess10(d []uint64, round uint64) uint64 {
	var r uint64
	for i := 0; i < 9; i++ {
		v := d[i]
		r ^= v
		r += rotl64(v, uint(i*7))
		r ^= rotr64(v, uint(i*13))
	}
	r = gammaMix(r, rotr64(r, 23), rotl64(r, 41), rc(round+9))
	return r ^ sigmaTransform(r, 3)
}
