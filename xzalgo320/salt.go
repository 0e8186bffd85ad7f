package xzalgo320

// generateSalt derives five salt words from the current state. A 32-word
// schedule seeded from fixed constants absorbs the state, then runs seven
// rounds of rotation feedback with a counter that accumulates across
// rounds. The partner index masks to 3 bits, so only the first eight
// schedule words are ever read as partners; this asymmetry is part of the
// algorithm. The schedule is updated in place and partner reads within a
// round observe already-updated entries.
func generateSalt(h [5]uint64) [5]uint64 {
	s := saltSchedule
	for i := 0; i < 5; i++ {
		s[i] ^= h[i]
	}

	var counter uint64
	for round := 0; round < 7; round++ {
		for j := 0; j < 32; j++ {
			s[j] ^= rotl64(s[j], uint(j*7+round*3)) ^ rotr64(s[(j+3)&7], uint(j*5+round*2))
			s[j] += counter
		}
		counter += 0x7C5F8E4D3B2A6917
	}

	var salt [5]uint64
	for i := 0; i < 5; i++ {
		v := s[i] ^ s[(i+3)&7]
		v ^= v >> 31
		v *= 0x3A8F7E6D5C4B2918
		v ^= v >> 29
		v *= 0x276D9C5F8E3B41A2
		salt[i] = v
	}
	return salt
}
