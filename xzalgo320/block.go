package xzalgo320

// processBlock absorbs one 16-word block into the 5-word state. Each lane
// mixes in three block words and both of its neighbors. The neighbor reads
// observe the partially-updated state: lanes below i already hold their new
// values when lane i is computed, and the result depends on that order.
func processBlock(h *[5]uint64, block *[16]uint64) {
	for i := 0; i < 5; i++ {
		a, b, c, d := h[i], block[i], block[i+5], block[i+10]

		a += b ^ 0x6A09E667BB67AE85
		a = rotl64(a, 13)
		a ^= c + 0x3C6EF372A54FF53A
		a = rotl64(a, 29)
		a += d ^ 0x510E527F9B05688C
		a = rotl64(a, 37)

		a ^= h[(i+1)%5]
		a += h[(i+4)%5]
		a = rotl64(a, 17)

		a ^= a >> 32
		a ^= a << 21
		a *= 0x1F83D9AB5BE0CD19
		a ^= a >> 29
		a ^= a << 17

		h[i] = a
	}
}
