package xzalgo320

// bigBoxExecute runs one BIG box: ten single-bundle LITTLE-box passes over
// inputs formed from the state, the derived salt and the constant table,
// then an aggregation of all bundle words through gammaMix. The state
// itself is not modified here; the box writes only the bundle and box
// arrays.
func (d *Digest) bigBoxExecute(boxIndex int, roundBase uint64) {
	salt := generateSalt(d.h)

	for lb := 0; lb < littleBoxCount; lb++ {
		// The engine never writes words 2, 3, 6 and 7 of the bundle, so
		// the aggregation below reads them with the input values set here.
		var in [littleBoxProcesses]uint64
		for i := 0; i < 5; i++ {
			in[i] = d.h[i] ^ salt[i]
			in[i+5] = d.h[i] ^ rc(uint64(lb*10+i))
		}

		saltVariation := salt[lb%5] ^ rc(uint64(lb*10))
		littleBoxExecute(d.engine, in[:], saltVariation, roundBase+uint64(lb)*10, 1)

		d.littleBox[lb] = in
	}

	for i := 0; i < 5; i++ {
		var acc uint64
		for lb := 0; lb < littleBoxCount; lb++ {
			acc ^= d.littleBox[lb][2*i]
			acc += d.littleBox[lb][2*i+1]
		}
		d.bigBox[boxIndex][i] = gammaMix(acc, salt[i], rc(uint64(boxIndex*100+i)), roundBase+1000)
	}
}
