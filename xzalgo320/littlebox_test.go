package xzalgo320

import "testing"

// Bundle vectors pinned from the reference scalar engine.

func TestLittleBoxSingleBundle(t *testing.T) {
	in := make([]uint64, 10)
	for i := range in {
		in[i] = uint64(i+1) * 0x0101010101010101
	}
	littleBoxBatch(in, 0xDEADBEEFCAFEBABE, 30, 1)

	want := []uint64{
		0x0000000000000000, 0x0000000000000000,
		0x0303030303030303, 0x0404040404040404,
		0x0000000000000000, 0x0000000000000000,
		0x0707070707070707, 0x0808080808080808,
		0x0000000000000000, 0x0000000000000000,
	}
	for i := range want {
		if in[i] != want[i] {
			t.Errorf("word %d: %016x != %016x", i, in[i], want[i])
		}
	}
}

func TestLittleBoxPartialGroup(t *testing.T) {
	// Two bundles: the tail of the group is absent and the cross-bundle
	// mix must not run.
	in := make([]uint64, 20)
	for i := range in {
		in[i] = 0xABCDEF0123456789 ^ (uint64(i) << 56)
	}
	littleBoxBatch(in, 0x0F1E2D3C4B5A6978, 110, 2)

	want := []uint64{
		0x0000000000000000, 0x0000000000000000,
		0xa9cdef0123456789, 0xa8cdef0123456789,
		0x0000000000000000, 0x0000000000000000,
		0xadcdef0123456789, 0xaccdef0123456789,
		0x0000000000000000, 0x0000000000000000,
		0x0000000000000000, 0x0000000000000000,
		0xa7cdef0123456789, 0xa6cdef0123456789,
		0x0000000000000000, 0x0000000000000000,
		0xbbcdef0123456789, 0xbacdef0123456789,
		0x0000000000000000, 0x0000000000000000,
	}
	for i := range want {
		if in[i] != want[i] {
			t.Errorf("word %d: %016x != %016x", i, in[i], want[i])
		}
	}
}

func TestLittleBoxFullGroup(t *testing.T) {
	in := make([]uint64, 40)
	for i := range in {
		in[i] = 0x0123456789ABCDEF + uint64(i)*0x1111111111111111
	}
	littleBoxBatch(in, 0xDEADBEEFCAFEBABE, 30, 4)

	want := []uint64{
		0x0000000000000000, 0x0000000000000000,
		0x23456789abcdf011, 0x3456789abcdf0122,
		0x0000000000000000, 0x0000000000000000,
		0x6789abcdf0123455, 0x789abcdf01234566,
		0x0000000000000000, 0x0000000000000000,
		0x0000000000000000, 0x0000000000000000,
		0xcdf0123456789abb, 0xdf0123456789abcc,
		0x0000000000000000, 0x0000000000000000,
		0x123456789abcdeff, 0x23456789abcdf010,
		0x0000000000000000, 0x0000000000000000,
		0x0000000000000000, 0x0000000000000000,
		0x789abcdf01234565, 0x89abcdf012345676,
		0x0000000000000000, 0x0000000000000000,
		0xbcdf0123456789a9, 0xcdf0123456789aba,
		0x0000000000000000, 0x0000000000000000,
		0x0000000000000000, 0x0000000000000000,
		0x23456789abcdf00f, 0x3456789abcdf0120,
		0x0000000000000000, 0x0000000000000000,
		0x6789abcdf0123453, 0x789abcdf01234564,
		0x0000000000000000, 0x0000000000000000,
	}
	for i := range want {
		if in[i] != want[i] {
			t.Errorf("word %d: %016x != %016x", i, in[i], want[i])
		}
	}
}

func TestPermute(t *testing.T) {
	v := vecSet(0, 1, 2, 3)
	if got := v.permute(0x4E); got != vecSet(2, 3, 0, 1) {
		t.Errorf("permute 0x4E: %v", got.lane)
	}
	if got := v.permute(0xB1); got != vecSet(1, 0, 3, 2) {
		t.Errorf("permute 0xB1: %v", got.lane)
	}
	for k, imm := range []int{0x00, 0x55, 0xAA, 0xFF} {
		if got := v.permute(imm); got != vecSplat(uint64(k)) {
			t.Errorf("permute %#02x: %v", imm, got.lane)
		}
	}
}
