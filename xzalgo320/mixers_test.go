package xzalgo320

import "testing"

// Scalar mixer vectors pinned from the reference implementation.

func TestGammaMix(t *testing.T) {
	got := gammaMix(0x0123456789ABCDEF, 0xFEDCBA9876543210, 0x0F1E2D3C4B5A6978, 42)
	if got != 0x06481763d71eeb99 {
		t.Errorf("gammaMix: %016x", got)
	}
	if gammaMix(0, 0, 0, 0) != 0 {
		t.Error("gammaMix of zeros must be zero")
	}
}

func TestSigmaTransform(t *testing.T) {
	const x = 0x0123456789ABCDEF
	want := []uint64{
		0xb7c57a100c7ec1ab,
		0x7703112333475567,
		0x6f92c77c6c4f1aa1,
		0x70a3460dbbd4317a,
	}
	for v, w := range want {
		if got := sigmaTransform(x, v); got != w {
			t.Errorf("sigma variant %d: %016x != %016x", v, got, w)
		}
	}
	if sigmaTransform(x, 9) != x {
		t.Error("invalid variant must pass through")
	}
}

func TestExtraMix(t *testing.T) {
	if got := extraMix(0x0123456789ABCDEF); got != 0xac9342917c03090e {
		t.Errorf("extraMix: %016x", got)
	}
	if got := extraMix(1); got != 0xd31933196aa41926 {
		t.Errorf("extraMix(1): %016x", got)
	}
}

func TestBoxProcesses(t *testing.T) {
	const x = 0x0123456789ABCDEF
	const round = 7

	single := []struct {
		name string
		fn   func(uint64, uint64) uint64
		want uint64
	}{
		{"process2", boxProcess2, 0xb49811e781e42153},
		{"process3", boxProcess3, 0x6291b0d5f56219e9},
		{"process4", boxProcess4, 0x6cbdf4ccf4278283},
		{"process5", boxProcess5, 0x724c5f86bd404533},
		{"process6", boxProcess6, 0xa651874e1da81423},
		{"process7", boxProcess7, 0x455bc166ddf8434f},
		{"process8", boxProcess8, 0xeb6a0a44d03dfaa5},
		{"process9", boxProcess9, 0x038446918acdec14},
	}
	for _, tc := range single {
		if got := tc.fn(x, round); got != tc.want {
			t.Errorf("%s: %016x != %016x", tc.name, got, tc.want)
		}
	}

	if got := boxProcess1(x, 0xA5A5A5A5A5A5A5A5, round); got != 0x4a53593d22e66e18 {
		t.Errorf("process1: %016x", got)
	}

	d := make([]uint64, 9)
	for i := range d {
		d[i] = uint64(i+1) * 0x1111111111111111
	}
	if got := boxProcess10(d, round); got != 0xd0a0c62100757953 {
		t.Errorf("process10: %016x", got)
	}
}

func TestGenerateSalt(t *testing.T) {
	got := generateSalt([5]uint64{1, 2, 3, 4, 5})
	want := [5]uint64{
		0x2ea4fe4d1eef0ad4,
		0x3a2150be64dbef94,
		0x5fc8658f249c4346,
		0x5c792545cf206084,
		0x12f3dab7d230a01c,
	}
	if got != want {
		t.Errorf("salt: %x", got)
	}

	got = generateSalt([5]uint64{})
	want = [5]uint64{
		0x51ef8c6154c4d4dc,
		0x7a4a4eec38bfe536,
		0x02c29df88cd83b1a,
		0xbd9760b06d73bf28,
		0x1244b69a44359326,
	}
	if got != want {
		t.Errorf("salt of zero state: %x", got)
	}
}
