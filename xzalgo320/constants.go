package xzalgo320

const roundConstantsSize = 128

// roundConstants is the 128-entry constant table used throughout the
// permutation network. The first 64 entries are the SHA-512 round
// constants, followed by the SHA-3 iota constants and a tail of extended
// values fixed by the algorithm definition. Indexing is always circular.
var roundConstants = [roundConstantsSize]uint64{
	0x428A2F98D728AE22, 0x7137449123EF65CD, 0xB5C0FBCFEC4D3B2F, 0xE9B5DBA58189DBBC,
	0x3956C25BF348B538, 0x59F111F1B605D019, 0x923F82A4AF194F9B, 0xAB1C5ED5DA6D8118,
	0xD807AA98A3030242, 0x12835B0145706FBE, 0x243185BE4EE4B28C, 0x550C7DC3D5FFB4E2,
	0x72BE5D74F27B896F, 0x80DEB1FE3B1696B1, 0x9BDC06A725C71235, 0xC19BF174CF692694,
	0xE49B69C19EF14AD2, 0xEFBE4786384F25E3, 0x0FC19DC68B8CD5B5, 0x240CA1CC77AC9C65,
	0x2DE92C6F592B0275, 0x4A7484AA6EA6E483, 0x5CB0A9DCBD41FBD4, 0x76F988DA831153B5,
	0x983E5152EE66DFAB, 0xA831C66D2DB43210, 0xB00327C898FB213F, 0xBF597FC7BEEF0EE4,
	0xC6E00BF33DA88FC2, 0xD5A79147930AA725, 0x06CA6351E003826F, 0x142929670A0E6E70,
	0x27B70A8546D22FFC, 0x2E1B21385C26C926, 0x4D2C6DFC5AC42AED, 0x53380D139D95B3DF,
	0x650A73548BAF63DE, 0x766A0ABB3C77B2A8, 0x81C2C92E47EDAEE6, 0x92722C851482353B,
	0xA2BFE8A14CF10364, 0xA81A664BBC423001, 0xC24B8B70D0F89791, 0xC76C51A30654BE30,
	0xD192E819D6EF5218, 0xD69906245565A910, 0xF40E35855771202A, 0x106AA07032BBD1B8,
	0x19A4C116B8D2D0C8, 0x1E376C085141AB53, 0x2748774CDF8EEB99, 0x34B0BCB5E19B48A8,
	0x391C0CB3C5C95A63, 0x4ED8AA4AE3418ACB, 0x5B9CCA4F7763E373, 0x682E6FF3D6B2B8A3,
	0x748F82EE5DEFB2FC, 0x78A5636F43172F60, 0x84C87814A1F0AB72, 0x8CC702081A6439EC,
	0x90BEFFFA23631E28, 0xA4506CEBDE82BDE9, 0xBEF9A3F7B2C67915, 0xC67178F2E372532B,
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000000008080, 0x8000000080008008, 0x6A09E667F2BDC948, 0x132435465768798A,
	0xC0D1E2F3A4B59687, 0x78695A4B3C2D1E0F, 0xA96F30BC163138AA, 0xCBF29CE484222325,
	0x6C7967656E657261, 0x646F72616E646F6D, 0xCA273ECEEA26619C, 0xF4846468E8DF0C0B,
	0x18695A087A5C0593, 0x23B41638005C0F2D, 0x2D491CBFB1D3A637, 0x324B42C185E58F9E,
	0x3A1010A7B8D67679, 0x3F73C4AF18518865, 0x5A0DEEEFF85E0B80, 0x5E9D7A75E2F1B5CB,
	0x667F9CFB7B3C9D3F, 0x6C78E7A5948A265C, 0x6C6E7E9A7C5D3A1F, 0x7A0D6C2D0B8F5E3A,
	0x7B0C9E5A6D3F1D8C, 0x8A0F5E3C7D1B9A6F, 0x8C2D5E3F7A1B9C6D, 0x9A0B8C7D6E5F4A3B,
	0xE38DEE4DB0FB0E4E, 0xB1C2D3E4F5061728, 0xC1D2E3F405162738, 0xD1E2F30415263748,
	0xE1F2031425364758, 0xF102132435465768, 0xE58001F9E5CFFA7E, 0xD1AA379F9C4B9809,
	0x993A2F8B88C1B63F, 0x579A01155E6D4196, 0xBB0FC70B1266B3F1, 0xDE509C2F03B01495,
	0x8859485125BC297C, 0x102B36560F6E68E6, 0xE2D0C0A896B87C6E, 0x4F5E6A7B8C9DAFB1,
}

// saltSchedule seeds the salt derivation. The first 16 entries are the
// SHA-512 and SHA-384 initialization vectors, the next 8 come from the
// hexadecimal expansion of pi, and the tail is fixed by the algorithm
// definition.
var saltSchedule = [32]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
	0x243f6a8885a308d3, 0x13198a2e03707344, 0xa4093822299f31d0, 0x082efa98ec4e6c89,
	0x452821e638d01377, 0xbe5466cf34e90c6c, 0xc0ac29b7c97c50dd, 0x3f84d5b5b5470917,
	0x8367E295D4C1B8A3, 0xF4E6D2C5B1A79860, 0x2B5D7C9F8E4A3617, 0xC8D4E2F6B9A31750,
	0x7E3F9A2C5D8B6419, 0xA6D2F8C4E1B79530, 0x4B7F9E2D5C8A6318, 0xD5F2E7C4B9A16830,
}
