package gf

// irreducible[m] holds the terms of degree < m of the reduction polynomial
// for GF(2^m): the low-weight irreducible trinomial or pentanomial
// x^m + … + 1 of each degree. GF(2^8) uses x⁸+x⁴+x³+x+1 (0x1B).
var irreducible = [64]uint64{
	1:  0x1,
	2:  0x3,
	3:  0x3,
	4:  0x3,
	5:  0x5,
	6:  0x3,
	7:  0x3,
	8:  0x1B,
	9:  0x3,
	10: 0x9,
	11: 0x5,
	12: 0x9,
	13: 0x1B,
	14: 0x21,
	15: 0x3,
	16: 0x2B,
	17: 0x9,
	18: 0x9,
	19: 0x27,
	20: 0x9,
	21: 0x5,
	22: 0x3,
	23: 0x21,
	24: 0x1B,
	25: 0x9,
	26: 0x1B,
	27: 0x27,
	28: 0x3,
	29: 0x5,
	30: 0x3,
	31: 0x9,
	32: 0x8D,
	33: 0x401,
	34: 0x81,
	35: 0x5,
	36: 0x201,
	37: 0x53,
	38: 0x63,
	39: 0x11,
	40: 0x39,
	41: 0x9,
	42: 0x81,
	43: 0x59,
	44: 0x21,
	45: 0x1B,
	46: 0x3,
	47: 0x21,
	48: 0x2D,
	49: 0x201,
	50: 0x1D,
	51: 0x4B,
	52: 0x9,
	53: 0x47,
	54: 0x201,
	55: 0x81,
	56: 0x95,
	57: 0x11,
	58: 0x80001,
	59: 0x95,
	60: 0x3,
	61: 0x27,
	62: 0x20000001,
	63: 0x3,
}
