package cpu

import "github.com/thelolagemann/tomboy/internal/types"

// testBit tests bit b of n.
//
//	BIT b, r
//	b = 0 - 7, r = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(n uint8, b uint8) {
	c.setFlags(!types.TestBit(n, b), false, true, c.isFlagSet(FlagCarry))
}
