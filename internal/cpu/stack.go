package cpu

import (
	"fmt"

	"github.com/thelolagemann/tomboy/internal/types"
)

// pushStack pushes a 16 bit value onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	c.SP.Dec()
	c.bus.Write(c.SP.Uint16(), uint8(value>>8))
	c.SP.Dec()
	c.bus.Write(c.SP.Uint16(), uint8(value))
}

// popStack pops a 16 bit value off the stack, low byte first.
func (c *CPU) popStack() uint16 {
	lower := uint16(c.bus.Read(c.SP.Uint16()))
	c.SP.Inc()
	upper := uint16(c.bus.Read(c.SP.Uint16()))
	c.SP.Inc()
	return upper<<8 | lower
}

func init() {
	for i, p := range []types.Pair{types.BC, types.DE, types.HL, types.AF} {
		p := p
		DefineInstruction(0xC5|uint8(i)<<4, fmt.Sprintf("PUSH %s", p), 1, func(c *CPU) (uint16, uint8) {
			c.pushStack(c.Pair(p).Uint16())
			return c.next(1, 4)
		})
		DefineInstruction(0xC1|uint8(i)<<4, fmt.Sprintf("POP %s", p), 1, func(c *CPU) (uint16, uint8) {
			v := c.popStack()
			if p == types.AF {
				// the low nibble of F does not exist
				v &= 0xFFF0
			}
			c.Pair(p).SetUint16(v)
			return c.next(1, 3)
		})
	}
}
