package cpu

// fetch reads the opcode at PC without advancing it. A 0xCB prefix
// yields the byte after it and prefixed set.
func (c *CPU) fetch() (opcode uint8, prefixed bool) {
	pc := c.PC.Uint16()
	opcode = c.bus.Read(pc)
	if opcode == prefixCB {
		return c.bus.Read(pc + 1), true
	}
	return opcode, false
}

// decode fetches and decodes the instruction at PC.
func (c *CPU) decode() (Instruction, error) {
	opcode, prefixed := c.fetch()
	instr := Decode(opcode, prefixed)
	if !instr.Valid() {
		return instr, &InvalidOpcodeError{Opcode: opcode, Prefixed: prefixed, PC: c.PC.Uint16()}
	}
	return instr, nil
}

// Decode returns the table entry for opcode. The result is invalid for
// the reserved opcodes of the base table.
func Decode(opcode uint8, prefixed bool) Instruction {
	if prefixed {
		return InstructionSetCB[opcode]
	}
	return InstructionSet[opcode]
}
