package cpu

import (
	"fmt"
	"strings"

	"github.com/thelolagemann/tomboy/internal/mmu"
)

// Disassemble returns the instruction at pc as text, with immediates
// substituted into the mnemonic, along with the instruction length.
// Invalid opcodes render as ILLEGAL_XX with a length of 1.
func Disassemble(bus mmu.Bus, pc uint16) (string, uint16) {
	opcode := bus.Read(pc)
	prefixed := opcode == prefixCB
	if prefixed {
		opcode = bus.Read(pc + 1)
	}

	instr := Decode(opcode, prefixed)
	if !instr.Valid() {
		return fmt.Sprintf("ILLEGAL_%02X", opcode), 1
	}

	name := instr.name
	switch {
	case strings.Contains(name, "d16"), strings.Contains(name, "a16"):
		word := uint16(bus.Read(pc+1)) | uint16(bus.Read(pc+2))<<8
		name = strings.NewReplacer("d16", fmt.Sprintf("$%04X", word), "a16", fmt.Sprintf("$%04X", word)).Replace(name)
	case strings.Contains(name, "a8"):
		name = strings.Replace(name, "a8", fmt.Sprintf("$FF%02X", bus.Read(pc+1)), 1)
	case strings.Contains(name, "d8"):
		name = strings.Replace(name, "d8", fmt.Sprintf("$%02X", bus.Read(pc+1)), 1)
	case strings.HasPrefix(name, "JR"):
		target := pc + 2 + uint16(int8(bus.Read(pc+1)))
		name = strings.Replace(name, "r8", fmt.Sprintf("$%04X", target), 1)
	case strings.Contains(name, "r8"):
		name = strings.Replace(name, "r8", fmt.Sprintf("%d", int8(bus.Read(pc+1))), 1)
		name = strings.Replace(name, "+-", "-", 1)
	}

	return name, instr.length
}
