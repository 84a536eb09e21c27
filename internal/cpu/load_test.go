package cpu

import (
	"testing"

	"github.com/thelolagemann/tomboy/internal/types"
)

func testLoadRegisterToRegister(dst, src types.Reg8) func(*testing.T, Instruction) {
	return func(t *testing.T, instr Instruction) {
		cpu.HL.SetUint16(0xC123)
		cpu.setOperand(src, 0x42)
		step(t)
		if got := cpu.operand(dst); got != 0x42 {
			t.Errorf("expected 0x42 in %s, got 0x%02X", dst, got)
		}
	}
}

func TestInstruction_LoadRegisterToRegister(t *testing.T) {
	for dst := types.B; dst <= types.A; dst++ {
		for src := types.B; src <= types.A; src++ {
			if dst == types.HLIndirect && src == types.HLIndirect {
				continue
			}
			opcode := 0x40 | uint8(dst)<<3 | uint8(src)
			testInstruction(t, "LD "+registerNames[uint8(dst)]+", "+registerNames[uint8(src)], opcode, testLoadRegisterToRegister(dst, src))
		}
	}
}

func TestInstruction_LoadImmediate(t *testing.T) {
	for r := types.B; r <= types.A; r++ {
		r := r
		testInstruction(t, "LD "+r.String()+", d8", 0x06|uint8(r)<<3, func(t *testing.T, instr Instruction) {
			cpu.HL.SetUint16(0xC000)
			bus.Write(testPC+1, 0x99)
			step(t)
			if got := cpu.operand(r); got != 0x99 {
				t.Errorf("expected 0x99 in %s, got 0x%02X", r, got)
			}
		})
	}

	// 0x01 - LD BC, d16
	testInstruction(t, "LD BC, d16", 0x01, func(t *testing.T, instr Instruction) {
		bus.Write(testPC+1, 0x34)
		bus.Write(testPC+2, 0x12)
		if cycles := step(t); cycles != 3 {
			t.Errorf("expected 3 cycles, got %d", cycles)
		}
		if cpu.BC.Uint16() != 0x1234 {
			t.Errorf("expected 0x1234 in BC, got 0x%04X", cpu.BC.Uint16())
		}
		if cpu.PC.Uint16() != testPC+3 {
			t.Errorf("expected PC 0x%04X, got 0x%04X", testPC+3, cpu.PC.Uint16())
		}
	})
	// 0x31 - LD SP, d16
	testInstruction(t, "LD SP, d16", 0x31, func(t *testing.T, instr Instruction) {
		bus.Write(testPC+1, 0xFE)
		bus.Write(testPC+2, 0xFF)
		step(t)
		if cpu.SP.Uint16() != 0xFFFE {
			t.Errorf("expected 0xFFFE in SP, got 0x%04X", cpu.SP.Uint16())
		}
	})
}

func TestInstruction_LoadIndirect(t *testing.T) {
	// 0x02 - LD (BC), A
	testInstruction(t, "LD (BC), A", 0x02, func(t *testing.T, instr Instruction) {
		cpu.setA(0x42)
		cpu.BC.SetUint16(0xC234)
		step(t)
		if bus.Read(0xC234) != 0x42 {
			t.Errorf("expected 0x42 at 0xC234, got 0x%02X", bus.Read(0xC234))
		}
	})
	// 0x1A - LD A, (DE)
	testInstruction(t, "LD A, (DE)", 0x1A, func(t *testing.T, instr Instruction) {
		cpu.DE.SetUint16(0xC000)
		bus.Write(0xC000, 0x24)
		step(t)
		if cpu.a() != 0x24 {
			t.Errorf("expected 0x24 in A, got 0x%02X", cpu.a())
		}
	})
	// 0x22 - LD (HL+), A
	testInstruction(t, "LD (HL+), A", 0x22, func(t *testing.T, instr Instruction) {
		cpu.setA(0x11)
		cpu.HL.SetUint16(0xFFFF)
		step(t)
		if bus.Read(0xFFFF) != 0x11 {
			t.Errorf("expected 0x11 at 0xFFFF, got 0x%02X", bus.Read(0xFFFF))
		}
		if cpu.HL.Uint16() != 0x0000 {
			t.Errorf("expected HL to wrap to 0x0000, got 0x%04X", cpu.HL.Uint16())
		}
	})
	// 0x3A - LD A, (HL-)
	testInstruction(t, "LD A, (HL-)", 0x3A, func(t *testing.T, instr Instruction) {
		cpu.HL.SetUint16(0xC001)
		bus.Write(0xC001, 0x77)
		step(t)
		if cpu.a() != 0x77 || cpu.HL.Uint16() != 0xC000 {
			t.Errorf("expected A=0x77 HL=0xC000, got %s", cpu.Registers)
		}
	})
	// 0xE0 - LDH (a8), A
	testInstruction(t, "LDH (a8), A", 0xE0, func(t *testing.T, instr Instruction) {
		cpu.setA(0x80)
		bus.Write(testPC+1, 0x26)
		step(t)
		if bus.Read(0xFF26) != 0x80 {
			t.Errorf("expected 0x80 at 0xFF26, got 0x%02X", bus.Read(0xFF26))
		}
	})
	// 0xF2 - LD A, (C)
	testInstruction(t, "LD A, (C)", 0xF2, func(t *testing.T, instr Instruction) {
		cpu.BC.SetLow(0x44)
		bus.WriteIO(0x44, 0x90)
		step(t)
		if cpu.a() != 0x90 {
			t.Errorf("expected 0x90 in A, got 0x%02X", cpu.a())
		}
	})
	// 0xFA - LD A, (a16)
	testInstruction(t, "LD A, (a16)", 0xFA, func(t *testing.T, instr Instruction) {
		bus.Write(testPC+1, 0x00)
		bus.Write(testPC+2, 0xD0)
		bus.Write(0xD000, 0x5A)
		step(t)
		if cpu.a() != 0x5A {
			t.Errorf("expected 0x5A in A, got 0x%02X", cpu.a())
		}
	})
	// 0x36 - LD (HL), d8
	testInstruction(t, "LD (HL), d8", 0x36, func(t *testing.T, instr Instruction) {
		cpu.HL.SetUint16(0xC100)
		bus.Write(testPC+1, 0xAB)
		if cycles := step(t); cycles != 3 {
			t.Errorf("expected 3 cycles, got %d", cycles)
		}
		if bus.Read(0xC100) != 0xAB {
			t.Errorf("expected 0xAB at 0xC100, got 0x%02X", bus.Read(0xC100))
		}
	})
}

func TestInstruction_LoadStackPointer(t *testing.T) {
	// 0x08 - LD (a16), SP
	testInstruction(t, "LD (a16), SP", 0x08, func(t *testing.T, instr Instruction) {
		cpu.SP.SetUint16(0xBEEF)
		bus.Write(testPC+1, 0x00)
		bus.Write(testPC+2, 0xC0)
		step(t)
		if bus.Read(0xC000) != 0xEF || bus.Read(0xC001) != 0xBE {
			t.Errorf("expected 0xBEEF little endian at 0xC000, got %02X %02X", bus.Read(0xC000), bus.Read(0xC001))
		}
	})
	// 0xF9 - LD SP, HL
	testInstruction(t, "LD SP, HL", 0xF9, func(t *testing.T, instr Instruction) {
		cpu.HL.SetUint16(0xD000)
		step(t)
		if cpu.SP.Uint16() != 0xD000 {
			t.Errorf("expected 0xD000 in SP, got 0x%04X", cpu.SP.Uint16())
		}
	})
	// 0xF8 - LD HL, SP+r8
	testInstruction(t, "LD HL, SP+r8", 0xF8, func(t *testing.T, instr Instruction) {
		cpu.SP.SetUint16(0xFFF8)
		bus.Write(testPC+1, 0x08)
		cpu.setFlag(FlagZero)
		step(t)
		if cpu.HL.Uint16() != 0x0000 {
			t.Errorf("expected 0x0000 in HL, got 0x%04X", cpu.HL.Uint16())
		}
		if cpu.SP.Uint16() != 0xFFF8 {
			t.Errorf("expected SP untouched, got 0x%04X", cpu.SP.Uint16())
		}
		if currentFlags() != (flags{h: true, c: true}) {
			t.Errorf("expected H and C only, got %+v", currentFlags())
		}
	})
	// 0xE8 - ADD SP, r8
	testInstruction(t, "ADD SP, r8", 0xE8, func(t *testing.T, instr Instruction) {
		cpu.SP.SetUint16(0x0100)
		bus.Write(testPC+1, 0xFE) // -2
		step(t)
		if cpu.SP.Uint16() != 0x00FE {
			t.Errorf("expected 0x00FE in SP, got 0x%04X", cpu.SP.Uint16())
		}
		if currentFlags() != (flags{}) {
			t.Errorf("expected no flags, got %+v", currentFlags())
		}
	})
}
