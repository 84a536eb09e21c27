// Package cpu implements the instruction execution core of the Sharp
// SM83 (LR35902), the processor of the Game Boy.
//
// The core fetches, decodes and executes one instruction per call to
// Step, and reports the number of machine cycles it consumed. Every
// other part of the machine (interrupt controller, timers, video and
// audio) lives behind the mmu.Bus it was constructed with.
package cpu

import (
	"github.com/thelolagemann/tomboy/internal/mmu"
	"github.com/thelolagemann/tomboy/internal/types"
	"github.com/thelolagemann/tomboy/pkg/log"
)

// CPU represents the Game Boy CPU. It is not safe for concurrent use.
type CPU struct {
	// Registers contains AF, BC, DE, HL, SP and PC.
	types.Registers

	bus mmu.Bus
	log log.Logger

	halted bool
	ime    bool
}

// Opt configures a CPU.
type Opt func(c *CPU)

// WithLogger sets the logger invalid opcodes are reported to.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithModel starts the CPU in the state the model's boot ROM hands
// over to the cartridge in.
func WithModel(m types.Model) Opt {
	return func(c *CPU) {
		c.Registers = m.Registers()
	}
}

// WithRegisters starts the CPU with the given register file.
func WithRegisters(r types.Registers) Opt {
	return func(c *CPU) {
		c.Registers = r
		c.AF.SetLow(c.AF.Low() & 0xF0)
	}
}

// NewCPU creates a new CPU reading and writing through bus. Without
// options every register is zero and interrupts are disabled.
func NewCPU(bus mmu.Bus, opts ...Opt) *CPU {
	c := &CPU{
		bus: bus,
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Step executes a single instruction and returns the number of
// machine cycles it took. While halted no instruction executes and 0
// is returned.
//
// When the program counter points at an invalid opcode, nothing is
// modified, 0 cycles are returned along with an *InvalidOpcodeError.
// The caller decides whether to continue.
func (c *CPU) Step() (uint8, error) {
	if c.halted {
		return 0, nil
	}

	instr, err := c.decode()
	if err != nil {
		c.log.Errorf("%v", err)
		return 0, err
	}

	pc, cycles := instr.fn(c)
	c.PC.SetUint16(pc)
	return cycles, nil
}

// Halted reports whether a HALT or STOP instruction has suspended
// execution.
func (c *CPU) Halted() bool {
	return c.halted
}

// SetHalted sets the halted state. The interrupt controller clears it
// to resume execution.
func (c *CPU) SetHalted(halted bool) {
	c.halted = halted
}

// IME returns the interrupt master enable flag.
func (c *CPU) IME() bool {
	return c.ime
}

// SetIME sets the interrupt master enable flag, as the interrupt
// controller does when dispatching an interrupt.
func (c *CPU) SetIME(enabled bool) {
	c.ime = enabled
}

// Bus returns the address space the CPU executes against.
func (c *CPU) Bus() mmu.Bus {
	return c.bus
}

// next returns the address following an instruction of the given
// length, paired with cycles, for handlers that fall through.
func (c *CPU) next(length uint16, cycles uint8) (uint16, uint8) {
	return c.PC.Uint16() + length, cycles
}

// readOperand returns the immediate byte following the opcode.
func (c *CPU) readOperand() uint8 {
	return c.bus.Read(c.PC.Uint16() + 1)
}

// readOperand16 returns the little endian immediate word following
// the opcode.
func (c *CPU) readOperand16() uint16 {
	pc := c.PC.Uint16()
	return uint16(c.bus.Read(pc+1)) | uint16(c.bus.Read(pc+2))<<8
}

// a returns the accumulator.
func (c *CPU) a() uint8 {
	return c.AF.High()
}

// setA sets the accumulator.
func (c *CPU) setA(v uint8) {
	c.AF.SetHigh(v)
}

// operand returns the value of an 8-bit operand location, reading
// memory at HL for types.HLIndirect.
func (c *CPU) operand(r types.Reg8) uint8 {
	if r == types.HLIndirect {
		return c.bus.Read(c.HL.Uint16())
	}
	return c.Get(r)
}

// setOperand writes an 8-bit operand location, writing memory at HL
// for types.HLIndirect.
func (c *CPU) setOperand(r types.Reg8, v uint8) {
	if r == types.HLIndirect {
		c.bus.Write(c.HL.Uint16(), v)
		return
	}
	c.Set(r, v)
}

// Interrupt services an interrupt: the current program counter is
// pushed, execution continues at vector with IME cleared, and a halted
// CPU is woken. It returns the 5 machine cycles the dispatch takes.
func (c *CPU) Interrupt(vector uint16) uint8 {
	c.halted = false
	c.ime = false
	c.pushStack(c.PC.Uint16())
	c.PC.SetUint16(vector)
	return 5
}
