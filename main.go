package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/thelolagemann/tomboy/internal/boot"
	"github.com/thelolagemann/tomboy/internal/config"
	"github.com/thelolagemann/tomboy/internal/cpu"
	"github.com/thelolagemann/tomboy/internal/interrupts"
	"github.com/thelolagemann/tomboy/internal/mmu"
	"github.com/thelolagemann/tomboy/internal/trace"
	"github.com/thelolagemann/tomboy/internal/types"
	"github.com/thelolagemann/tomboy/pkg/log"
	"github.com/thelolagemann/tomboy/pkg/utils"
)

// exit statuses
const (
	exitOK = iota
	exitFailed
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger, err := log.NewWithLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	r, err := newRunner(cfg, logger, stdout)
	if err != nil {
		logger.Errorf("%v", err)
		return exitUsage
	}
	defer r.close()

	return r.run()
}

// parseFlags builds the run profile: the file named by -config (or the
// defaults) with every flag given on the command line applied on top.
func parseFlags(args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("tomboy", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := config.Default()
	configFile := fs.String("config", "", "YAML profile to load before applying flags")
	image := fs.String("image", "", "The image to execute (.gb, .bin, or compressed .gz/.zip/.7z/.xz/.zst/.lz4)")
	bootROM := fs.String("boot", "", "The boot rom file to run before the image")
	model := fs.String("model", "", "The model whose post-boot state to start in (dmg0, dmg, mgb, sgb, sgb2, cgb0, cgb, agb)")
	load := fs.String("load", "0x0000", "The address to load the image at")
	pc := fs.String("pc", "", "Override the initial program counter")
	sp := fs.String("sp", "", "Override the initial stack pointer")
	steps := fs.Uint64("steps", def.Steps, "Maximum number of instructions to execute, 0 for no limit")
	until := fs.String("until", "", "Stop once the serial output contains this marker")
	traceFile := fs.String("trace", "", "Write a trace line per instruction to this file, - for stdout")
	ring := fs.Int("ring", def.Ring, "Number of trace lines to keep for dumping on failure")
	digest := fs.Bool("digest", false, "Print a digest of the executed states")
	level := fs.String("log", def.LogLevel, "The log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := def
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return nil, err
		}
	}

	var result *multierror.Error
	fs.Visit(func(f *flag.Flag) {
		var err error
		switch f.Name {
		case "image":
			cfg.Image = *image
		case "boot":
			cfg.Boot = *bootROM
		case "model":
			cfg.Model = *model
		case "load":
			cfg.Load, err = parseAddress("load", *load)
		case "pc":
			cfg.PC, err = parseAddressPtr("pc", *pc)
		case "sp":
			cfg.SP, err = parseAddressPtr("sp", *sp)
		case "steps":
			cfg.Steps = *steps
		case "until":
			cfg.Until = *until
		case "trace":
			cfg.Trace = *traceFile
		case "ring":
			cfg.Ring = *ring
		case "digest":
			cfg.Digest = *digest
		case "log":
			cfg.LogLevel = *level
		}
		if err != nil {
			result = multierror.Append(result, err)
		}
	})
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseAddress(name, s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid -%s %q: %w", name, s, err)
	}
	return uint16(v), nil
}

func parseAddressPtr(name, s string) (*uint16, error) {
	v, err := parseAddress(name, s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

type runner struct {
	cfg *config.Config
	log log.Logger

	mmu *mmu.MMU
	cpu *cpu.CPU
	irq *interrupts.Service

	serial *serialPort
	trace  *trace.Recorder
	out    io.Writer
	closer io.Closer

	// cycles spent dispatching interrupts
	irqCycles uint64
}

// serialPort collects the bytes sent over the serial port, echoes
// them to out and raises the serial interrupt for each completed
// transfer.
type serialPort struct {
	bytes.Buffer
	out io.Writer
	irq *interrupts.Service
}

func (p *serialPort) Write(b []byte) (int, error) {
	p.Buffer.Write(b)
	if p.irq != nil {
		p.irq.Request(interrupts.SerialFlag)
	}
	return p.out.Write(b)
}

func newRunner(cfg *config.Config, logger log.Logger, stdout io.Writer) (*runner, error) {
	r := &runner{cfg: cfg, log: logger, out: stdout, serial: &serialPort{out: stdout}}

	image, err := utils.LoadFile(cfg.Image)
	if err != nil {
		return nil, err
	}

	mmuOpts := []mmu.Opt{
		mmu.WithLogger(logger),
		mmu.WithSerialWriter(r.serial),
	}

	model, err := cfg.ParseModel()
	if err != nil {
		return nil, err
	}
	regs := model.Registers()

	if cfg.Boot != "" {
		b, err := utils.LoadFile(cfg.Boot)
		if err != nil {
			return nil, err
		}
		rom, err := boot.LoadBootROM(b)
		if err != nil {
			return nil, err
		}
		logger.Infof("boot rom: %s (%s)", rom.Name(), rom.Checksum())
		mmuOpts = append(mmuOpts, mmu.WithBootROM(rom))

		// the boot rom starts from a cleared register file
		regs = types.Registers{}
	}
	if cfg.PC != nil {
		regs.PC.SetUint16(*cfg.PC)
	}
	if cfg.SP != nil {
		regs.SP.SetUint16(*cfg.SP)
	}

	r.mmu = mmu.NewMMU(mmuOpts...)
	if err := r.mmu.Load(cfg.Load, image); err != nil {
		return nil, err
	}
	r.cpu = cpu.NewCPU(r.mmu, cpu.WithLogger(logger), cpu.WithRegisters(regs))
	r.irq = interrupts.NewService(r.mmu)
	r.serial.irq = r.irq

	var w io.Writer
	switch cfg.Trace {
	case "":
	case "-":
		w = stdout
	default:
		f, err := os.Create(cfg.Trace)
		if err != nil {
			return nil, err
		}
		w, r.closer = f, f
	}
	r.trace = trace.NewRecorder(w, cfg.Ring)

	logger.Infof("loaded %s (%d bytes) at 0x%04X, model %s", cfg.Image, len(image), cfg.Load, model)
	return r, nil
}

func (r *runner) close() {
	if r.closer != nil {
		if err := r.closer.Close(); err != nil {
			r.log.Errorf("closing trace: %v", err)
		}
	}
}

// run steps the CPU until the step limit, a halt, an invalid opcode or
// the marker showing up in the serial output.
func (r *runner) run() int {
	status := exitOK
	for r.cfg.Steps == 0 || r.trace.Steps() < r.cfg.Steps {
		if !r.step() {
			status = exitFailed
			break
		}
		r.irqCycles += uint64(r.irq.Service(r.cpu))
		if r.cpu.Halted() {
			// only the program itself raises interrupts, so nothing can
			// wake the CPU any more
			r.log.Infof("halted at 0x%04X (IME=%t)", r.cpu.PC.Uint16(), r.cpu.IME())
			break
		}
		if r.cfg.Until != "" && strings.Contains(r.serial.String(), r.cfg.Until) {
			r.log.Infof("found %q in serial output", r.cfg.Until)
			break
		}
	}

	r.log.Infof("executed %d instructions in %d cycles", r.trace.Steps(), r.trace.Cycles()+r.irqCycles)
	if r.cfg.Digest {
		fmt.Fprintf(r.out, "digest: %016x\n", r.trace.Sum64())
	}

	if status == exitOK && r.cfg.Until != "" && !strings.Contains(r.serial.String(), r.cfg.Until) {
		r.log.Errorf("%q not found in serial output", r.cfg.Until)
		status = exitFailed
	}
	if status != exitOK {
		r.dump()
	}
	return status
}

// step executes and records a single instruction, returning false on
// an invalid opcode.
func (r *runner) step() bool {
	pc := r.cpu.PC.Uint16()
	text, _ := cpu.Disassemble(r.mmu, pc)
	e := trace.Entry{PC: pc, Opcode: r.mmu.Read(pc), Text: text}
	if e.Opcode == 0xCB {
		e.Opcode, e.Prefixed = r.mmu.Read(pc+1), true
	}

	cycles, err := r.cpu.Step()
	if err != nil {
		return false
	}

	e.Cycles, e.Registers = cycles, r.cpu.Registers
	if err := r.trace.Record(e); err != nil {
		r.log.Errorf("%v", err)
	}
	return true
}

func (r *runner) dump() {
	lines := r.trace.Lines()
	if len(lines) == 0 {
		return
	}
	r.log.Errorf("last %d instructions:", len(lines))
	for _, l := range lines {
		r.log.Errorf("  %s", l)
	}
}
