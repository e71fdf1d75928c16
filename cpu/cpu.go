package cpu

import (
	"io"
	"os"
)

const (
	// Stack page
	StackBottom uint16 = 0x0100
	StackTop    uint16 = 0x01ff
)

// HaltCause says why Step started returning false.
type HaltCause uint8

const (
	Continue HaltCause = iota
	// BRK executed
	HaltBreak
	// opcode with no decoder entry
	HaltIllegalInstruction
	// memory fault (out of bounds access or truncated operand)
	HaltFault
	// the trap detector saw the PC stuck in a tight loop
	HaltTrap
)

func (h HaltCause) String() string {
	switch h {
	case Continue:
		return "running"
	case HaltBreak:
		return "break"
	case HaltIllegalInstruction:
		return "illegal instruction"
	case HaltFault:
		return "memory fault"
	case HaltTrap:
		return "trap"
	}
	return "unknown"
}

// CPU models the 6502 core: six registers, a decode table and the
// memory it exclusively owns. Drivers populate memory with Load, aim
// the program counter with SetEntry, then call Step or Run.
type CPU struct {
	// main register
	a uint8
	// index registers
	x uint8
	y uint8

	// stack pointer; a low byte into the stack page
	s uint8

	// program counter
	pc uint16

	// status register
	// N -> Sign/Negative
	// V -> Overflow
	// - -> Expansion, always set
	// B -> Break
	// D -> Decimal (kept but never honoured; binary arithmetic only)
	// I -> Interrupt Disable (kept but interrupts are never serviced)
	// Z -> Zero
	// C -> Carry
	p flags

	// instruction table
	instructions [0x100]*instruction

	// memory that is owned for the lifetime of the CPU
	memory *Memory

	halt  HaltCause
	fault error

	// TrapDetector makes Run halt once the PC revisits a short cycle
	// instead of spinning forever
	TrapDetector bool
	traps        trapDetector

	// diagnostic sink
	trace io.Writer
}

// New builds a CPU owning size bytes of zeroed RAM, with registers
// reset.
func New(size int) *CPU {
	cpu := CPU{
		memory: NewMemory(size),
		trace:  os.Stderr,
	}
	cpu.setupInstructions()
	cpu.Reset()
	return &cpu
}

// Reset returns the registers to their power-on state: everything
// zeroed, only the expansion bit set in P, the stack pointer at the
// top of the stack page. Memory contents are left alone.
func (cpu *CPU) Reset() {
	cpu.a = 0x0
	cpu.x = 0x0
	cpu.y = 0x0
	cpu.s = 0xff
	cpu.pc = 0x0
	cpu.p = flags(P_Expansion)

	cpu.halt = Continue
	cpu.fault = nil
	cpu.traps.reset()
}

// SetTrace redirects diagnostic output; the default sink is stderr.
func (cpu *CPU) SetTrace(w io.Writer) {
	cpu.trace = w
}

// Load copies a program image into memory at offset.
func (cpu *CPU) Load(src []uint8, offset uint16) error {
	return cpu.memory.Load(src, offset)
}

// Store copies memory out into dst, for inspection.
func (cpu *CPU) Store(dst []uint8, offset uint16) error {
	return cpu.memory.Store(dst, offset)
}

// SetEntry aims the program counter.
func (cpu *CPU) SetEntry(address uint16) {
	cpu.pc = address
}

// register accessors

func (cpu *CPU) A() uint8   { return cpu.a }
func (cpu *CPU) X() uint8   { return cpu.x }
func (cpu *CPU) Y() uint8   { return cpu.y }
func (cpu *CPU) P() uint8   { return uint8(cpu.p) }
func (cpu *CPU) S() uint8   { return cpu.s }
func (cpu *CPU) PC() uint16 { return cpu.pc }

// Halt reports why the CPU stopped, or Continue if it has not.
func (cpu *CPU) Halt() HaltCause {
	return cpu.halt
}

// Peek reads a memory cell, for inspection.
func (cpu *CPU) Peek(address uint16) (uint8, error) {
	return cpu.memory.Peek(address)
}

// Poke writes a memory cell.
func (cpu *CPU) Poke(address uint16, value uint8) error {
	return cpu.memory.Poke(address, value)
}

// Step executes one instruction. It returns true while the CPU can
// continue, false once it has halted. A BRK or an undecodable opcode
// halts with a nil error; a memory fault halts and surfaces the
// error. Either way the halt cause is available from Halt.
func (cpu *CPU) Step() (bool, error) {
	if cpu.halt != Continue {
		return false, cpu.fault
	}

	// pop the 8bit opcode and progress the pc
	opcode, err := cpu.readImmed()
	if err != nil {
		return false, cpu.faulted(err)
	}

	instruction := cpu.instructions[opcode]
	if instruction == nil {
		cpu.halt = HaltIllegalInstruction
		cpu.DumpRegisters()
		return false, nil
	}

	operand, err := cpu.resolveOperand(instruction.mode)
	if err != nil {
		return false, cpu.faulted(err)
	}

	if err := instruction.execute(operand); err != nil {
		return false, cpu.faulted(err)
	}

	return cpu.halt == Continue, nil
}

// Run steps the CPU until it halts. With trace on, the registers,
// the next instruction and memory are dumped to the trace sink after
// every step.
func (cpu *CPU) Run(trace bool) error {
	for {
		if cpu.TrapDetector {
			cpu.traps.push(cpu.pc)
			if cpu.traps.sprung() {
				cpu.halt = HaltTrap
				return nil
			}
		}

		ok, err := cpu.Step()
		if trace {
			cpu.DumpRegisters()
			cpu.DumpMemory()
		}
		if !ok {
			return err
		}
	}
}

func (cpu *CPU) faulted(err error) error {
	cpu.halt = HaltFault
	cpu.fault = err
	return err
}

// push a byte onto the stack; the stack pointer is 8 bit, so the
// stack silently wraps around inside page 1
func (cpu *CPU) push(b uint8) error {
	if err := cpu.memory.Poke(StackBottom|uint16(cpu.s), b); err != nil {
		return err
	}
	cpu.s--
	return nil
}

// pull a byte off the stack; increment first, then read
func (cpu *CPU) pull() (uint8, error) {
	cpu.s++
	return cpu.memory.Peek(StackBottom | uint16(cpu.s))
}
