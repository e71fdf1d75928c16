package cpu

import (
	"fmt"
)

// statusBits renders P in NV-BDIZC order, one character per flag.
func statusBits(p flags) string {
	bits := make([]byte, 8)
	for i, f := range []flag{
		P_Negative,
		P_Overflow,
		P_Expansion,
		P_Break,
		P_Decimal,
		P_InterruptDisable,
		P_Zero,
		P_Carry,
	} {
		if p.isSet(f) {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	return string(bits)
}

// DumpRegisters writes the register file to the trace sink.
func (cpu *CPU) DumpRegisters() {
	fmt.Fprintln(cpu.trace, "REGISTER DUMP")
	fmt.Fprintf(cpu.trace, "\tRAM: %d bytes\n", cpu.memory.Size())
	fmt.Fprintf(cpu.trace, "\t  A: %02x\n", cpu.a)
	fmt.Fprintf(cpu.trace, "\t  X: %02x\n", cpu.x)
	fmt.Fprintf(cpu.trace, "\t  Y: %02x\n", cpu.y)
	fmt.Fprintf(cpu.trace, "\t  P: %02x\n", uint8(cpu.p))
	fmt.Fprintf(cpu.trace, "\tFLA: NV-BDIZC\n")
	fmt.Fprintf(cpu.trace, "\tFLA: %s\n", statusBits(cpu.p))
	fmt.Fprintf(cpu.trace, "\t  S: %02x\n", cpu.s)
	fmt.Fprintf(cpu.trace, "\t PC: %04x", cpu.pc)

	if in := cpu.DisassembleCurrent(); in != nil {
		fmt.Fprintf(cpu.trace, "\t%s", in.Disassembly)
	}
	fmt.Fprintln(cpu.trace)
}

// DumpMemory writes the memory hex listing to the trace sink.
func (cpu *CPU) DumpMemory() {
	cpu.memory.Dump(cpu.trace)
}
