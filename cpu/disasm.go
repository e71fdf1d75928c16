package cpu

import (
	"fmt"
)

type DisassembledInstruction struct {
	Address     uint16
	Opcode      OPCode
	Operand     uint16
	Mode        AddressMode
	Disassembly string
}

// DisassembleCurrent decodes the instruction at the PC, or nil when
// the byte there is not a legal opcode (or lies outside memory).
func (cpu *CPU) DisassembleCurrent() *DisassembledInstruction {
	return cpu.disassembleInstruction(cpu.pc)
}

func (cpu *CPU) disassembleInstruction(address uint16) *DisassembledInstruction {
	opcode, err := cpu.memory.Peek(address)
	if err != nil {
		return nil
	}

	instruction := cpu.instructions[opcode]
	if instruction == nil {
		return nil
	}

	// operand bytes straddling the end of memory read as zero; the
	// disassembler is a viewer, not an execution path
	var operand uint16
	switch instruction.mode.operandBytes() {
	case 1:
		lo, _ := cpu.memory.Peek(address + 1)
		operand = uint16(lo)
	case 2:
		lo, _ := cpu.memory.Peek(address + 1)
		hi, _ := cpu.memory.Peek(address + 2)
		operand = uint16(hi)<<8 | uint16(lo)
	}

	disassembly := fmt.Sprintf("%s ", instruction.opc)

	switch instruction.mode {
	case AM_IMPLIED:
		// no operand
	case AM_ACCUMULATOR:
		disassembly += "A"
	case AM_IMMEDIATE:
		disassembly += fmt.Sprintf("#$%02X", operand&0xFF)
	case AM_ABSOLUTE:
		disassembly += fmt.Sprintf("$%04X", operand)
	case AM_ZEROPAGE:
		disassembly += fmt.Sprintf("$%02X", operand&0xFF)
	case AM_INDEXED_X:
		disassembly += fmt.Sprintf("$%04X,X", operand)
	case AM_INDEXED_Y:
		disassembly += fmt.Sprintf("$%04X,Y", operand)
	case AM_ZEROPAGE_X:
		disassembly += fmt.Sprintf("$%02X,X", operand&0xFF)
	case AM_ZEROPAGE_Y:
		disassembly += fmt.Sprintf("$%02X,Y", operand&0xFF)
	case AM_INDIRECT:
		disassembly += fmt.Sprintf("($%04X)", operand)
	case AM_PRE_INDEXED:
		disassembly += fmt.Sprintf("($%02X,X)", operand&0xFF)
	case AM_POST_INDEXED:
		disassembly += fmt.Sprintf("($%02X),Y", operand&0xFF)
	case AM_RELATIVE:
		target := address + 2 + uint16(int16(int8(uint8(operand&0xFF))))
		disassembly += fmt.Sprintf("$%04X", target)
	}

	return &DisassembledInstruction{
		Address:     address,
		Opcode:      instruction.opc,
		Operand:     operand,
		Mode:        instruction.mode,
		Disassembly: disassembly,
	}
}
