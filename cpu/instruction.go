package cpu

// the address mode of the instruction determines how the operand
// bytes after the opcode turn into an effective address
type AddressMode uint8

const (
	// operand implied
	AM_IMPLIED AddressMode = iota
	// operand is the accumulator itself
	AM_ACCUMULATOR
	// operand is byte BB (in OPC #$BB)
	AM_IMMEDIATE
	// operand is address $HHLL (in OPC $LLHH)
	AM_ABSOLUTE
	// operand is zeropage address (hi-byte is zero, address = $00LL)
	AM_ZEROPAGE
	// operand is address; effective address is address incremented by X
	AM_INDEXED_X
	// operand is address; effective address is address incremented by Y
	AM_INDEXED_Y
	// operand is zeropage address incremented by X without carry (in OPC $LL,X)
	AM_ZEROPAGE_X
	// operand is zeropage address incremented by Y without carry (in OPC $LL,Y)
	AM_ZEROPAGE_Y
	// operand is address; effective address is the word at that address (JMP only)
	AM_INDIRECT
	// operand is zeropage address; effective address is the word in
	// (LL + X, LL + X + 1), incremented without carry; also known as
	// X-indexed, indirect
	AM_PRE_INDEXED
	// operand is zeropage address; effective address is the word in
	// (LL, LL + 1) incremented by Y with carry; also known as
	// indirect, Y-indexed
	AM_POST_INDEXED
	// branch target is PC + signed offset BB (in OPC $BB)
	AM_RELATIVE
)

// operandBytes is how many bytes after the opcode the mode consumes
func (m AddressMode) operandBytes() uint16 {
	switch m {
	case AM_IMPLIED, AM_ACCUMULATOR:
		return 0
	case AM_ABSOLUTE, AM_INDEXED_X, AM_INDEXED_Y, AM_INDIRECT:
		return 2
	default:
		return 1
	}
}

// the instruction by name
type OPCode string

const (
	OPC_ADC = "ADC"
	OPC_AND = "AND"
	OPC_ASL = "ASL"
	OPC_BCC = "BCC"
	OPC_BCS = "BCS"
	OPC_BEQ = "BEQ"
	OPC_BIT = "BIT"
	OPC_BMI = "BMI"
	OPC_BNE = "BNE"
	OPC_BPL = "BPL"
	OPC_BRK = "BRK"
	OPC_BVC = "BVC"
	OPC_BVS = "BVS"
	OPC_CLC = "CLC"
	OPC_CLD = "CLD"
	OPC_CLI = "CLI"
	OPC_CLV = "CLV"
	OPC_CMP = "CMP"
	OPC_CPX = "CPX"
	OPC_CPY = "CPY"
	OPC_DEC = "DEC"
	OPC_DEX = "DEX"
	OPC_DEY = "DEY"
	OPC_EOR = "EOR"
	OPC_INC = "INC"
	OPC_INX = "INX"
	OPC_INY = "INY"
	OPC_JMP = "JMP"
	OPC_JSR = "JSR"
	OPC_LDA = "LDA"
	OPC_LDX = "LDX"
	OPC_LDY = "LDY"
	OPC_LSR = "LSR"
	OPC_NOP = "NOP"
	OPC_ORA = "ORA"
	OPC_PHA = "PHA"
	OPC_PHP = "PHP"
	OPC_PLA = "PLA"
	OPC_PLP = "PLP"
	OPC_ROL = "ROL"
	OPC_ROR = "ROR"
	OPC_RTI = "RTI"
	OPC_RTS = "RTS"
	OPC_SBC = "SBC"
	OPC_SEC = "SEC"
	OPC_SED = "SED"
	OPC_SEI = "SEI"
	OPC_STA = "STA"
	OPC_STX = "STX"
	OPC_STY = "STY"
	OPC_TAX = "TAX"
	OPC_TAY = "TAY"
	OPC_TSX = "TSX"
	OPC_TXA = "TXA"
	OPC_TXS = "TXS"
	OPC_TYA = "TYA"
)

// the function that will be executed for this instruction
type executor func(*instruction, uint16) error

type instruction struct {
	opc  OPCode
	fn   executor
	mode AddressMode
}

func newInstruction(opc OPCode, fn executor, mode AddressMode) *instruction {
	return &instruction{
		opc:  opc,
		fn:   fn,
		mode: mode,
	}
}

func (i *instruction) execute(operand uint16) error {
	return i.fn(i, operand)
}

// readImmed consumes the next operand byte: peek at PC, advance PC.
// Every operand byte of every mode goes through here, so the PC
// always ends up past the full instruction.
func (cpu *CPU) readImmed() (uint8, error) {
	b, err := cpu.memory.Peek(cpu.pc)
	if err != nil {
		return 0, err
	}
	cpu.pc++
	return b, nil
}

// resolveOperand consumes the instruction's operand bytes and returns
// the effective address. Immediate mode resolves to the address of
// the operand byte itself, so executors read every operand uniformly
// through memory. Relative mode returns the raw displacement byte.
func (cpu *CPU) resolveOperand(mode AddressMode) (uint16, error) {
	switch mode {
	case AM_IMPLIED, AM_ACCUMULATOR:
		// no operand bytes
		return 0, nil

	case AM_IMMEDIATE:
		// the operand byte is the value; hand back its address
		address := cpu.pc
		if _, err := cpu.readImmed(); err != nil {
			return 0, err
		}
		return address, nil

	case AM_ZEROPAGE:
		// 1 byte address in the zeropage (high byte is 0x00)
		b, err := cpu.readImmed()
		return uint16(b), err

	case AM_ZEROPAGE_X:
		// add X to the operand; the 8 bit sum wraps around inside
		// the zeropage
		b, err := cpu.readImmed()
		return uint16(b + cpu.x), err

	case AM_ZEROPAGE_Y:
		b, err := cpu.readImmed()
		return uint16(b + cpu.y), err

	case AM_ABSOLUTE:
		// full 16 bit address in LLHH format
		lo, err := cpu.readImmed()
		if err != nil {
			return 0, err
		}
		hi, err := cpu.readImmed()
		if err != nil {
			return 0, err
		}
		return uint16(hi)<<8 + uint16(lo), nil

	case AM_INDEXED_X:
		address, err := cpu.resolveOperand(AM_ABSOLUTE)
		// 16 bit wrap past $ffff
		return address + uint16(cpu.x), err

	case AM_INDEXED_Y:
		address, err := cpu.resolveOperand(AM_ABSOLUTE)
		return address + uint16(cpu.y), err

	case AM_PRE_INDEXED:
		// pointer lives in the zeropage at operand+X, both pointer
		// bytes wrap inside the zeropage
		b, err := cpu.readImmed()
		if err != nil {
			return 0, err
		}
		zp := b + cpu.x
		lo, err := cpu.memory.Peek(uint16(zp))
		if err != nil {
			return 0, err
		}
		hi, err := cpu.memory.Peek(uint16(zp + 1))
		if err != nil {
			return 0, err
		}
		return uint16(hi)<<8 + uint16(lo), nil

	case AM_POST_INDEXED:
		// pointer lives in the zeropage at the operand; Y is added
		// after the indirection, with carry into the high byte
		b, err := cpu.readImmed()
		if err != nil {
			return 0, err
		}
		lo, err := cpu.memory.Peek(uint16(b))
		if err != nil {
			return 0, err
		}
		hi, err := cpu.memory.Peek(uint16(b + 1))
		if err != nil {
			return 0, err
		}
		return uint16(hi)<<8 + uint16(lo) + uint16(cpu.y), nil

	case AM_INDIRECT:
		ptr, err := cpu.resolveOperand(AM_ABSOLUTE)
		if err != nil {
			return 0, err
		}
		lo, err := cpu.memory.Peek(ptr)
		if err != nil {
			return 0, err
		}
		hi, err := cpu.memory.Peek(ptr + 1)
		if err != nil {
			return 0, err
		}
		return uint16(hi)<<8 + uint16(lo), nil

	case AM_RELATIVE:
		b, err := cpu.readImmed()
		return uint16(b), err

	default:
		panic("unsupported address mode")
	}
}

func (cpu *CPU) setupInstructions() {
	// ADC
	cpu.instructions[0x69] = newInstruction(OPC_ADC, cpu.adc, AM_IMMEDIATE)
	cpu.instructions[0x65] = newInstruction(OPC_ADC, cpu.adc, AM_ZEROPAGE)
	cpu.instructions[0x75] = newInstruction(OPC_ADC, cpu.adc, AM_ZEROPAGE_X)
	cpu.instructions[0x6d] = newInstruction(OPC_ADC, cpu.adc, AM_ABSOLUTE)
	cpu.instructions[0x7d] = newInstruction(OPC_ADC, cpu.adc, AM_INDEXED_X)
	cpu.instructions[0x79] = newInstruction(OPC_ADC, cpu.adc, AM_INDEXED_Y)
	cpu.instructions[0x61] = newInstruction(OPC_ADC, cpu.adc, AM_PRE_INDEXED)
	cpu.instructions[0x71] = newInstruction(OPC_ADC, cpu.adc, AM_POST_INDEXED)

	// AND
	cpu.instructions[0x29] = newInstruction(OPC_AND, cpu.and, AM_IMMEDIATE)
	cpu.instructions[0x25] = newInstruction(OPC_AND, cpu.and, AM_ZEROPAGE)
	cpu.instructions[0x35] = newInstruction(OPC_AND, cpu.and, AM_ZEROPAGE_X)
	cpu.instructions[0x2d] = newInstruction(OPC_AND, cpu.and, AM_ABSOLUTE)
	cpu.instructions[0x3d] = newInstruction(OPC_AND, cpu.and, AM_INDEXED_X)
	cpu.instructions[0x39] = newInstruction(OPC_AND, cpu.and, AM_INDEXED_Y)
	cpu.instructions[0x21] = newInstruction(OPC_AND, cpu.and, AM_PRE_INDEXED)
	cpu.instructions[0x31] = newInstruction(OPC_AND, cpu.and, AM_POST_INDEXED)

	// ASL
	cpu.instructions[0x0a] = newInstruction(OPC_ASL, cpu.asl, AM_ACCUMULATOR)
	cpu.instructions[0x06] = newInstruction(OPC_ASL, cpu.asl, AM_ZEROPAGE)
	cpu.instructions[0x16] = newInstruction(OPC_ASL, cpu.asl, AM_ZEROPAGE_X)
	cpu.instructions[0x0e] = newInstruction(OPC_ASL, cpu.asl, AM_ABSOLUTE)
	cpu.instructions[0x1e] = newInstruction(OPC_ASL, cpu.asl, AM_INDEXED_X)

	// BCC
	cpu.instructions[0x90] = newInstruction(OPC_BCC, cpu.bcc, AM_RELATIVE)

	// BCS
	cpu.instructions[0xb0] = newInstruction(OPC_BCS, cpu.bcs, AM_RELATIVE)

	// BEQ
	cpu.instructions[0xf0] = newInstruction(OPC_BEQ, cpu.beq, AM_RELATIVE)

	// BIT
	cpu.instructions[0x24] = newInstruction(OPC_BIT, cpu.bit, AM_ZEROPAGE)
	cpu.instructions[0x2c] = newInstruction(OPC_BIT, cpu.bit, AM_ABSOLUTE)

	// BMI
	cpu.instructions[0x30] = newInstruction(OPC_BMI, cpu.bmi, AM_RELATIVE)

	// BNE
	cpu.instructions[0xd0] = newInstruction(OPC_BNE, cpu.bne, AM_RELATIVE)

	// BPL
	cpu.instructions[0x10] = newInstruction(OPC_BPL, cpu.bpl, AM_RELATIVE)

	// BRK
	cpu.instructions[0x00] = newInstruction(OPC_BRK, cpu.brk, AM_IMPLIED)

	// BVC
	cpu.instructions[0x50] = newInstruction(OPC_BVC, cpu.bvc, AM_RELATIVE)

	// BVS
	cpu.instructions[0x70] = newInstruction(OPC_BVS, cpu.bvs, AM_RELATIVE)

	// CLC
	cpu.instructions[0x18] = newInstruction(OPC_CLC, cpu.clc, AM_IMPLIED)

	// CLD
	cpu.instructions[0xd8] = newInstruction(OPC_CLD, cpu.cld, AM_IMPLIED)

	// CLI
	cpu.instructions[0x58] = newInstruction(OPC_CLI, cpu.cli, AM_IMPLIED)

	// CLV
	cpu.instructions[0xb8] = newInstruction(OPC_CLV, cpu.clv, AM_IMPLIED)

	// CMP
	cpu.instructions[0xc9] = newInstruction(OPC_CMP, cpu.cmp, AM_IMMEDIATE)
	cpu.instructions[0xc5] = newInstruction(OPC_CMP, cpu.cmp, AM_ZEROPAGE)
	cpu.instructions[0xd5] = newInstruction(OPC_CMP, cpu.cmp, AM_ZEROPAGE_X)
	cpu.instructions[0xcd] = newInstruction(OPC_CMP, cpu.cmp, AM_ABSOLUTE)
	cpu.instructions[0xdd] = newInstruction(OPC_CMP, cpu.cmp, AM_INDEXED_X)
	cpu.instructions[0xd9] = newInstruction(OPC_CMP, cpu.cmp, AM_INDEXED_Y)
	cpu.instructions[0xc1] = newInstruction(OPC_CMP, cpu.cmp, AM_PRE_INDEXED)
	cpu.instructions[0xd1] = newInstruction(OPC_CMP, cpu.cmp, AM_POST_INDEXED)

	// CPX
	cpu.instructions[0xe0] = newInstruction(OPC_CPX, cpu.cpx, AM_IMMEDIATE)
	cpu.instructions[0xe4] = newInstruction(OPC_CPX, cpu.cpx, AM_ZEROPAGE)
	cpu.instructions[0xec] = newInstruction(OPC_CPX, cpu.cpx, AM_ABSOLUTE)

	// CPY
	cpu.instructions[0xc0] = newInstruction(OPC_CPY, cpu.cpy, AM_IMMEDIATE)
	cpu.instructions[0xc4] = newInstruction(OPC_CPY, cpu.cpy, AM_ZEROPAGE)
	cpu.instructions[0xcc] = newInstruction(OPC_CPY, cpu.cpy, AM_ABSOLUTE)

	// DEC
	cpu.instructions[0xc6] = newInstruction(OPC_DEC, cpu.dec, AM_ZEROPAGE)
	cpu.instructions[0xd6] = newInstruction(OPC_DEC, cpu.dec, AM_ZEROPAGE_X)
	cpu.instructions[0xce] = newInstruction(OPC_DEC, cpu.dec, AM_ABSOLUTE)
	cpu.instructions[0xde] = newInstruction(OPC_DEC, cpu.dec, AM_INDEXED_X)

	// DEX
	cpu.instructions[0xca] = newInstruction(OPC_DEX, cpu.dex, AM_IMPLIED)

	// DEY
	cpu.instructions[0x88] = newInstruction(OPC_DEY, cpu.dey, AM_IMPLIED)

	// EOR
	cpu.instructions[0x49] = newInstruction(OPC_EOR, cpu.eor, AM_IMMEDIATE)
	cpu.instructions[0x45] = newInstruction(OPC_EOR, cpu.eor, AM_ZEROPAGE)
	cpu.instructions[0x55] = newInstruction(OPC_EOR, cpu.eor, AM_ZEROPAGE_X)
	cpu.instructions[0x4d] = newInstruction(OPC_EOR, cpu.eor, AM_ABSOLUTE)
	cpu.instructions[0x5d] = newInstruction(OPC_EOR, cpu.eor, AM_INDEXED_X)
	cpu.instructions[0x59] = newInstruction(OPC_EOR, cpu.eor, AM_INDEXED_Y)
	cpu.instructions[0x41] = newInstruction(OPC_EOR, cpu.eor, AM_PRE_INDEXED)
	cpu.instructions[0x51] = newInstruction(OPC_EOR, cpu.eor, AM_POST_INDEXED)

	// INC
	cpu.instructions[0xe6] = newInstruction(OPC_INC, cpu.inc, AM_ZEROPAGE)
	cpu.instructions[0xf6] = newInstruction(OPC_INC, cpu.inc, AM_ZEROPAGE_X)
	cpu.instructions[0xee] = newInstruction(OPC_INC, cpu.inc, AM_ABSOLUTE)
	cpu.instructions[0xfe] = newInstruction(OPC_INC, cpu.inc, AM_INDEXED_X)

	// INX
	cpu.instructions[0xe8] = newInstruction(OPC_INX, cpu.inx, AM_IMPLIED)

	// INY
	cpu.instructions[0xc8] = newInstruction(OPC_INY, cpu.iny, AM_IMPLIED)

	// JMP
	cpu.instructions[0x4c] = newInstruction(OPC_JMP, cpu.jmp, AM_ABSOLUTE)
	cpu.instructions[0x6c] = newInstruction(OPC_JMP, cpu.jmp, AM_INDIRECT)

	// JSR
	cpu.instructions[0x20] = newInstruction(OPC_JSR, cpu.jsr, AM_ABSOLUTE)

	// LDA
	cpu.instructions[0xa9] = newInstruction(OPC_LDA, cpu.lda, AM_IMMEDIATE)
	cpu.instructions[0xa5] = newInstruction(OPC_LDA, cpu.lda, AM_ZEROPAGE)
	cpu.instructions[0xb5] = newInstruction(OPC_LDA, cpu.lda, AM_ZEROPAGE_X)
	cpu.instructions[0xad] = newInstruction(OPC_LDA, cpu.lda, AM_ABSOLUTE)
	cpu.instructions[0xbd] = newInstruction(OPC_LDA, cpu.lda, AM_INDEXED_X)
	cpu.instructions[0xb9] = newInstruction(OPC_LDA, cpu.lda, AM_INDEXED_Y)
	cpu.instructions[0xa1] = newInstruction(OPC_LDA, cpu.lda, AM_PRE_INDEXED)
	cpu.instructions[0xb1] = newInstruction(OPC_LDA, cpu.lda, AM_POST_INDEXED)

	// LDX
	cpu.instructions[0xa2] = newInstruction(OPC_LDX, cpu.ldx, AM_IMMEDIATE)
	cpu.instructions[0xa6] = newInstruction(OPC_LDX, cpu.ldx, AM_ZEROPAGE)
	cpu.instructions[0xb6] = newInstruction(OPC_LDX, cpu.ldx, AM_ZEROPAGE_Y)
	cpu.instructions[0xae] = newInstruction(OPC_LDX, cpu.ldx, AM_ABSOLUTE)
	cpu.instructions[0xbe] = newInstruction(OPC_LDX, cpu.ldx, AM_INDEXED_Y)

	// LDY
	cpu.instructions[0xa0] = newInstruction(OPC_LDY, cpu.ldy, AM_IMMEDIATE)
	cpu.instructions[0xa4] = newInstruction(OPC_LDY, cpu.ldy, AM_ZEROPAGE)
	cpu.instructions[0xb4] = newInstruction(OPC_LDY, cpu.ldy, AM_ZEROPAGE_X)
	cpu.instructions[0xac] = newInstruction(OPC_LDY, cpu.ldy, AM_ABSOLUTE)
	cpu.instructions[0xbc] = newInstruction(OPC_LDY, cpu.ldy, AM_INDEXED_X)

	// LSR
	cpu.instructions[0x4a] = newInstruction(OPC_LSR, cpu.lsr, AM_ACCUMULATOR)
	cpu.instructions[0x46] = newInstruction(OPC_LSR, cpu.lsr, AM_ZEROPAGE)
	cpu.instructions[0x56] = newInstruction(OPC_LSR, cpu.lsr, AM_ZEROPAGE_X)
	cpu.instructions[0x4e] = newInstruction(OPC_LSR, cpu.lsr, AM_ABSOLUTE)
	cpu.instructions[0x5e] = newInstruction(OPC_LSR, cpu.lsr, AM_INDEXED_X)

	// NOP
	cpu.instructions[0xea] = newInstruction(OPC_NOP, cpu.nop, AM_IMPLIED)

	// ORA
	cpu.instructions[0x09] = newInstruction(OPC_ORA, cpu.ora, AM_IMMEDIATE)
	cpu.instructions[0x05] = newInstruction(OPC_ORA, cpu.ora, AM_ZEROPAGE)
	cpu.instructions[0x15] = newInstruction(OPC_ORA, cpu.ora, AM_ZEROPAGE_X)
	cpu.instructions[0x0d] = newInstruction(OPC_ORA, cpu.ora, AM_ABSOLUTE)
	cpu.instructions[0x1d] = newInstruction(OPC_ORA, cpu.ora, AM_INDEXED_X)
	cpu.instructions[0x19] = newInstruction(OPC_ORA, cpu.ora, AM_INDEXED_Y)
	cpu.instructions[0x01] = newInstruction(OPC_ORA, cpu.ora, AM_PRE_INDEXED)
	cpu.instructions[0x11] = newInstruction(OPC_ORA, cpu.ora, AM_POST_INDEXED)

	// PHA
	cpu.instructions[0x48] = newInstruction(OPC_PHA, cpu.pha, AM_IMPLIED)

	// PHP
	cpu.instructions[0x08] = newInstruction(OPC_PHP, cpu.php, AM_IMPLIED)

	// PLA
	cpu.instructions[0x68] = newInstruction(OPC_PLA, cpu.pla, AM_IMPLIED)

	// PLP
	cpu.instructions[0x28] = newInstruction(OPC_PLP, cpu.plp, AM_IMPLIED)

	// ROL
	cpu.instructions[0x2a] = newInstruction(OPC_ROL, cpu.rol, AM_ACCUMULATOR)
	cpu.instructions[0x26] = newInstruction(OPC_ROL, cpu.rol, AM_ZEROPAGE)
	cpu.instructions[0x36] = newInstruction(OPC_ROL, cpu.rol, AM_ZEROPAGE_X)
	cpu.instructions[0x2e] = newInstruction(OPC_ROL, cpu.rol, AM_ABSOLUTE)
	cpu.instructions[0x3e] = newInstruction(OPC_ROL, cpu.rol, AM_INDEXED_X)

	// ROR
	cpu.instructions[0x6a] = newInstruction(OPC_ROR, cpu.ror, AM_ACCUMULATOR)
	cpu.instructions[0x66] = newInstruction(OPC_ROR, cpu.ror, AM_ZEROPAGE)
	cpu.instructions[0x76] = newInstruction(OPC_ROR, cpu.ror, AM_ZEROPAGE_X)
	cpu.instructions[0x6e] = newInstruction(OPC_ROR, cpu.ror, AM_ABSOLUTE)
	cpu.instructions[0x7e] = newInstruction(OPC_ROR, cpu.ror, AM_INDEXED_X)

	// RTI
	cpu.instructions[0x40] = newInstruction(OPC_RTI, cpu.rti, AM_IMPLIED)

	// RTS
	cpu.instructions[0x60] = newInstruction(OPC_RTS, cpu.rts, AM_IMPLIED)

	// SBC
	cpu.instructions[0xe9] = newInstruction(OPC_SBC, cpu.sbc, AM_IMMEDIATE)
	cpu.instructions[0xe5] = newInstruction(OPC_SBC, cpu.sbc, AM_ZEROPAGE)
	cpu.instructions[0xf5] = newInstruction(OPC_SBC, cpu.sbc, AM_ZEROPAGE_X)
	cpu.instructions[0xed] = newInstruction(OPC_SBC, cpu.sbc, AM_ABSOLUTE)
	cpu.instructions[0xfd] = newInstruction(OPC_SBC, cpu.sbc, AM_INDEXED_X)
	cpu.instructions[0xf9] = newInstruction(OPC_SBC, cpu.sbc, AM_INDEXED_Y)
	cpu.instructions[0xe1] = newInstruction(OPC_SBC, cpu.sbc, AM_PRE_INDEXED)
	cpu.instructions[0xf1] = newInstruction(OPC_SBC, cpu.sbc, AM_POST_INDEXED)

	// SEC
	cpu.instructions[0x38] = newInstruction(OPC_SEC, cpu.sec, AM_IMPLIED)

	// SED
	cpu.instructions[0xf8] = newInstruction(OPC_SED, cpu.sed, AM_IMPLIED)

	// SEI
	cpu.instructions[0x78] = newInstruction(OPC_SEI, cpu.sei, AM_IMPLIED)

	// STA
	cpu.instructions[0x85] = newInstruction(OPC_STA, cpu.sta, AM_ZEROPAGE)
	cpu.instructions[0x95] = newInstruction(OPC_STA, cpu.sta, AM_ZEROPAGE_X)
	cpu.instructions[0x8d] = newInstruction(OPC_STA, cpu.sta, AM_ABSOLUTE)
	cpu.instructions[0x9d] = newInstruction(OPC_STA, cpu.sta, AM_INDEXED_X)
	cpu.instructions[0x99] = newInstruction(OPC_STA, cpu.sta, AM_INDEXED_Y)
	cpu.instructions[0x81] = newInstruction(OPC_STA, cpu.sta, AM_PRE_INDEXED)
	cpu.instructions[0x91] = newInstruction(OPC_STA, cpu.sta, AM_POST_INDEXED)

	// STX
	cpu.instructions[0x86] = newInstruction(OPC_STX, cpu.stx, AM_ZEROPAGE)
	cpu.instructions[0x96] = newInstruction(OPC_STX, cpu.stx, AM_ZEROPAGE_Y)
	cpu.instructions[0x8e] = newInstruction(OPC_STX, cpu.stx, AM_ABSOLUTE)

	// STY
	cpu.instructions[0x84] = newInstruction(OPC_STY, cpu.sty, AM_ZEROPAGE)
	cpu.instructions[0x94] = newInstruction(OPC_STY, cpu.sty, AM_ZEROPAGE_X)
	cpu.instructions[0x8c] = newInstruction(OPC_STY, cpu.sty, AM_ABSOLUTE)

	// TAX
	cpu.instructions[0xaa] = newInstruction(OPC_TAX, cpu.tax, AM_IMPLIED)

	// TAY
	cpu.instructions[0xa8] = newInstruction(OPC_TAY, cpu.tay, AM_IMPLIED)

	// TSX
	cpu.instructions[0xba] = newInstruction(OPC_TSX, cpu.tsx, AM_IMPLIED)

	// TXA
	cpu.instructions[0x8a] = newInstruction(OPC_TXA, cpu.txa, AM_IMPLIED)

	// TXS
	cpu.instructions[0x9a] = newInstruction(OPC_TXS, cpu.txs, AM_IMPLIED)

	// TYA
	cpu.instructions[0x98] = newInstruction(OPC_TYA, cpu.tya, AM_IMPLIED)
}
