package cpu

func (cpu *CPU) adc(ins *instruction, address uint16) error {
	// Add Memory to Accumulator with Carry
	// A + M + C -> A, C
	m, err := cpu.memory.Peek(address)
	if err != nil {
		return err
	}

	sum, c, v := addCarrying(cpu.a, m, cpu.p.isSet(P_Carry))

	cpu.a = sum
	cpu.p.set(P_Carry, c)
	cpu.p.set(P_Overflow, v)
	cpu.setNZ(cpu.a)
	return nil
}

func (cpu *CPU) and(ins *instruction, address uint16) error {
	// And Memory with Accumulator
	m, err := cpu.memory.Peek(address)
	if err != nil {
		return err
	}
	cpu.a = cpu.a & m
	cpu.setNZ(cpu.a)
	return nil
}

// readShiftOperand fetches the value a shift or rotate works on:
// the accumulator itself, or a memory cell.
func (cpu *CPU) readShiftOperand(ins *instruction, address uint16) (uint8, error) {
	if ins.mode == AM_ACCUMULATOR {
		return cpu.a, nil
	}
	return cpu.memory.Peek(address)
}

// writeShiftResult puts a shifted value back where it came from and
// records N and Z.
func (cpu *CPU) writeShiftResult(ins *instruction, address uint16, value uint8) error {
	if ins.mode == AM_ACCUMULATOR {
		cpu.a = value
	} else if err := cpu.memory.Poke(address, value); err != nil {
		return err
	}
	cpu.setNZ(value)
	return nil
}

func (cpu *CPU) asl(ins *instruction, address uint16) error {
	// Shift Left One Bit (Memory or Accumulator)
	value, err := cpu.readShiftOperand(ins, address)
	if err != nil {
		return err
	}

	shifted := value << 1
	cpu.p.set(P_Carry, value&0x80 == 0x80)
	return cpu.writeShiftResult(ins, address, shifted)
}

// branch applies a two's-complement displacement byte to the PC.
// $80-$ff move backwards; the 16 bit sum wraps.
func (cpu *CPU) branch(displacement uint16) {
	cpu.pc += uint16(int16(int8(uint8(displacement))))
}

func (cpu *CPU) bcc(ins *instruction, address uint16) error {
	// Branch on Carry Clear
	if !cpu.p.isSet(P_Carry) {
		cpu.branch(address)
	}
	return nil
}

func (cpu *CPU) bcs(ins *instruction, address uint16) error {
	// Branch on Carry Set
	if cpu.p.isSet(P_Carry) {
		cpu.branch(address)
	}
	return nil
}

func (cpu *CPU) beq(ins *instruction, address uint16) error {
	// Branch on Result Zero
	if cpu.p.isSet(P_Zero) {
		cpu.branch(address)
	}
	return nil
}

func (cpu *CPU) bit(ins *instruction, address uint16) error {
	// Test Bits in Memory with Accumulator
	// bits 7 and 6 of the operand move into N and V; Z is set from
	// operand AND accumulator
	value, err := cpu.memory.Peek(address)
	if err != nil {
		return err
	}

	cpu.p.set(P_Zero, cpu.a&value == 0)
	cpu.p.set(P_Negative, value&(1<<7) != 0)
	cpu.p.set(P_Overflow, value&(1<<6) != 0)
	return nil
}

func (cpu *CPU) bmi(ins *instruction, address uint16) error {
	// Branch on Result Minus
	if cpu.p.isSet(P_Negative) {
		cpu.branch(address)
	}
	return nil
}

func (cpu *CPU) bne(ins *instruction, address uint16) error {
	// Branch on Result not Zero
	if !cpu.p.isSet(P_Zero) {
		cpu.branch(address)
	}
	return nil
}

func (cpu *CPU) bpl(ins *instruction, address uint16) error {
	// Branch on Result Plus
	if !cpu.p.isSet(P_Negative) {
		cpu.branch(address)
	}
	return nil
}

func (cpu *CPU) brk(ins *instruction, address uint16) error {
	// Force Break
	// sets B and halts the interpreter loop; the return address and
	// status are not pushed, which keeps BRK usable as a plain stop
	// marker in driver programs
	cpu.p.set(P_Break, true)
	cpu.halt = HaltBreak
	return nil
}

func (cpu *CPU) bvc(ins *instruction, address uint16) error {
	// Branch on Overflow Clear
	if !cpu.p.isSet(P_Overflow) {
		cpu.branch(address)
	}
	return nil
}

func (cpu *CPU) bvs(ins *instruction, address uint16) error {
	// Branch on Overflow Set
	if cpu.p.isSet(P_Overflow) {
		cpu.branch(address)
	}
	return nil
}

func (cpu *CPU) clc(ins *instruction, address uint16) error {
	// Clear Carry Flag
	cpu.p.set(P_Carry, false)
	return nil
}

func (cpu *CPU) cld(ins *instruction, address uint16) error {
	// Clear Decimal Mode
	cpu.p.set(P_Decimal, false)
	return nil
}

func (cpu *CPU) cli(ins *instruction, address uint16) error {
	// Clear Interrupt Disable Bit
	cpu.p.set(P_InterruptDisable, false)
	return nil
}

func (cpu *CPU) clv(ins *instruction, address uint16) error {
	// Clear Overflow Flag
	cpu.p.set(P_Overflow, false)
	return nil
}

// compareReg is CMP/CPX/CPY against the given register value.
func (cpu *CPU) compareReg(reg uint8, address uint16) error {
	m, err := cpu.memory.Peek(address)
	if err != nil {
		return err
	}

	n, z, c := compareTo(reg, m)
	cpu.p.set(P_Negative, n)
	cpu.p.set(P_Zero, z)
	cpu.p.set(P_Carry, c)
	return nil
}

func (cpu *CPU) cmp(ins *instruction, address uint16) error {
	// Compare Memory with Accumulator
	return cpu.compareReg(cpu.a, address)
}

func (cpu *CPU) cpx(ins *instruction, address uint16) error {
	// Compare Memory and Index X
	return cpu.compareReg(cpu.x, address)
}

func (cpu *CPU) cpy(ins *instruction, address uint16) error {
	// Compare Memory and Index Y
	return cpu.compareReg(cpu.y, address)
}

func (cpu *CPU) dec(ins *instruction, address uint16) error {
	// Decrement Memory by One
	b, err := cpu.memory.Peek(address)
	if err != nil {
		return err
	}
	b--
	if err := cpu.memory.Poke(address, b); err != nil {
		return err
	}
	cpu.setNZ(b)
	return nil
}

func (cpu *CPU) dex(ins *instruction, address uint16) error {
	// Decrement Index X by One
	// wrapping is handled by go uint
	cpu.x--
	cpu.setNZ(cpu.x)
	return nil
}

func (cpu *CPU) dey(ins *instruction, address uint16) error {
	// Decrement Index Y by One
	cpu.y--
	cpu.setNZ(cpu.y)
	return nil
}

func (cpu *CPU) eor(ins *instruction, address uint16) error {
	// Exclusive-OR Memory with Accumulator
	m, err := cpu.memory.Peek(address)
	if err != nil {
		return err
	}
	cpu.a = cpu.a ^ m
	cpu.setNZ(cpu.a)
	return nil
}

func (cpu *CPU) inc(ins *instruction, address uint16) error {
	// Increment Memory by One
	b, err := cpu.memory.Peek(address)
	if err != nil {
		return err
	}
	b++
	if err := cpu.memory.Poke(address, b); err != nil {
		return err
	}
	cpu.setNZ(b)
	return nil
}

func (cpu *CPU) inx(ins *instruction, address uint16) error {
	// Increment Index X by One
	// the increment also reports unsigned wraparound in the carry
	cpu.x++
	cpu.setNZ(cpu.x)
	cpu.p.set(P_Carry, cpu.x == 0)
	return nil
}

func (cpu *CPU) iny(ins *instruction, address uint16) error {
	// Increment Index Y by One
	cpu.y++
	cpu.setNZ(cpu.y)
	cpu.p.set(P_Carry, cpu.y == 0)
	return nil
}

func (cpu *CPU) jmp(ins *instruction, address uint16) error {
	// Jump to New Location
	cpu.pc = address
	return nil
}

func (cpu *CPU) jsr(ins *instruction, address uint16) error {
	// Jump to New Location Saving Return Address
	// the pushed address is the last byte of the JSR instruction;
	// RTS compensates
	pc := cpu.pc - 1

	if err := cpu.push(uint8(pc >> 8)); err != nil {
		return err
	}
	if err := cpu.push(uint8(pc)); err != nil {
		return err
	}

	cpu.pc = address
	return nil
}

func (cpu *CPU) lda(ins *instruction, address uint16) error {
	// Load Accumulator with Memory
	value, err := cpu.memory.Peek(address)
	if err != nil {
		return err
	}
	cpu.a = value
	cpu.setNZ(cpu.a)
	return nil
}

func (cpu *CPU) ldx(ins *instruction, address uint16) error {
	// Load Index X with Memory
	value, err := cpu.memory.Peek(address)
	if err != nil {
		return err
	}
	cpu.x = value
	cpu.setNZ(cpu.x)
	return nil
}

func (cpu *CPU) ldy(ins *instruction, address uint16) error {
	// Load Index Y with Memory
	value, err := cpu.memory.Peek(address)
	if err != nil {
		return err
	}
	cpu.y = value
	cpu.setNZ(cpu.y)
	return nil
}

func (cpu *CPU) lsr(ins *instruction, address uint16) error {
	// Shift One Bit Right (Memory or Accumulator)
	value, err := cpu.readShiftOperand(ins, address)
	if err != nil {
		return err
	}

	shifted := value >> 1
	cpu.p.set(P_Carry, value&0x01 == 0x01)
	return cpu.writeShiftResult(ins, address, shifted)
}

func (cpu *CPU) nop(ins *instruction, address uint16) error {
	// No Operation
	return nil
}

func (cpu *CPU) ora(ins *instruction, address uint16) error {
	// Or Memory with Accumulator
	m, err := cpu.memory.Peek(address)
	if err != nil {
		return err
	}
	cpu.a = cpu.a | m
	cpu.setNZ(cpu.a)
	return nil
}

func (cpu *CPU) pha(ins *instruction, address uint16) error {
	// Push Accumulator on Stack
	return cpu.push(cpu.a)
}

func (cpu *CPU) php(ins *instruction, address uint16) error {
	// Push Processor Status on Stack
	// pushed with the break and expansion bits set
	return cpu.push(uint8(cpu.p) | uint8(P_Break) | uint8(P_Expansion))
}

func (cpu *CPU) pla(ins *instruction, address uint16) error {
	// Pull Accumulator from Stack
	value, err := cpu.pull()
	if err != nil {
		return err
	}
	cpu.a = value
	cpu.setNZ(cpu.a)
	return nil
}

func (cpu *CPU) plp(ins *instruction, address uint16) error {
	// Pull Processor Status from Stack
	value, err := cpu.pull()
	if err != nil {
		return err
	}
	cpu.p = flags(value)
	cpu.p.set(P_Expansion, true)
	return nil
}

func (cpu *CPU) rol(ins *instruction, address uint16) error {
	// Rotate One Bit Left (Memory or Accumulator)
	value, err := cpu.readShiftOperand(ins, address)
	if err != nil {
		return err
	}

	rolled := value << 1
	if cpu.p.isSet(P_Carry) {
		rolled |= 0x01
	}

	cpu.p.set(P_Carry, value&0x80 == 0x80)
	return cpu.writeShiftResult(ins, address, rolled)
}

func (cpu *CPU) ror(ins *instruction, address uint16) error {
	// Rotate One Bit Right (Memory or Accumulator)
	value, err := cpu.readShiftOperand(ins, address)
	if err != nil {
		return err
	}

	rolled := value >> 1
	if cpu.p.isSet(P_Carry) {
		rolled |= 0x80
	}

	cpu.p.set(P_Carry, value&0x01 == 0x01)
	return cpu.writeShiftResult(ins, address, rolled)
}

func (cpu *CPU) rti(ins *instruction, address uint16) error {
	// Return from Interrupt
	// pull the status register, then the program counter
	p, err := cpu.pull()
	if err != nil {
		return err
	}
	cpu.p = flags(p)
	cpu.p.set(P_Expansion, true)
	cpu.p.set(P_Break, false)

	lo, err := cpu.pull()
	if err != nil {
		return err
	}
	hi, err := cpu.pull()
	if err != nil {
		return err
	}
	cpu.pc = uint16(hi)<<8 | uint16(lo)
	return nil
}

func (cpu *CPU) rts(ins *instruction, address uint16) error {
	// Return from Subroutine
	lo, err := cpu.pull()
	if err != nil {
		return err
	}
	hi, err := cpu.pull()
	if err != nil {
		return err
	}

	// JSR pushed the address of its own last byte
	cpu.pc = uint16(hi)<<8 | uint16(lo)
	cpu.pc++
	return nil
}

func (cpu *CPU) sbc(ins *instruction, address uint16) error {
	// Subtract Memory from Accumulator with Borrow
	// A - M - (1-C) -> A; carry out means no borrow was needed
	m, err := cpu.memory.Peek(address)
	if err != nil {
		return err
	}

	diff, c, v := subBorrowing(cpu.a, m, cpu.p.isSet(P_Carry))

	cpu.a = diff
	cpu.p.set(P_Carry, c)
	cpu.p.set(P_Overflow, v)
	cpu.setNZ(cpu.a)
	return nil
}

func (cpu *CPU) sec(ins *instruction, address uint16) error {
	// Set Carry Flag
	cpu.p.set(P_Carry, true)
	return nil
}

func (cpu *CPU) sed(ins *instruction, address uint16) error {
	// Set Decimal Flag
	cpu.p.set(P_Decimal, true)
	return nil
}

func (cpu *CPU) sei(ins *instruction, address uint16) error {
	// Set Interrupt Disable Status
	cpu.p.set(P_InterruptDisable, true)
	return nil
}

func (cpu *CPU) sta(ins *instruction, address uint16) error {
	// Store Accumulator in Memory
	return cpu.memory.Poke(address, cpu.a)
}

func (cpu *CPU) stx(ins *instruction, address uint16) error {
	// Store Index X in Memory
	return cpu.memory.Poke(address, cpu.x)
}

func (cpu *CPU) sty(ins *instruction, address uint16) error {
	// Store Index Y in Memory
	return cpu.memory.Poke(address, cpu.y)
}

func (cpu *CPU) tax(ins *instruction, address uint16) error {
	// Transfer Accumulator to Index X
	cpu.x = cpu.a
	cpu.setNZ(cpu.x)
	return nil
}

func (cpu *CPU) tay(ins *instruction, address uint16) error {
	// Transfer Accumulator to Index Y
	cpu.y = cpu.a
	cpu.setNZ(cpu.y)
	return nil
}

func (cpu *CPU) tsx(ins *instruction, address uint16) error {
	// Transfer Stack Pointer to Index X
	cpu.x = cpu.s
	cpu.setNZ(cpu.x)
	return nil
}

func (cpu *CPU) txa(ins *instruction, address uint16) error {
	// Transfer Index X to Accumulator
	cpu.a = cpu.x
	cpu.setNZ(cpu.a)
	return nil
}

func (cpu *CPU) txs(ins *instruction, address uint16) error {
	// Transfer Index X to Stack Register
	cpu.s = cpu.x
	return nil
}

func (cpu *CPU) tya(ins *instruction, address uint16) error {
	// Transfer Index Y to Accumulator
	cpu.a = cpu.y
	cpu.setNZ(cpu.a)
	return nil
}
