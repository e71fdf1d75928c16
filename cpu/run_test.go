package cpu

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runProgram loads a program at entry on a machine of the given
// size, runs it to the halt and returns the CPU for inspection.
func runProgram(t *testing.T, size int, entry uint16, program []uint8) *CPU {
	t.Helper()

	cpu := New(size)
	cpu.SetTrace(io.Discard)
	require.NoError(t, cpu.Load(program, entry))
	cpu.SetEntry(entry)
	require.NoError(t, cpu.Run(false))
	return cpu
}

func peek(t *testing.T, cpu *CPU, address uint16) uint8 {
	t.Helper()
	b, err := cpu.Peek(address)
	require.NoError(t, err)
	return b
}

func TestProgramStoreConstant(t *testing.T) {
	// LDA #$01; STA $0001; then the zeroed cell after the program
	// reads as BRK
	cpu := runProgram(t, 0x400, 0x0300, []uint8{0xa9, 0x01, 0x8d, 0x01, 0x00})

	assert.Equal(t, HaltBreak, cpu.Halt())
	assert.Equal(t, uint8(0x01), cpu.A())
	assert.Equal(t, uint8(0x01), peek(t, cpu, 0x0001))
}

func TestProgramTransferAddOverflow(t *testing.T) {
	// LDA #$c0; TAX; INX; ADC #$c4; BRK
	cpu := runProgram(t, 0x400, 0x0300, []uint8{0xa9, 0xc0, 0xaa, 0xe8, 0x69, 0xc4, 0x00})

	assert.Equal(t, HaltBreak, cpu.Halt())
	assert.Equal(t, uint8(0x84), cpu.A())
	assert.Equal(t, uint8(0xc1), cpu.X())
	assert.Equal(t, uint8(0x00), cpu.Y())
	assert.True(t, cpu.p.isSet(P_Negative))
	assert.True(t, cpu.p.isSet(P_Carry))
	assert.False(t, cpu.p.isSet(P_Zero))
	// $c0 + $c4 = -64 + -60 = -124, representable: no signed overflow
	assert.False(t, cpu.p.isSet(P_Overflow))
}

func TestProgramCountedLoop(t *testing.T) {
	// LDX #$08
	// decrement: DEX; STX $0200; CPX #$03; BNE decrement
	// STX $0201; BRK
	cpu := runProgram(t, 0x400, 0x0300, []uint8{
		0xa2, 0x08,
		0xca,
		0x8e, 0x00, 0x02,
		0xe0, 0x03,
		0xd0, 0xf8,
		0x8e, 0x01, 0x02,
		0x00,
	})

	assert.Equal(t, HaltBreak, cpu.Halt())
	assert.Equal(t, uint8(0x03), cpu.X())
	assert.Equal(t, uint8(0x03), peek(t, cpu, 0x0200))
	assert.Equal(t, uint8(0x03), peek(t, cpu, 0x0201))
	assert.True(t, cpu.p.isSet(P_Zero))
	assert.True(t, cpu.p.isSet(P_Carry))
}

func TestProgramIndexedIndirect(t *testing.T) {
	// LDX #$01; LDA #$05; STA $01; LDA #$03; STA $02; LDY #$0a;
	// STY $0305; LDA ($00,X)
	// the pointer assembled in $01/$02 leads to $0305
	cpu := runProgram(t, 0x400, 0x0300, []uint8{
		0xa2, 0x01,
		0xa9, 0x05,
		0x85, 0x01,
		0xa9, 0x03,
		0x85, 0x02,
		0xa0, 0x0a,
		0x8c, 0x05, 0x03,
		0xa1, 0x00,
	})

	assert.Equal(t, HaltBreak, cpu.Halt())
	assert.Equal(t, uint8(0x0a), peek(t, cpu, 0x0305))
	assert.Equal(t, uint8(0x0a), cpu.A())
}

func TestProgramSubroutines(t *testing.T) {
	// JSR init; JSR loop; JSR end
	// init: LDX #$00; RTS
	// loop: INX; CPX #$05; BNE loop; RTS
	// end:  BRK
	cpu := runProgram(t, 0x400, 0x0300, []uint8{
		0x20, 0x09, 0x03,
		0x20, 0x0c, 0x03,
		0x20, 0x12, 0x03,
		0xa2, 0x00,
		0x60,
		0xe8,
		0xe0, 0x05,
		0xd0, 0xfb,
		0x60,
		0x00,
		0x00,
	})

	assert.Equal(t, HaltBreak, cpu.Halt())
	assert.Equal(t, uint8(0x05), cpu.X())
	assert.Equal(t, uint16(0x0313), cpu.PC())
	// the final subroutine BRKs without returning, so its return
	// address is still parked on the stack
	assert.Equal(t, uint8(0xfd), cpu.S())
}

func TestProgramCompareSemantics(t *testing.T) {
	cpu := setup(t, []uint8{
		0xa9, 0x40, // LDA #$40
		0xc9, 0x40, // CMP #$40
		0xc9, 0x41, // CMP #$41
		0xc9, 0x3f, // CMP #$3f
	}, nil)

	step(t, cpu, 2)
	assert.True(t, cpu.p.isSet(P_Zero))
	assert.True(t, cpu.p.isSet(P_Carry))
	assert.False(t, cpu.p.isSet(P_Negative))

	step(t, cpu, 1)
	assert.False(t, cpu.p.isSet(P_Zero))
	assert.False(t, cpu.p.isSet(P_Carry))
	assert.True(t, cpu.p.isSet(P_Negative))

	step(t, cpu, 1)
	assert.False(t, cpu.p.isSet(P_Zero))
	assert.True(t, cpu.p.isSet(P_Carry))
	assert.False(t, cpu.p.isSet(P_Negative))
}

func TestTrapDetectorHaltsTightLoop(t *testing.T) {
	cpu := New(0x400)
	cpu.SetTrace(io.Discard)
	cpu.TrapDetector = true

	// JMP $0300 parked on itself
	require.NoError(t, cpu.Load([]uint8{0x4c, 0x00, 0x03}, 0x0300))
	cpu.SetEntry(0x0300)

	require.NoError(t, cpu.Run(false))
	assert.Equal(t, HaltTrap, cpu.Halt())
}

// algebraic round trips

func TestTransferRoundTrip(t *testing.T) {
	cpu := setup(t, []uint8{0xaa, 0x8a}, nil) // TAX TXA
	cpu.a = 0x80

	step(t, cpu, 2)

	assert.Equal(t, uint8(0x80), cpu.A())
	assert.Equal(t, uint8(0x80), cpu.X())
	assert.True(t, cpu.p.isSet(P_Negative))
	assert.False(t, cpu.p.isSet(P_Zero))
}

func TestStackRoundTrip(t *testing.T) {
	// PHA; LDA #$00; PLA
	cpu := setup(t, []uint8{0x48, 0xa9, 0x00, 0x68}, nil)
	cpu.a = 0x42

	step(t, cpu, 4)

	assert.Equal(t, uint8(0x42), cpu.A())
	assert.Equal(t, uint8(0xff), cpu.S())
	// the flags reflect the restored accumulator, not the LDA #$00
	assert.False(t, cpu.p.isSet(P_Zero))
	assert.False(t, cpu.p.isSet(P_Negative))
}

func TestIncDecRoundTrip(t *testing.T) {
	cpu := setup(t, []uint8{0xe8, 0xca}, nil) // INX DEX
	cpu.x = 0x41

	step(t, cpu, 2)
	assert.Equal(t, uint8(0x41), cpu.X())
}
