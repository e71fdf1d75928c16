package cpu

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRAMSize         = 0x10000
	programStart uint16 = 0x0300
)

// setup builds a CPU with the program loaded at programStart, any
// bootstrap memory mapped over, and the entry point set.
func setup(t *testing.T, program []uint8, bootstrap map[uint16]uint8) *CPU {
	t.Helper()

	cpu := New(testRAMSize)
	cpu.SetTrace(io.Discard)

	require.NoError(t, cpu.Load(program, programStart))
	for address, v := range bootstrap {
		require.NoError(t, cpu.Poke(address, v))
	}

	cpu.SetEntry(programStart)
	return cpu
}

// step executes n instructions, all of which must continue cleanly
func step(t *testing.T, cpu *CPU, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		ok, err := cpu.Step()
		require.NoError(t, err)
		require.True(t, ok, "unexpected halt: %s", cpu.Halt())
	}
}

// helper functions to take pointers for optional setup/expect fields
func newUint8(v uint8) *uint8 { return &v }

func newUint16(v uint16) *uint16 { return &v }

func newBool(b bool) *bool { return &b }

// test case
type testCase struct {
	name string
	// program to load at programStart
	program []uint8
	// bootstrap memory
	memory map[uint16]uint8

	// setup registers (nil means leave the reset value)
	setupA *uint8
	setupX *uint8
	setupY *uint8
	setupS *uint8

	// setup flags
	setupCarry    *bool
	setupZero     *bool
	setupOverflow *bool
	setupNegative *bool

	// instructions to execute (default 1)
	steps int

	// expect flags
	expectCarry    bool
	expectZero     bool
	expectOverflow bool
	expectNegative bool
	expectBreak    *bool

	// expect registers (nil means do not check)
	expectA  *uint8
	expectX  *uint8
	expectY  *uint8
	expectS  *uint8
	expectPC *uint16

	// expect memory cells
	expectMemory map[uint16]uint8
}

func (tc *testCase) run(t *testing.T) {
	t.Helper()

	cpu := setup(t, tc.program, tc.memory)

	if tc.setupA != nil {
		cpu.a = *tc.setupA
	}
	if tc.setupX != nil {
		cpu.x = *tc.setupX
	}
	if tc.setupY != nil {
		cpu.y = *tc.setupY
	}
	if tc.setupS != nil {
		cpu.s = *tc.setupS
	}

	if tc.setupCarry != nil {
		cpu.p.set(P_Carry, *tc.setupCarry)
	}
	if tc.setupZero != nil {
		cpu.p.set(P_Zero, *tc.setupZero)
	}
	if tc.setupOverflow != nil {
		cpu.p.set(P_Overflow, *tc.setupOverflow)
	}
	if tc.setupNegative != nil {
		cpu.p.set(P_Negative, *tc.setupNegative)
	}

	steps := tc.steps
	if steps == 0 {
		steps = 1
	}
	step(t, cpu, steps)

	// registers
	if tc.expectA != nil {
		assert.Equal(t, *tc.expectA, cpu.a, "A")
	}
	if tc.expectX != nil {
		assert.Equal(t, *tc.expectX, cpu.x, "X")
	}
	if tc.expectY != nil {
		assert.Equal(t, *tc.expectY, cpu.y, "Y")
	}
	if tc.expectS != nil {
		assert.Equal(t, *tc.expectS, cpu.s, "S")
	}
	if tc.expectPC != nil {
		assert.Equal(t, *tc.expectPC, cpu.pc, "PC")
	}

	// flags
	assert.Equal(t, tc.expectCarry, cpu.p.isSet(P_Carry), "carry")
	assert.Equal(t, tc.expectZero, cpu.p.isSet(P_Zero), "zero")
	assert.Equal(t, tc.expectOverflow, cpu.p.isSet(P_Overflow), "overflow")
	assert.Equal(t, tc.expectNegative, cpu.p.isSet(P_Negative), "negative")
	if tc.expectBreak != nil {
		assert.Equal(t, *tc.expectBreak, cpu.p.isSet(P_Break), "break")
	}
	assert.True(t, cpu.p.isSet(P_Expansion), "expansion bit must stay set")

	// memory
	for address, want := range tc.expectMemory {
		got, err := cpu.Peek(address)
		require.NoError(t, err)
		assert.Equal(t, want, got, "memory $%04x", address)
	}
}

// helper type for running multiple testCases
type testCases []testCase

func (tcs testCases) run(t *testing.T) {
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tc.run(t)
		})
	}
}

func TestReset(t *testing.T) {
	cpu := New(0x400)

	assert.Equal(t, uint8(0), cpu.A())
	assert.Equal(t, uint8(0), cpu.X())
	assert.Equal(t, uint8(0), cpu.Y())
	assert.Equal(t, uint8(0xff), cpu.S())
	assert.Equal(t, uint16(0), cpu.PC())
	assert.Equal(t, uint8(P_Expansion), cpu.P())
	assert.Equal(t, Continue, cpu.Halt())
}

func TestStepHaltsOnBRK(t *testing.T) {
	cpu := setup(t, []uint8{0x00}, nil)

	ok, err := cpu.Step()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, HaltBreak, cpu.Halt())
	assert.True(t, cpu.p.isSet(P_Break))

	// further steps keep reporting the halt
	ok, err = cpu.Step()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStepHaltsOnIllegalInstruction(t *testing.T) {
	cpu := setup(t, []uint8{0xff}, nil)

	ok, err := cpu.Step()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, HaltIllegalInstruction, cpu.Halt())
}

func TestStepFaultsOutOfBounds(t *testing.T) {
	cpu := New(0x400)
	cpu.SetTrace(io.Discard)

	// STA $0500 writes past the end of a 1k machine
	require.NoError(t, cpu.Load([]uint8{0xa9, 0x01, 0x8d, 0x00, 0x05}, programStart))
	cpu.SetEntry(programStart)

	step(t, cpu, 1)
	ok, err := cpu.Step()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, HaltFault, cpu.Halt())
}

func TestStepFaultsOnTruncatedOperand(t *testing.T) {
	// the LDA immediate operand would sit one byte past the end
	cpu := New(0x301)
	cpu.SetTrace(io.Discard)
	require.NoError(t, cpu.Load([]uint8{0xa9}, 0x0300))
	cpu.SetEntry(0x0300)

	ok, err := cpu.Step()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, HaltFault, cpu.Halt())
}

func TestStepFaultsFetchingPastMemoryEnd(t *testing.T) {
	cpu := New(0x10)
	cpu.SetTrace(io.Discard)
	cpu.SetEntry(0x0100)

	ok, err := cpu.Step()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestLoadStoreRoundTrip(t *testing.T) {
	cpu := New(0x400)

	program := []uint8{0xde, 0xad, 0xbe, 0xef}
	require.NoError(t, cpu.Load(program, 0x0200))

	out := make([]uint8, 4)
	require.NoError(t, cpu.Store(out, 0x0200))
	assert.Equal(t, program, out)
}

func TestStackWrapsInsidePageOne(t *testing.T) {
	cpu := setup(t, []uint8{0x48, 0x48}, nil) // PHA PHA
	cpu.a = 0x42
	cpu.s = 0x00

	step(t, cpu, 2)

	assert.Equal(t, uint8(0xfe), cpu.S())
	bottom, err := cpu.Peek(StackBottom)
	require.NoError(t, err)
	top, err := cpu.Peek(StackTop)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), bottom)
	assert.Equal(t, uint8(0x42), top)
}
