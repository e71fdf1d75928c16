package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPeekPoke(t *testing.T) {
	m := NewMemory(0x100)

	require.NoError(t, m.Poke(0x00ff, 0x42))
	b, err := m.Peek(0x00ff)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), b)
}

func TestMemoryBounds(t *testing.T) {
	m := NewMemory(0x100)

	_, err := m.Peek(0x0100)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	err = m.Poke(0x0100, 0x1)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// the last valid cell is fine
	_, err = m.Peek(0x00ff)
	assert.NoError(t, err)
}

func TestMemoryLoadStore(t *testing.T) {
	m := NewMemory(0x100)

	src := []uint8{1, 2, 3, 4}
	require.NoError(t, m.Load(src, 0x40))

	dst := make([]uint8, 4)
	require.NoError(t, m.Store(dst, 0x40))
	assert.Equal(t, src, dst)

	// straddling the end fails without a partial copy
	err := m.Load(src, 0x00fd)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	b, _ := m.Peek(0x00fd)
	assert.Equal(t, uint8(0), b)

	err = m.Store(dst, 0x00fd)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestMemoryReset(t *testing.T) {
	m := NewMemory(0x10)
	require.NoError(t, m.Poke(0x5, 0xaa))

	m.Reset()

	b, err := m.Peek(0x5)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), b)
	assert.Equal(t, 0x10, m.Size())
}

func TestMemoryDump(t *testing.T) {
	m := NewMemory(0x20)
	require.NoError(t, m.Load([]uint8{'H', 'i'}, 0))

	var buf bytes.Buffer
	m.Dump(&buf)

	// one line per 16-byte row; the content itself is not a contract
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
}
