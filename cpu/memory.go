package cpu

import (
	"errors"
	"fmt"
	"io"
)

/*
memory is addressed in 256-byte pages; a 16 bit
address is a page byte followed by an offset byte

page 0 aka Zero Page is a special page for quick
access, as addressing it only requires a 1 byte
operand rather than two

page 1 ($0100-$01ff) holds the stack

unlike the hardware, an emulated machine may be
built with less than the full 64k; every access is
bounds checked against the built size
*/

var ErrOutOfBounds = errors.New("memory access out of bounds")

// Memory is flat storage of a fixed size. It performs no address
// wrapping of its own; zero page and program counter wrapping are
// the caller's concern.
type Memory struct {
	cells []uint8
}

func NewMemory(size int) *Memory {
	return &Memory{cells: make([]uint8, size)}
}

func (m *Memory) Size() int {
	return len(m.cells)
}

// Peek reads the byte at address.
func (m *Memory) Peek(address uint16) (uint8, error) {
	if int(address) >= len(m.cells) {
		return 0, fmt.Errorf("peek $%04x: %w", address, ErrOutOfBounds)
	}
	return m.cells[address], nil
}

// Poke writes one byte at address.
func (m *Memory) Poke(address uint16, value uint8) error {
	if int(address) >= len(m.cells) {
		return fmt.Errorf("poke $%04x: %w", address, ErrOutOfBounds)
	}
	m.cells[address] = value
	return nil
}

// Load copies src into memory starting at offset.
func (m *Memory) Load(src []uint8, offset uint16) error {
	if int(offset)+len(src) > len(m.cells) {
		return fmt.Errorf("load %d bytes at $%04x: %w", len(src), offset, ErrOutOfBounds)
	}
	copy(m.cells[offset:], src)
	return nil
}

// Store copies len(dst) bytes out of memory starting at offset.
func (m *Memory) Store(dst []uint8, offset uint16) error {
	if int(offset)+len(dst) > len(m.cells) {
		return fmt.Errorf("store %d bytes at $%04x: %w", len(dst), offset, ErrOutOfBounds)
	}
	copy(dst, m.cells[offset:])
	return nil
}

// Reset zeroes every cell.
func (m *Memory) Reset() {
	for i := range m.cells {
		m.cells[i] = 0
	}
}

// Dump writes a hex listing of the whole memory to w, 16 bytes per
// row with an ASCII gutter. Diagnostic output only; the format is
// not a contract.
func (m *Memory) Dump(w io.Writer) {
	for row := 0; row < len(m.cells); row += 16 {
		end := row + 16
		if end > len(m.cells) {
			end = len(m.cells)
		}

		fmt.Fprintf(w, "%04x |", row)
		for i := row; i < end; i++ {
			fmt.Fprintf(w, " %02x", m.cells[i])
		}
		fmt.Fprint(w, " | ")
		for i := row; i < end; i++ {
			b := m.cells[i]
			if b < 0x20 || b > 0x7e {
				b = '.'
			}
			fmt.Fprintf(w, "%c", b)
		}
		fmt.Fprintln(w)
	}
}
