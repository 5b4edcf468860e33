package vm

// WordMemory is a flat, bounds-checked array of 32-bit signed words. SDMEM
// and VDMEM are each backed by their own WordMemory; the two address spaces
// never alias.
type WordMemory struct {
	Name string
	data []int32
}

// NewWordMemory allocates a zero-initialized word memory of the given size.
func NewWordMemory(name string, size int) *WordMemory {
	return &WordMemory{Name: name, data: make([]int32, size)}
}

// Size returns the number of addressable words.
func (m *WordMemory) Size() int {
	return len(m.data)
}

// Read returns the word at idx, or an InvalidAddress diagnostic when idx is
// out of range.
func (m *WordMemory) Read(idx int) (int32, error) {
	if idx < 0 || idx >= len(m.data) {
		return 0, newDiag(KindInvalidAddress, -1, "%s: invalid memory access at index %d with memory size %d", m.Name, idx, len(m.data))
	}
	return m.data[idx], nil
}

// Write stores value at idx, or returns an InvalidAddress diagnostic when
// idx is out of range.
func (m *WordMemory) Write(idx int, value int32) error {
	if idx < 0 || idx >= len(m.data) {
		return newDiag(KindInvalidAddress, -1, "%s: invalid memory access at index %d with memory size %d", m.Name, idx, len(m.data))
	}
	m.data[idx] = value
	return nil
}

// LoadImage overwrites the leading words of memory with values, leaving any
// remaining tail at its prior (zero) value. A longer-than-capacity image is
// truncated to Size().
func (m *WordMemory) LoadImage(values []int32) {
	n := len(values)
	if n > len(m.data) {
		n = len(m.data)
	}
	copy(m.data[:n], values[:n])
}

// Words returns the full backing slice in index order, for dumping.
func (m *WordMemory) Words() []int32 {
	return m.data
}
