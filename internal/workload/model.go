package workload

// model is the reference the deque is checked against. The front half is
// stored reversed so both ends can be pushed and popped cheaply.
type model struct {
	front []int
	back  []int
}

func (m *model) size() int {
	return len(m.front) + len(m.back)
}

func (m *model) pushBack(v int)  { m.back = append(m.back, v) }
func (m *model) pushFront(v int) { m.front = append(m.front, v) }

// popBack returns the last element. The model must not be empty.
func (m *model) popBack() int {
	if len(m.back) == 0 {
		v := m.front[0]
		m.front = m.front[1:]
		return v
	}

	v := m.back[len(m.back)-1]
	m.back = m.back[:len(m.back)-1]
	return v
}

// popFront returns the first element. The model must not be empty.
func (m *model) popFront() int {
	if len(m.front) == 0 {
		v := m.back[0]
		m.back = m.back[1:]
		return v
	}

	v := m.front[len(m.front)-1]
	m.front = m.front[:len(m.front)-1]
	return v
}

func (m *model) values() []int {
	out := make([]int, 0, m.size())
	for i := len(m.front) - 1; i >= 0; i-- {
		out = append(out, m.front[i])
	}
	return append(out, m.back...)
}
