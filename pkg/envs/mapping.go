package envs

// Mapping is one store's view of one environment: variable names mapped to
// Values, preserving the order in which keys were first set. Iteration order
// is deterministic, which keeps diff output stable across runs.
//
// A Mapping is rebuilt from its backing store on every run and is not safe
// for concurrent use.
type Mapping struct {
	keys   []string
	values map[string]Value
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value)}
}

// Set stores a value under key. Setting an existing key updates the value in
// place and keeps the key's original position.
func (m *Mapping) Set(key string, value Value) {
	if m.values == nil {
		m.values = make(map[string]Value)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key. A key that was never set returns
// the absent Value, so callers can probe without checking membership first.
func (m *Mapping) Get(key string) Value {
	if m == nil || m.values == nil {
		return Absent()
	}
	return m.values[key]
}

// Has reports whether key was ever set, regardless of the value's state.
func (m *Mapping) Has(key string) bool {
	if m == nil || m.values == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Delete removes key from the mapping. Deleting an unknown key is a no-op.
func (m *Mapping) Delete(key string) {
	if m == nil || m.values == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys in the mapping.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Clone returns an independent copy of the mapping.
func (m *Mapping) Clone() *Mapping {
	out := NewMapping()
	if m == nil {
		return out
	}
	for _, k := range m.keys {
		out.Set(k, m.values[k])
	}
	return out
}
