package logpack

// internTable is an append-only mapping from string value to a dense index.
// Repeated strings (targets, field keys) are written once as a literal and
// referenced by index afterwards. The table is never transmitted: the
// decoder rebuilds an identical one by registering every literal it decodes
// in an interning-eligible position, in the same order as the encoder did.
//
// A table is owned by exactly one encode or decode call and discarded after.
type internTable struct {
	index  map[string]uint64
	values []string
}

func newInternTable() *internTable {
	return &internTable{
		index: make(map[string]uint64),
	}
}

// lookup returns the index for s if it has been registered before.
func (t *internTable) lookup(s string) (uint64, bool) {
	idx, ok := t.index[s]
	return idx, ok
}

// add registers s and returns its newly assigned index.
// Caller must ensure s is not already present.
func (t *internTable) add(s string) uint64 {
	idx := uint64(len(t.values))
	t.index[s] = idx
	t.values = append(t.values, s)
	return idx
}

// get resolves an index back to its string.
func (t *internTable) get(idx uint64) (string, bool) {
	if idx >= uint64(len(t.values)) {
		return "", false
	}
	return t.values[idx], true
}
