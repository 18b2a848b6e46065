package bento

// bitmask256 represents up to 256 component bits. Each archetype is uniquely
// identified by the mask of component IDs it stores.
type bitmask256 [4]uint64

func (m *bitmask256) set(bit uint8) {
	i := bit / 64
	o := bit % 64
	m[i] |= 1 << o
}

func (m *bitmask256) unset(bit uint8) {
	i := bit / 64
	o := bit % 64
	m[i] &= ^(1 << o)
}

// contains checks if all bits in sub are set in m.
func (m bitmask256) contains(sub bitmask256) bool {
	return (m[0]&sub[0]) == sub[0] &&
		(m[1]&sub[1]) == sub[1] &&
		(m[2]&sub[2]) == sub[2] &&
		(m[3]&sub[3]) == sub[3]
}

// containsBit checks if a specific bit is set in the mask.
func (m bitmask256) containsBit(bit uint8) bool {
	i := bit / 64
	o := bit % 64
	return (m[i] & (1 << o)) != 0
}
