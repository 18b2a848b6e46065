package bento

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessSetAllowForbid(t *testing.T) {
	all := everything[int]()
	assert.True(t, all.allows(1))
	assert.True(t, all.allows(99))

	none := nothing[int]()
	assert.False(t, none.allows(1))

	one := allowOnly(7)
	assert.True(t, one.allows(7))
	assert.False(t, one.allows(8))

	some := allowKeys([]int{1, 2, 3})
	assert.True(t, some.allows(2))
	assert.False(t, some.allows(4))
}

func TestAccessSetWithout(t *testing.T) {
	t.Run("forbid list appends", func(t *testing.T) {
		s := everything[int]().without(5)
		assert.False(t, s.allows(5))
		assert.True(t, s.allows(6))
	})

	t.Run("allow list removes", func(t *testing.T) {
		s := allowKeys([]int{1, 2, 3}).without(2)
		assert.True(t, s.allows(1))
		assert.False(t, s.allows(2))
		assert.True(t, s.allows(3))
	})

	t.Run("missing key panics", func(t *testing.T) {
		s := allowKeys([]int{1})
		assert.Panics(t, func() { s.without(2) })
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		s := allowKeys([]int{1, 2})
		_ = s.without(1)
		assert.True(t, s.allows(1))
	})
}

// Removing several keys must fold into one running set; removing two keys
// from a small allow-list drops both, not just the first.
func TestAccessSetWithoutMany(t *testing.T) {
	s := allowKeys([]int{1, 2, 3}).withoutMany([]int{1, 2})
	assert.False(t, s.allows(1))
	assert.False(t, s.allows(2))
	assert.True(t, s.allows(3))

	f := everything[int]().withoutMany([]int{4, 5})
	assert.False(t, f.allows(4))
	assert.False(t, f.allows(5))
	assert.True(t, f.allows(6))
}
