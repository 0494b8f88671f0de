package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweepRangeOrder(t *testing.T) {
	r := SweepRange{MinLength: 3, MinWidth: 3, MinHeight: 4, MaxHeight: 5}

	assert.Equal(t, []Dimensions{
		{3, 3, 4}, {3, 4, 4}, {4, 4, 4},
		{3, 3, 5}, {3, 4, 5}, {4, 4, 5}, {3, 5, 5}, {4, 5, 5}, {5, 5, 5},
	}, r.Dimensions())
}

func TestDefaultSweepRangeCoversEveryShapeOnce(t *testing.T) {
	dims := DefaultSweepRange().Dimensions()
	seen := map[Dimensions]bool{}
	for _, d := range dims {
		assert.NoError(t, d.Validate())
		assert.False(t, seen[d], "duplicate %s", d)
		seen[d] = true
		assert.LessOrEqual(t, d.Length, d.Width)
		assert.LessOrEqual(t, d.Width, d.Height)
	}
	assert.Equal(t, Dimensions{3, 3, 4}, dims[0])
	assert.Equal(t, Dimensions{18, 18, 18}, dims[len(dims)-1])
}

func TestNewStudy(t *testing.T) {
	s := NewStudy("", GetPhysicsProfile("Doubled Steam"), DefaultSweepRange())
	assert.Equal(t, "Untitled", s.Name)
	assert.Len(t, s.ID, 36)
	assert.Equal(t, "Doubled Steam", s.ProfileName)
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)
	assert.NotNil(t, s.Rows)
}
