package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepper_NextIsNoOpOnLastStep(t *testing.T) {
	s := New(4)
	for i := 0; i < 10; i++ {
		s = s.Next()
		assert.LessOrEqual(t, s.Current, 4)
	}
	assert.Equal(t, 4, s.Current)
	assert.True(t, s.IsLast())
	assert.Equal(t, s, s.Next())
}

func TestStepper_PrevIsNoOpOnFirstStep(t *testing.T) {
	s := New(4)
	assert.True(t, s.IsFirst())
	assert.Equal(t, s, s.Prev())

	s = s.Next().Next().Prev().Prev().Prev()
	assert.Equal(t, 1, s.Current)
}

func TestStepper_IsAValue(t *testing.T) {
	s := New(3)
	next := s.Next()

	assert.Equal(t, 1, s.Current)
	assert.Equal(t, 2, next.Current)
}

func TestAt_Clamps(t *testing.T) {
	assert.Equal(t, 1, At(0, 4).Current)
	assert.Equal(t, 1, At(-3, 4).Current)
	assert.Equal(t, 3, At(3, 4).Current)
	assert.Equal(t, 4, At(99, 4).Current)
	assert.Equal(t, Stepper{Current: 1, Total: 1}, At(5, 0))
}

func TestStepper_Percent(t *testing.T) {
	assert.Equal(t, 25, At(1, 4).Percent())
	assert.Equal(t, 50, At(2, 4).Percent())
	assert.Equal(t, 100, At(4, 4).Percent())
	assert.Equal(t, 33, At(1, 3).Percent())
	assert.Equal(t, 0, Stepper{}.Percent())
}
