package splash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallbacksRunOnHide(t *testing.T) {
	var s Screen
	assert.True(t, s.Visible())

	var order []int
	s.OnHidden(func() { order = append(order, 1) })
	s.OnHidden(func() { order = append(order, 2) })
	assert.Empty(t, order)

	s.Hide()
	assert.False(t, s.Visible())
	assert.Equal(t, []int{1, 2}, order)

	s.Show()
	s.Hide()
	assert.Equal(t, []int{1, 2}, order, "callbacks run once")
}

func TestOnHiddenWhenAlreadyHidden(t *testing.T) {
	var s Screen
	s.Hide()

	ran := false
	s.OnHidden(func() { ran = true })
	assert.True(t, ran)
}

func TestCallbackMayRegisterAnother(t *testing.T) {
	var s Screen
	ran := false
	s.OnHidden(func() {
		s.OnHidden(func() { ran = true })
	})

	s.Hide()
	assert.True(t, ran)
}

func TestReset(t *testing.T) {
	var s Screen
	ran := false
	s.OnHidden(func() { ran = true })

	s.Reset()
	assert.True(t, s.Visible())
	s.Hide()
	assert.False(t, ran)
}
