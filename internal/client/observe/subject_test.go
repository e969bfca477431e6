package observe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubject_NotifiesInOrder(t *testing.T) {
	var s Subject[int]
	var got []string

	s.Subscribe(func(v int) { got = append(got, "a") })
	s.Subscribe(func(v int) { got = append(got, "b") })
	s.Notify(1)

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSubject_Unsubscribe(t *testing.T) {
	var s Subject[string]
	var seen []string

	unsub := s.Subscribe(func(v string) { seen = append(seen, v) })
	s.Notify("one")
	unsub()
	unsub()
	s.Notify("two")

	assert.Equal(t, []string{"one"}, seen)
	assert.Empty(t, s.subs)
}

func TestSubject_UnsubscribeFromCallback(t *testing.T) {
	var s Subject[int]
	calls := 0

	var unsub func()
	unsub = s.Subscribe(func(int) {
		calls++
		unsub()
	})

	s.Notify(1)
	s.Notify(2)
	assert.Equal(t, 1, calls)
}
