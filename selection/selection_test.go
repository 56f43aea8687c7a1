package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle_ReserveScenario(t *testing.T) {
	var reserved Set

	reserved = reserved.Toggle("2")
	assert.Equal(t, []string{"2"}, reserved.IDs())

	reserved = reserved.Toggle("2")
	assert.Equal(t, []string{}, reserved.IDs())
}

func TestToggle_SelfInverse(t *testing.T) {
	sets := []Set{
		{},
		Of("1"),
		Of("1", "2", "3"),
		Of("3", "1"),
	}
	ids := []string{"1", "2", "3", "unknown", ""}

	for _, s := range sets {
		for _, id := range ids {
			twice := s.Toggle(id).Toggle(id)
			assert.True(t, twice.Equal(s), "toggle(toggle(%v, %q)) = %v", s.IDs(), id, twice.IDs())
		}
	}
}

func TestToggle_DoesNotModifyReceiver(t *testing.T) {
	s := Of("1", "2")

	_ = s.Toggle("1")
	_ = s.Toggle("3")

	assert.Equal(t, []string{"1", "2"}, s.IDs())
}

func TestToggle_AppendsInInsertionOrder(t *testing.T) {
	s := Set{}.Toggle("3").Toggle("1").Toggle("2")

	assert.Equal(t, []string{"3", "1", "2"}, s.IDs())
	assert.True(t, s.Has("1"))
	assert.False(t, s.Has("4"))
	assert.Equal(t, 3, s.Len())
}

func TestOf_DropsDuplicates(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, Of("1", "2", "1").IDs())
}

func TestSets_AreIndependent(t *testing.T) {
	var reserved, wantToRead Set

	reserved = reserved.Toggle("2")
	wantToRead = wantToRead.Toggle("2").Toggle("3")

	assert.Equal(t, []string{"2"}, reserved.IDs())
	assert.Equal(t, []string{"2", "3"}, wantToRead.IDs())
}
