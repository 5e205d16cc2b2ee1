package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotator_CyclesInOrder(t *testing.T) {
	order := []string{"a", "b", "c"}
	var r Rotator

	current := ""
	var visited []string
	for i := 0; i < 6; i++ {
		current = r.Next(order, current)
		visited = append(visited, current)
	}

	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, visited)
}

func TestRotator_SingleMember(t *testing.T) {
	var r Rotator
	assert.Equal(t, "a", r.Next([]string{"a"}, ""))
	assert.Equal(t, "a", r.Next([]string{"a"}, "a"))
}

func TestRotator_MemberLeftMidCycle(t *testing.T) {
	var r Rotator

	order := []string{"a", "b", "c"}
	current := r.Next(order, "") // a
	current = r.Next(order, current)
	assert.Equal(t, "b", current)

	// b leaves while holding no turn relevance; the rotator must keep
	// terminating and never hand the turn to the departed id.
	order = []string{"a", "c"}
	for i := 0; i < 10; i++ {
		current = r.Next(order, current)
		assert.NotEqual(t, "b", current)
		assert.Contains(t, order, current)
	}
}

func TestRotator_EmptyOrder(t *testing.T) {
	var r Rotator
	assert.Equal(t, "", r.Next(nil, "a"))
}
