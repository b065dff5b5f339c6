package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countActive(states []bool) int {
	n := 0
	for _, s := range states {
		if s {
			n++
		}
	}
	return n
}

func TestNewTabSet(t *testing.T) {
	_, err := NewTabSet()
	assert.Error(t, err)

	_, err = NewTabSet("curl", "curl")
	assert.Error(t, err)

	tabs, err := NewTabSet("curl", "python", "javascript")
	require.NoError(t, err)
	assert.Equal(t, "curl", tabs.Active(), "first tab is active initially")
	assert.Equal(t, []bool{true, false, false}, tabs.States())
}

func TestTabSet_Activate(t *testing.T) {
	tabs, err := NewTabSet("curl", "python", "javascript")
	require.NoError(t, err)

	require.NoError(t, tabs.Activate("python"))
	assert.True(t, tabs.IsActive("python"))
	assert.False(t, tabs.IsActive("curl"))
	assert.Equal(t, []bool{false, true, false}, tabs.States())

	assert.Error(t, tabs.Activate("ruby"))
	assert.Equal(t, "python", tabs.Active(), "unknown tab leaves selection unchanged")
}

func TestTabSet_ExactlyOneActiveAfterAnySequence(t *testing.T) {
	names := []string{"curl", "python", "javascript"}
	tabs, err := NewTabSet(names...)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	candidates := append(names, "unknown", "")
	for i := 0; i < 500; i++ {
		_ = tabs.Activate(candidates[rng.Intn(len(candidates))])
		require.Equal(t, 1, countActive(tabs.States()))
	}
}

func TestTabSet_NamesIsCopy(t *testing.T) {
	tabs, _ := NewTabSet("a", "b")
	names := tabs.Names()
	names[0] = "z"
	assert.Equal(t, []string{"a", "b"}, tabs.Names())
}
