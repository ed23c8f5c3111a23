package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	assert.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))
}

func TestMapSliceWithError(t *testing.T) {
	got, err := MapSliceWithError([]string{"1", "2"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	_, err = MapSliceWithError([]string{"1", "x"}, strconv.Atoi)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
	assert.Contains(t, err.Error(), "item 1")
}

func TestIndexBy(t *testing.T) {
	type user struct {
		ID          string
		Credibility int
	}
	index := IndexBy([]user{{"usr_a", 50}, {"usr_b", 80}}, func(u user) string { return u.ID })

	assert.Len(t, index, 2)
	assert.Equal(t, 80, index["usr_b"].Credibility)
}
