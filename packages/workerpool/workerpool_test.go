package workerpool

import (
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_Map(t *testing.T) {
	wp, err := New(4)
	require.NoError(t, err)
	defer wp.Release()

	assert.Equal(t, 4, wp.WorkerCount())

	results := make([]int, 100)
	require.NoError(t, wp.Map(len(results), func(index int) {
		results[index] = index * index
	}))

	for i, result := range results {
		assert.Equal(t, i*i, result)
	}
}

func TestWorkerPool_MapConcurrency(t *testing.T) {
	wp, err := New(0)
	require.NoError(t, err)
	defer wp.Release()

	var mutex sync.Mutex
	seen := make(map[int]int)
	require.NoError(t, wp.Map(1000, func(index int) {
		mutex.Lock()
		defer mutex.Unlock()

		seen[index]++
	}))

	assert.Len(t, seen, 1000)
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}

func TestWorkerPool_Released(t *testing.T) {
	wp, err := New(2)
	require.NoError(t, err)
	wp.Release()

	err = wp.Map(1, func(int) {})
	assert.True(t, errors.Is(err, ErrPoolReleased))
}
