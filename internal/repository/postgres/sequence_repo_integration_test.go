//go:build integration

package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sarabun/internal/repository/postgres"
	"sarabun/internal/testutil"
)

func TestSequenceRepo_SequentialAllocations(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := postgres.NewSequenceRepo(db, 3*time.Second)
	ctx := context.Background()

	for want := 1; want <= 7; want++ {
		got, err := repo.Next(ctx, "ชร", 2568)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	last, err := repo.Peek(ctx, "ชร", 2568)
	require.NoError(t, err)
	assert.Equal(t, 7, last)
}

func TestSequenceRepo_SeriesAreIndependent(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := postgres.NewSequenceRepo(db, 3*time.Second)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Next(ctx, "ชร", 2568)
		require.NoError(t, err)
	}

	got, err := repo.Next(ctx, "ชร", 2569)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "a new year starts its own series at 1")

	got, err = repo.Next(ctx, "นบ", 2568)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "a new prefix starts its own series at 1")

	last, err := repo.Peek(ctx, "ชร", 2568)
	require.NoError(t, err)
	assert.Equal(t, 3, last)
}

func TestSequenceRepo_PeekBeforeFirstAllocation(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := postgres.NewSequenceRepo(db, 3*time.Second)

	last, err := repo.Peek(context.Background(), "ชร", 2568)
	require.NoError(t, err)
	assert.Equal(t, 0, last)
}

func TestSequenceRepo_ConcurrentAllocations(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := postgres.NewSequenceRepo(db, 30*time.Second)
	ctx := context.Background()

	const workers = 50
	numbers := make(chan int, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := repo.Next(ctx, "ชร", 2568)
			if err != nil {
				errs <- err
				return
			}
			numbers <- n
		}()
	}
	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		t.Fatalf("allocation failed: %v", err)
	}

	seen := make(map[int]bool, workers)
	for n := range numbers {
		require.False(t, seen[n], "number %d issued twice", n)
		seen[n] = true
	}
	require.Len(t, seen, workers)
	for n := 1; n <= workers; n++ {
		assert.True(t, seen[n], "number %d never issued", n)
	}

	last, err := repo.Peek(ctx, "ชร", 2568)
	require.NoError(t, err)
	assert.Equal(t, workers, last)
}
