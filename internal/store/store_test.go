package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/projboard/internal/model"
)

func TestAddProjectStoresOneActiveProject(t *testing.T) {
	s := New(nil)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		p := s.AddProject("Build API", "Implement REST endpoints", 3)
		assert.Equal(t, model.Active, p.Status)
		assert.False(t, seen[p.ID], "id reused: %s", p.ID)
		seen[p.ID] = true

		got := s.Projects()
		require.Len(t, got, i+1)
		assert.Equal(t, p, got[i])
	}
}

func TestListenersFireInRegistrationOrderWithSameSnapshot(t *testing.T) {
	s := New(nil)
	var order []string
	var snapshots [][]model.Project
	for _, name := range []string{"a", "b", "c"} {
		s.AddListener(func(ps []model.Project) {
			order = append(order, name)
			snapshots = append(snapshots, ps)
		})
	}

	s.AddProject("one", "first project", 1)

	assert.Equal(t, []string{"a", "b", "c"}, order)
	require.Len(t, snapshots, 3)
	assert.Equal(t, snapshots[0], snapshots[1])
	assert.Equal(t, snapshots[1], snapshots[2])
}

func TestLateListenerSeesSameSequenceAsEarlierOnes(t *testing.T) {
	s := New(nil)
	var early, late []model.Project
	s.AddListener(func(ps []model.Project) { early = ps })
	s.AddProject("one", "first project", 1)
	s.AddProject("two", "second project", 2)

	s.AddListener(func(ps []model.Project) { late = ps })
	s.AddProject("three", "third project", 3)

	require.Len(t, late, 3)
	assert.Equal(t, early, late)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(nil)
	var first, second []model.Project
	s.AddListener(func(ps []model.Project) {
		ps[0].Title = "mutated"
		first = ps
	})
	s.AddListener(func(ps []model.Project) { second = ps })

	s.AddProject("one", "first project", 1)

	assert.Equal(t, "mutated", first[0].Title)
	assert.Equal(t, "one", second[0].Title)
	assert.Equal(t, "one", s.Projects()[0].Title)

	snap := s.Projects()
	s.AddProject("two", "second project", 2)
	assert.Len(t, snap, 1)
}

func TestDuplicateListenerFiresTwice(t *testing.T) {
	s := New(nil)
	calls := 0
	fn := func([]model.Project) { calls++ }
	s.AddListener(fn)
	s.AddListener(fn)

	s.AddProject("one", "first project", 1)
	assert.Equal(t, 2, calls)
}

func TestReentrantAddIsQueued(t *testing.T) {
	s := New(nil)
	var a, b []int
	s.AddListener(func(ps []model.Project) {
		a = append(a, len(ps))
		if len(ps) == 1 {
			s.AddProject("nested", "added from a listener", 2)
		}
	})
	s.AddListener(func(ps []model.Project) { b = append(b, len(ps)) })

	s.AddProject("outer", "first project", 1)

	// Both listeners finish the first notification before the nested one runs.
	assert.Equal(t, []int{1, 2}, a)
	assert.Equal(t, []int{1, 2}, b)
	assert.Equal(t, 2, s.Len())
}

func TestPanickingListenerDoesNotWedgeStore(t *testing.T) {
	s := New(nil)
	boom := true
	calls := 0
	s.AddListener(func([]model.Project) {
		calls++
		if boom {
			boom = false
			panic("listener failed")
		}
	})

	assert.Panics(t, func() { s.AddProject("one", "first project", 1) })
	s.AddProject("two", "second project", 2)
	assert.Equal(t, 2, calls)
}

func TestConcurrentAdds(t *testing.T) {
	s := New(nil)
	var mu sync.Mutex
	lastLen := 0
	s.AddListener(func(ps []model.Project) {
		mu.Lock()
		if len(ps) > lastLen {
			lastLen = len(ps)
		}
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddProject("p", "concurrent project", 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 50, lastLen)
}
