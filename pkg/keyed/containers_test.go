package keyed

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contract struct {
	Title string
}

func ssn(p person) string { return p.SSN }

func TestMap_CollidingKeysOverwrite(t *testing.T) {
	t.Parallel()

	mem := memory.New()
	contracts := NewMap[string, person, contract](
		WithLogger(&log.Logger{Handler: mem, Level: log.DebugLevel}))

	first := NewHashable(zack.SSN, zack)
	impostor := NewHashable(zack.SSN, person{SSN: zack.SSN, Name: "Not Zack", Age: 50})

	assert.False(t, contracts.Set(first, contract{Title: "lease"}))
	assert.True(t, contracts.Set(impostor, contract{Title: "loan"}))

	require.Equal(t, 1, contracts.Len(), "exactly one entry must remain")
	got, ok := contracts.Get(first)
	require.True(t, ok)
	assert.Equal(t, "loan", got.Title)

	stored, ok := contracts.Lookup(NewHashable(zack.SSN, person{}))
	require.True(t, ok)
	assert.Equal(t, "Not Zack", stored.Item().Name)

	require.Len(t, mem.Entries, 1)
	assert.Equal(t, log.DebugLevel, mem.Entries[0].Level)
}

func TestMap_GetContainsDeleteAll(t *testing.T) {
	t.Parallel()

	m := NewMap[string, person, int](WithCapacity(4), WithLogger(nil))
	build := HashableBuilder(ssn)
	for i, p := range []person{zack, zoey, zed} {
		m.Set(build(p), i)
	}

	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Contains(NewHashable("321", person{})))
	_, ok := m.Get(NewHashable("000", person{}))
	assert.False(t, ok)

	seen := map[string]int{}
	for k, v := range m.All() {
		seen[k.Item().Name] = v
	}
	assert.Equal(t, map[string]int{"Zack": 0, "Zoey": 1, "Zed": 2}, seen)

	count := 0
	for range m.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)

	assert.True(t, m.Delete(build(zoey)))
	assert.False(t, m.Delete(build(zoey)))
	assert.Equal(t, 2, m.Len())
}

func TestMap_UUIDKeys(t *testing.T) {
	t.Parallel()

	type account struct {
		ID    uuid.UUID
		Owner string
	}
	byID := HashableBuilder(func(a account) uuid.UUID { return a.ID })

	id := uuid.New()
	m := NewMap[uuid.UUID, account, float64]()
	m.Set(byID(account{ID: id, Owner: "zack"}), 10)
	m.Set(byID(account{ID: uuid.New(), Owner: "zoey"}), 20)
	m.Set(byID(account{ID: id, Owner: "zack, renamed"}), 30)

	assert.Equal(t, 2, m.Len())
	v, ok := m.Get(NewHashable(id, account{}))
	require.True(t, ok)
	assert.Equal(t, 30.0, v)
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := SetOf(name, person{Name: "Zoey", Age: 9}, zack, person{Name: "Zoey", Age: 30})
	assert.Equal(t, 2, s.Len())
	assert.ElementsMatch(t, []string{"Zoey", "Zack"}, names(s.Items()))

	found := s.Find(NewHashable("Zoey", person{}))
	require.True(t, found.IsSome())
	assert.Equal(t, 30, found.Unwrap().Item().Age)
	assert.True(t, s.Find(NewHashable("Nobody", person{})).IsNone())

	assert.True(t, s.Add(NewHashable("Zed", zed)))
	assert.False(t, s.Add(NewHashable("Zed", zed)))
	assert.True(t, s.Contains(NewHashable("Zed", person{})))
	assert.True(t, s.Remove(NewHashable("Zed", person{})))
	assert.False(t, s.Contains(NewHashable("Zed", person{})))
}

func TestZeroValueContainers(t *testing.T) {
	t.Parallel()

	t.Run("Map", func(t *testing.T) {
		var m Map[string, person, int]
		assert.Equal(t, 0, m.Len())
		assert.False(t, m.Contains(NewHashable(zack.SSN, zack)))

		assert.False(t, m.Set(NewHashable(zack.SSN, zack), 1))
		assert.True(t, m.Set(NewHashable(zack.SSN, zack), 2))
		got, ok := m.Get(NewHashable(zack.SSN, person{}))
		require.True(t, ok)
		assert.Equal(t, 2, got)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("Set", func(t *testing.T) {
		var s Set[string, person]
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Items())
		assert.True(t, s.Find(NewHashable("Zoey", person{})).IsNone())

		assert.True(t, s.Add(NewHashable("Zoey", zoey)))
		assert.True(t, s.Contains(NewHashable("Zoey", person{})))
		assert.Equal(t, 1, s.Len())
	})
}

func TestHeap(t *testing.T) {
	t.Parallel()

	t.Run("min-heap by AsComparable", func(t *testing.T) {
		build := ComparableBuilder(age)
		h := NewHeap(build(zack), build(zoey))
		h.Push(build(zed))

		top, ok := h.Peek()
		require.True(t, ok)
		assert.Equal(t, "Zed", top.Item().Name)
		assert.Equal(t, 3, h.Len())

		var got []string
		for h.Len() > 0 {
			p, _ := h.Pop()
			got = append(got, p.Item().Name)
		}
		assert.Equal(t, []string{"Zed", "Zoey", "Zack"}, got)
	})

	t.Run("max-heap by AsComparableInvert", func(t *testing.T) {
		h := NewHeap(Invert([]int{4, 10, 9})...)
		var got []int
		for {
			v, ok := h.Pop()
			if !ok {
				break
			}
			got = append(got, v.Key())
		}
		assert.Equal(t, []int{10, 9, 4}, got)
	})

	t.Run("empty heap", func(t *testing.T) {
		h := NewHeap[AsComparableInvert[int]]()
		_, ok := h.Peek()
		assert.False(t, ok)
		_, ok = h.Pop()
		assert.False(t, ok)
	})
}
