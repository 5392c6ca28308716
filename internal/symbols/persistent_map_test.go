package symbols

import (
	"fmt"
	"testing"

	"github.com/funvibe/tyck/internal/typesystem"
)

// collidingKey always hashes to the same bucket, forcing the HAMT
// down its collision path.
type collidingKey struct {
	name string
}

func (k collidingKey) Hash() uint32 { return 42 }

func TestPersistentMapPutGet(t *testing.T) {
	m := emptyMap()
	for i := 0; i < 200; i++ {
		m = m.Put(LocalRef(fmt.Sprintf("f%d", i), i%5), intScheme(fmt.Sprintf("v%d", i)))
	}
	if m.Len() != 200 {
		t.Fatalf("Len = %d, want 200", m.Len())
	}
	for i := 0; i < 200; i++ {
		s, ok := m.Get(LocalRef(fmt.Sprintf("f%d", i), i%5))
		if !ok || s.Body.String() != fmt.Sprintf("v%d", i) {
			t.Errorf("Get(f%d) = %v, %v", i, s, ok)
		}
	}
	if _, ok := m.Get(LocalRef("f0", 1)); ok {
		t.Errorf("Get with wrong arity should miss")
	}
}

func TestPersistentMapOverwrite(t *testing.T) {
	key := LocalRef("f", 1)
	m := emptyMap().Put(key, intScheme("a")).Put(key, intScheme("b"))
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
	if s, _ := m.Get(key); s.Body.String() != "b" {
		t.Errorf("Get = %v, want b", s)
	}
}

func TestPersistentMapStructuralSharing(t *testing.T) {
	m1 := emptyMap().Put(LocalRef("f", 1), intScheme("a"))
	m2 := m1.Put(LocalRef("g", 2), intScheme("b"))

	if m1.Len() != 1 || m2.Len() != 2 {
		t.Fatalf("Len = %d, %d; want 1, 2", m1.Len(), m2.Len())
	}
	if _, ok := m1.Get(LocalRef("g", 2)); ok {
		t.Errorf("older map sees newer insertion")
	}
}

func TestPersistentMapHashCollisions(t *testing.T) {
	m := emptyMap()
	for i := 0; i < 50; i++ {
		m = m.Put(collidingKey{name: fmt.Sprintf("k%d", i)}, intScheme(fmt.Sprintf("v%d", i)))
	}
	if m.Len() != 50 {
		t.Fatalf("Len = %d, want 50", m.Len())
	}
	for i := 0; i < 50; i++ {
		s, ok := m.Get(collidingKey{name: fmt.Sprintf("k%d", i)})
		if !ok || s.Body.String() != fmt.Sprintf("v%d", i) {
			t.Errorf("Get(k%d) = %v, %v", i, s, ok)
		}
	}

	// Overwrite inside a collision bucket.
	m = m.Put(collidingKey{name: "k7"}, intScheme("new"))
	if m.Len() != 50 {
		t.Errorf("Len after overwrite = %d, want 50", m.Len())
	}
	if s, _ := m.Get(collidingKey{name: "k7"}); s.Body.String() != "new" {
		t.Errorf("Get(k7) = %v, want new", s)
	}
}

func TestPersistentMapKeys(t *testing.T) {
	m := emptyMap().
		Put(LocalRef("f", 1), typesystem.Scheme{}).
		Put(LocalRef("g", 2), typesystem.Scheme{})

	keys := m.Keys()
	if len(keys) != 2 {
		t.Fatalf("Keys = %v, want 2 entries", keys)
	}
	seen := map[Key]bool{}
	for _, k := range keys {
		seen[k] = true
	}
	if !seen[LocalRef("f", 1)] || !seen[LocalRef("g", 2)] {
		t.Errorf("Keys = %v", keys)
	}
}
