package warninglist

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	wlerrors "github.com/maksimkurb/warninglists/src/internal/errors"
)

func TestNewStore_Empty(t *testing.T) {
	s := NewStore(nil)

	if s.Current() == nil || s.Current().Len() != 0 {
		t.Fatalf("expected empty collection")
	}
	got, err := s.Current().Lookup("10.0.0.1")
	if err != nil || len(got) != 0 {
		t.Errorf("Lookup() = %v, %v", got, err)
	}
}

func TestStore_ReloadIsolation(t *testing.T) {
	v1 := []Definition{{Name: "nets", Type: TypeCIDR, List: []string{"10.0.0.0/8"}}}
	v2 := []Definition{{Name: "nets", Type: TypeCIDR, List: []string{"11.0.0.0/8"}}}

	s := NewStore(mustLoad(t, v1))
	inFlight := s.Current()

	if _, err := s.Reload(v2); err != nil {
		t.Fatal(err)
	}

	got, _ := inFlight.Lookup("10.1.2.3")
	if !reflect.DeepEqual(got, []string{"nets"}) {
		t.Errorf("old collection changed after reload: %v", got)
	}
	got, _ = s.Current().Lookup("10.1.2.3")
	if len(got) != 0 {
		t.Errorf("new collection still matches old data: %v", got)
	}
	got, _ = s.Current().Lookup("11.1.2.3")
	if !reflect.DeepEqual(got, []string{"nets"}) {
		t.Errorf("new collection misses new data: %v", got)
	}
}

func TestStore_FailedReloadKeepsPrevious(t *testing.T) {
	s := NewStore(mustLoad(t, []Definition{{Name: "a", List: []string{"x"}}}))
	before := s.Current()

	_, err := s.Reload([]Definition{{Name: "b"}, {Name: "b"}})
	if !errors.Is(err, wlerrors.ErrDuplicateList) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if s.Current() != before {
		t.Errorf("failed reload replaced the collection")
	}
}

func TestStore_ConcurrentReloads(t *testing.T) {
	v1 := []Definition{{Name: "nets", Type: TypeCIDR, List: []string{"10.0.0.0/8"}}}
	v2 := []Definition{
		{Name: "nets", Type: TypeCIDR, List: []string{"10.0.0.0/8"}},
		{Name: "more", Type: TypeCIDR, List: []string{"10.1.0.0/16"}},
	}
	s := NewStore(mustLoad(t, v1))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c := s.Current()
				got, err := c.Lookup("10.1.2.3")
				if err != nil {
					t.Errorf("Lookup() error = %v", err)
					return
				}
				// Each snapshot answers consistently with its own contents.
				if len(got) != c.Len() {
					t.Errorf("partial result %v from collection with %d lists", got, c.Len())
					return
				}
			}
		}()
	}
	for i := 0; i < 50; i++ {
		defs := v1
		if i%2 == 0 {
			defs = v2
		}
		if _, err := s.Reload(defs); err != nil {
			t.Fatal(err)
		}
	}
	wg.Wait()
}
