package registry

import (
	"testing"

	"github.com/vovakirdan/panelboard/internal/engine"
)

type stubArrangement struct{ id string }

func (s stubArrangement) ID() string          { return s.id }
func (s stubArrangement) Title() string       { return "Stub " + s.id }
func (s stubArrangement) Description() string { return "adds one box" }

func (s stubArrangement) Seed(b Board) error {
	b.AddBox()
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-create", func() Arrangement { return stubArrangement{id: "stub-create"} })

	if !Exists("stub-create") {
		t.Fatal("Exists(stub-create) = false after Register")
	}
	a, err := Create("stub-create")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	e := engine.New(engine.Container{W: 80, H: 24}, engine.DefaultConfig())
	if err := a.Seed(e); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	if e.Len() != 1 {
		t.Errorf("Len() after Seed = %d, expected 1", e.Len())
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func() Arrangement { return stubArrangement{id: "stub-dup"} }
	Register("stub-dup", f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("stub-dup", f)
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create(does-not-exist) expected error")
	}
	if Exists("does-not-exist") {
		t.Error("Exists(does-not-exist) = true")
	}
}

func TestListSorted(t *testing.T) {
	Register("stub-b", func() Arrangement { return stubArrangement{id: "stub-b"} })
	Register("stub-a", func() Arrangement { return stubArrangement{id: "stub-a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "stub-a" {
			found = true
			if info.Title != "Stub stub-a" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub-a")
			}
		}
	}
	if !found {
		t.Error("List() is missing stub-a")
	}
}
