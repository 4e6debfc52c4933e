package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(collections, id)
}

func register(t *testing.T, id string, lvls ...levels.Level) {
	t.Helper()
	Register(Collection{
		ID:    id,
		Title: "Test " + id,
		Load:  func() ([]levels.Level, error) { return lvls, nil },
	})
	t.Cleanup(func() { unregister(id) })
}

func TestRegisterAndGet(t *testing.T) {
	register(t, "t-get", levels.Level{ID: "g-1"})

	if !Exists("t-get") {
		t.Fatal("Exists() = false after Register")
	}
	c, err := Get("t-get")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if c.Title != "Test t-get" {
		t.Errorf("Title = %q", c.Title)
	}

	if _, err := Get("t-missing"); err == nil {
		t.Error("Get() of unknown collection should fail")
	}
}

func TestRegisterPanics(t *testing.T) {
	register(t, "t-dup")

	tests := []struct {
		name string
		c    Collection
	}{
		{"duplicate", Collection{ID: "t-dup", Load: func() ([]levels.Level, error) { return nil, nil }}},
		{"nil loader", Collection{ID: "t-nil"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() did not panic")
				}
			}()
			Register(tt.c)
		})
	}
}

func TestListSorted(t *testing.T) {
	register(t, "t-b")
	register(t, "t-a")

	var ids []string
	for _, info := range List() {
		if info.ID == "t-a" || info.ID == "t-b" {
			ids = append(ids, info.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "t-a" || ids[1] != "t-b" {
		t.Errorf("List() order = %v", ids)
	}
}

func TestFindLevel(t *testing.T) {
	register(t, "t-find", levels.Level{ID: "f-1", Name: "First"}, levels.Level{ID: "f-2", Name: "Second"})

	lvl, err := FindLevel("f-2")
	if err != nil {
		t.Fatalf("FindLevel() error = %v", err)
	}
	if lvl.Name != "Second" {
		t.Errorf("Name = %q", lvl.Name)
	}

	_, err = FindLevel("f-9")
	if !errors.Is(err, levels.ErrNotFound) {
		t.Errorf("FindLevel() error = %v, want ErrNotFound", err)
	}
}

func TestLoadAllWrapsLoaderError(t *testing.T) {
	boom := errors.New("boom")
	Register(Collection{ID: "t-err", Load: func() ([]levels.Level, error) { return nil, boom }})
	t.Cleanup(func() { unregister("t-err") })

	if _, err := LoadAll(); !errors.Is(err, boom) {
		t.Errorf("LoadAll() error = %v, want boom", err)
	}
}
