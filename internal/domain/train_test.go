package domain

import (
	"testing"
)

func TestTrainBoardRespectsCapacity(t *testing.T) {
	pkg1 := &Package{Name: "K1", DropOff: 1, Weight: 4}
	pkg2 := &Package{Name: "K2", DropOff: 2, Weight: 5}
	pkg3 := &Package{Name: "K3", DropOff: 1, Weight: 2}

	train := NewTrain("Q1", 0, 10)

	if err := train.Board(pkg1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := train.Board(pkg2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := train.FreeCapacity(); got != 1 {
		t.Fatalf("free capacity = %d, want 1", got)
	}

	if err := train.Board(pkg3); err == nil {
		t.Fatalf("expected board to fail for %s", pkg3.Name)
	}
	if len(train.Packages) != 2 {
		t.Fatalf("packages aboard = %d, want 2", len(train.Packages))
	}
}

func TestTrainUnloadAt(t *testing.T) {
	pkg1 := &Package{Name: "K1", DropOff: 1, Weight: 1}
	pkg2 := &Package{Name: "K2", DropOff: 2, Weight: 1}
	pkg3 := &Package{Name: "K3", DropOff: 1, Weight: 1}

	train := &Train{Name: "Q1", Capacity: 3, Packages: []*Package{pkg1, pkg2, pkg3}}

	out := train.UnloadAt(1)
	if len(out) != 2 || out[0] != pkg1 || out[1] != pkg3 {
		t.Fatalf("unloaded = %v, want [K1 K3]", PackageNames(out))
	}
	if len(train.Packages) != 1 || train.Packages[0] != pkg2 {
		t.Fatalf("remaining = %v, want [K2]", PackageNames(train.Packages))
	}
	if got := train.Load(); got != 1 {
		t.Fatalf("load = %d, want 1", got)
	}

	if out := train.UnloadAt(3); len(out) != 0 {
		t.Fatalf("unexpected unload at empty station: %v", PackageNames(out))
	}

	all := train.UnloadAll()
	if len(all) != 1 || len(train.Packages) != 0 {
		t.Fatalf("unload all left %d packages", len(train.Packages))
	}
}
