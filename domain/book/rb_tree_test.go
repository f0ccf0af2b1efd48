package book

import (
	"math/rand"
	"sort"
	"testing"
)

func TestRBTreeInsertFindDelete(t *testing.T) {
	tree := NewRBTree()
	pl1 := tree.UpsertLevel(100)
	if pl1 == nil {
		t.Fatal("UpsertLevel failed")
	}
	if pl2 := tree.FindLevel(100); pl2 != pl1 {
		t.Error("FindLevel did not return same PriceLevel")
	}

	tree.UpsertLevel(200)
	if tree.MinLevel().Price != 100 {
		t.Error("expected min=100")
	}
	if tree.MaxLevel().Price != 200 {
		t.Error("expected max=200")
	}

	if !tree.DeleteLevel(100) {
		t.Error("DeleteLevel failed")
	}
	if tree.FindLevel(100) != nil {
		t.Error("expected level 100 to be gone")
	}
}

func TestDeleteNonExistentLevel(t *testing.T) {
	tree := NewRBTree()
	if tree.DeleteLevel(123) {
		t.Error("expected false when deleting non-existent level")
	}
}

func TestEmptyTreeMinMax(t *testing.T) {
	tree := NewRBTree()
	if tree.MinLevel() != nil || tree.MaxLevel() != nil {
		t.Error("expected nil for min/max on empty tree")
	}
}

func TestUpsertDuplicateLevel(t *testing.T) {
	tree := NewRBTree()
	pl1 := tree.UpsertLevel(150)
	pl2 := tree.UpsertLevel(150)
	if pl1 != pl2 {
		t.Error("Upsert should return the same node for duplicate level")
	}
}

func TestWalkOrderUnderChurn(t *testing.T) {
	tree := NewRBTree()
	rng := rand.New(rand.NewSource(1))

	alive := make(map[int64]bool)
	for i := 0; i < 2000; i++ {
		px := int64(rng.Intn(300))
		if alive[px] && rng.Intn(3) == 0 {
			tree.DeleteLevel(px)
			delete(alive, px)
		} else {
			tree.UpsertLevel(px)
			alive[px] = true
		}
	}

	want := make([]int64, 0, len(alive))
	for px := range alive {
		want = append(want, px)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	var asc []int64
	tree.ForEachAscending(func(lvl *PriceLevel) bool {
		asc = append(asc, lvl.Price)
		return true
	})
	if len(asc) != len(want) || tree.Size() != len(want) {
		t.Fatalf("tree has %d levels (size %d), want %d", len(asc), tree.Size(), len(want))
	}
	for i := range want {
		if asc[i] != want[i] {
			t.Fatalf("ascending walk out of order at %d: got %d want %d", i, asc[i], want[i])
		}
	}

	var desc []int64
	tree.ForEachDescending(func(lvl *PriceLevel) bool {
		desc = append(desc, lvl.Price)
		return true
	})
	for i := range want {
		if desc[len(desc)-1-i] != want[i] {
			t.Fatal("descending walk is not the reverse of ascending")
		}
	}
}

func TestWalkEarlyStop(t *testing.T) {
	tree := NewRBTree()
	for _, px := range []int64{5, 1, 9, 3} {
		tree.UpsertLevel(px)
	}
	var seen int
	tree.ForEachAscending(func(*PriceLevel) bool {
		seen++
		return seen < 2
	})
	if seen != 2 {
		t.Errorf("walk visited %d levels, want 2", seen)
	}
}
