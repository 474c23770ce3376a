package kinetic

import (
	"fmt"
	"testing"
)

func TestQuadtreeInsertRejectsOutOfBounds(t *testing.T) {
	q := NewQuadtree(NewRect(0, 0, 100, 100), 4)
	ok := q.Insert("outside", NewRect(200, 200, 10, 10))
	if ok {
		t.Error("Insert should reject elements entirely outside the node's bounds")
	}
}

func TestQuadtreeSubdividesPastCapacity(t *testing.T) {
	q := NewQuadtree(NewRect(0, 0, 100, 100), 2)
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("e%d", i)
		if !q.Insert(id, NewRect(float64(i)*10, float64(i)*10, 1, 1)) {
			t.Fatalf("Insert(%s) failed unexpectedly", id)
		}
	}
	if !q.divided {
		t.Error("node should have subdivided once capacity was exceeded")
	}
}

func TestQuadtreeQueryIsDeterministicAndComplete(t *testing.T) {
	q := NewQuadtree(NewRect(0, 0, 100, 100), 4)
	var ids []string
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("e%d", i)
		ids = append(ids, id)
		bounds := NewRect(float64(i)*9, float64(i)*9, 2, 2)
		if !q.Insert(id, bounds) {
			t.Fatalf("Insert(%s) failed unexpectedly", id)
		}
	}

	first := q.Query(NewRect(0, 0, 100, 100), nil)
	second := q.Query(NewRect(0, 0, 100, 100), nil)

	if len(first) != 10 {
		t.Fatalf("query returned %d ids, want 10", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("query order is not deterministic: run1[%d]=%s run2[%d]=%s", i, first[i], i, second[i])
		}
	}
}

func TestQuadtreeClearResetsNode(t *testing.T) {
	q := NewQuadtree(NewRect(0, 0, 100, 100), 1)
	q.Insert("a", NewRect(0, 0, 1, 1))
	q.Insert("b", NewRect(90, 90, 1, 1))
	if !q.divided {
		t.Fatal("setup: expected node to be divided")
	}

	q.Clear()

	if q.divided || len(q.ids) != 0 {
		t.Error("Clear should reset ids and divided state")
	}
	out := q.Query(NewRect(0, 0, 100, 100), nil)
	if len(out) != 0 {
		t.Errorf("query after Clear returned %d ids, want 0", len(out))
	}
}

func TestQuadtreeQueryRespectsNodeBounds(t *testing.T) {
	q := NewQuadtree(NewRect(0, 0, 100, 100), 4)
	q.Insert("a", NewRect(10, 10, 5, 5))

	out := q.Query(NewRect(200, 200, 10, 10), nil)
	if len(out) != 0 {
		t.Errorf("query of a disjoint range returned %d ids, want 0", len(out))
	}
}
