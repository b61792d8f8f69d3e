package pipeline

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/catgraph/pkg/catalog"
	"github.com/matzehuels/catgraph/pkg/errors"
)

func TestStoreLoadMove(t *testing.T) {
	ctx := context.Background()
	r := newFileRunner(t)

	layout, err := r.GenerateLayout(ctx, catalog.Sample(), Options{Category: "Smart Home"})
	if err != nil {
		t.Fatal(err)
	}
	stored, err := r.Store(ctx, layout)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := uuid.Validate(stored.ID); err != nil {
		t.Fatalf("ID %q is not a UUID", stored.ID)
	}

	loaded, err := r.Load(ctx, stored.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ID != stored.ID || len(loaded.Nodes) != 3 {
		t.Fatalf("loaded %+v", loaded)
	}

	nodeID := loaded.Nodes[1].ID
	moved, err := r.Move(ctx, stored.ID, nodeID, 5, 995)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	n, _ := moved.Node(nodeID)
	if n.X != 5 || n.Y != 995 {
		t.Errorf("moved node at (%v, %v)", n.X, n.Y)
	}
	if moved.Nodes[0] != loaded.Nodes[0] || moved.Nodes[2] != loaded.Nodes[2] {
		t.Error("other nodes changed")
	}

	reloaded, err := r.Load(ctx, stored.ID)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := reloaded.Node(nodeID); n.X != 5 || n.Y != 995 {
		t.Error("move was not persisted")
	}

	if err := r.Delete(ctx, stored.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Load(ctx, stored.ID); !errors.Is(err, errors.ErrCodeLayoutNotFound) {
		t.Errorf("after Delete: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	r := newFileRunner(t)

	if _, err := r.Load(ctx, "not-a-uuid"); !errors.Is(err, errors.ErrCodeLayoutNotFound) {
		t.Errorf("invalid id: %v", err)
	}
	if _, err := r.Load(ctx, uuid.NewString()); !errors.Is(err, errors.ErrCodeLayoutNotFound) {
		t.Errorf("unknown id: %v", err)
	}
}

func TestMoveUnknownNode(t *testing.T) {
	ctx := context.Background()
	r := newFileRunner(t)

	layout, err := r.GenerateLayout(ctx, catalog.Sample(), Options{Category: "Rete"})
	if err != nil {
		t.Fatal(err)
	}
	stored, err := r.Store(ctx, layout)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Move(ctx, stored.ID, "9999", 1, 1); !errors.Is(err, errors.ErrCodeNodeNotFound) {
		t.Errorf("err = %v, want NODE_NOT_FOUND", err)
	}
}
