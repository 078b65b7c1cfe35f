package scene

import (
	"errors"
	"testing"

	"github.com/amudkip/uimbatch/pkg/geom"
)

func TestCollection_CreateAndGet(t *testing.T) {
	col := NewCollection()

	mesh := &geom.PolyMesh{Vertices: []geom.Vertex2D{{X: 1, Y: 2}}}
	h, err := col.CreateObject("frame_001", mesh)
	if err != nil {
		t.Fatalf("CreateObject failed: %v", err)
	}

	obj, ok := col.Get(h)
	if !ok {
		t.Fatal("Get failed for freshly created object")
	}
	if obj.Name != "frame_001" {
		t.Errorf("expected name frame_001, got %s", obj.Name)
	}
	if obj.Mesh != mesh {
		t.Error("mesh not attached to object")
	}
	if !obj.Selected {
		t.Error("new objects should start selected")
	}
	if col.Len() != 1 {
		t.Errorf("expected 1 object, got %d", col.Len())
	}
}

func TestCollection_InsertionOrder(t *testing.T) {
	col := NewCollection()
	names := []string{"c", "a", "b"}
	for _, n := range names {
		if _, err := col.CreateObject(n, &geom.PolyMesh{}); err != nil {
			t.Fatalf("CreateObject failed: %v", err)
		}
	}

	objs := col.Objects()
	if len(objs) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(objs))
	}
	for i, n := range names {
		if objs[i].Name != n {
			t.Errorf("position %d: expected %s, got %s", i, n, objs[i].Name)
		}
	}
}

func TestCollection_ExtendTimeline(t *testing.T) {
	col := NewCollection()

	col.ExtendTimeline(5)
	if col.FrameEnd() != 5 {
		t.Errorf("expected frame end 5, got %d", col.FrameEnd())
	}

	// Never shrinks.
	col.ExtendTimeline(3)
	if col.FrameEnd() != 5 {
		t.Errorf("timeline shrank to %d", col.FrameEnd())
	}

	col.ExtendTimeline(8)
	if col.FrameEnd() != 8 {
		t.Errorf("expected frame end 8, got %d", col.FrameEnd())
	}
}

func TestCollection_SetVisibilityKeyframe(t *testing.T) {
	col := NewCollection()
	h, _ := col.CreateObject("obj", &geom.PolyMesh{})

	if err := col.SetVisibilityKeyframe(h, 3, true); err != nil {
		t.Fatalf("SetVisibilityKeyframe failed: %v", err)
	}
	obj, _ := col.Get(h)
	if v, ok := obj.Keyframes[3]; !ok || !v {
		t.Error("keyframe at frame 3 not recorded as visible")
	}

	// Replaces on re-key.
	if err := col.SetVisibilityKeyframe(h, 3, false); err != nil {
		t.Fatalf("SetVisibilityKeyframe failed: %v", err)
	}
	if obj.Keyframes[3] {
		t.Error("keyframe at frame 3 should have been replaced with hidden")
	}
}

func TestCollection_UnknownObject(t *testing.T) {
	col := NewCollection()

	err := col.SetVisibilityKeyframe(ObjectHandle{}, 0, true)
	if !errors.Is(err, ErrUnknownObject) {
		t.Errorf("expected ErrUnknownObject, got %v", err)
	}
}
