// Package scene models the host scene graph the batch pipelines talk
// to: object creation, the timeline end frame, and per-object visibility
// keyframes. The pipelines only ever touch the Scene interface; the
// in-memory Collection is the implementation the CLI uses.
package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/amudkip/uimbatch/pkg/geom"
)

// ErrUnknownObject is returned when a handle does not resolve.
var ErrUnknownObject = errors.New("unknown scene object")

// ObjectHandle identifies a scene object.
type ObjectHandle uuid.UUID

// String returns the handle in canonical UUID form.
func (h ObjectHandle) String() string {
	return uuid.UUID(h).String()
}

// Scene is the host collaborator interface. Setting a visibility
// keyframe at a frame that already has one replaces it.
type Scene interface {
	CreateObject(name string, mesh *geom.PolyMesh) (ObjectHandle, error)
	ExtendTimeline(minEndFrame int)
	SetVisibilityKeyframe(h ObjectHandle, frame int, visible bool) error
}

// Object is one mesh object in a Collection.
type Object struct {
	Handle    ObjectHandle
	Name      string
	Mesh      *geom.PolyMesh
	Selected  bool
	Keyframes map[int]bool // frame -> visible
}

// Collection is an in-memory Scene. Objects keep their insertion order,
// which the exporter relies on for deterministic output.
type Collection struct {
	order    []ObjectHandle
	objects  map[ObjectHandle]*Object
	frameEnd int
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{objects: make(map[ObjectHandle]*Object)}
}

// CreateObject adds a named mesh object. New objects start selected,
// mirroring how a host marks freshly imported objects.
func (c *Collection) CreateObject(name string, mesh *geom.PolyMesh) (ObjectHandle, error) {
	h := ObjectHandle(uuid.New())
	c.objects[h] = &Object{
		Handle:    h,
		Name:      name,
		Mesh:      mesh,
		Selected:  true,
		Keyframes: make(map[int]bool),
	}
	c.order = append(c.order, h)
	return h, nil
}

// ExtendTimeline raises the timeline end frame to at least minEndFrame.
// It never shrinks the timeline.
func (c *Collection) ExtendTimeline(minEndFrame int) {
	if c.frameEnd < minEndFrame {
		c.frameEnd = minEndFrame
	}
}

// SetVisibilityKeyframe records a visibility keyframe on an object,
// replacing any existing keyframe at the same frame.
func (c *Collection) SetVisibilityKeyframe(h ObjectHandle, frame int, visible bool) error {
	obj, ok := c.objects[h]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownObject, h)
	}
	obj.Keyframes[frame] = visible
	return nil
}

// FrameEnd returns the current timeline end frame.
func (c *Collection) FrameEnd() int {
	return c.frameEnd
}

// Get returns the object for a handle.
func (c *Collection) Get(h ObjectHandle) (*Object, bool) {
	obj, ok := c.objects[h]
	return obj, ok
}

// Objects returns all objects in insertion order.
func (c *Collection) Objects() []*Object {
	out := make([]*Object, 0, len(c.order))
	for _, h := range c.order {
		out = append(out, c.objects[h])
	}
	return out
}

// Len returns the number of objects.
func (c *Collection) Len() int {
	return len(c.order)
}
