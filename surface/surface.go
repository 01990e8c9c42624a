// Package surface defines the narrow contract between the frame pipeline and
// the display-compositor side of the world: registering shared-memory pools,
// attaching and committing a rendered buffer, and the consumed notification
// that gates the next frame. The compositor handshake itself (global binding,
// capability discovery) lives outside this module; implementations of Target
// adapt whatever protocol glue is in use to this contract. A file-backed
// Headless target is provided for local preview and tests.
package surface

// Geometry describes the render target as dictated by the presentation side:
// logical dimensions plus the output device scale factor.
type Geometry struct {
	Width  int
	Height int
	Scale  int
}

// Physical returns the pixel dimensions of the backing store,
// logical size multiplied by the device scale.
func (g Geometry) Physical() (width, height int) {
	return g.Width * g.Scale, g.Height * g.Scale
}

// BufferHandle is an opaque reference to one committed-size view into a
// registered pool, suitable for attaching to the presentation target.
type BufferHandle interface {
	// Release tells the presentation side this view will not be attached again.
	Release()
}

// Pool is the presentation-side registration of one shared-memory backing
// region. It stays valid until Destroy, independent of the local mapping.
type Pool interface {
	// CreateBuffer carves a w×h view with the given row stride out of the
	// pool, starting at byte offset.
	CreateBuffer(offset, width, height, stride int) (BufferHandle, error)

	// Destroy releases the presentation-side registration. Buffers already
	// created from the pool remain valid until individually released.
	Destroy()
}

// Target is the presentation surface a finished frame is handed to.
type Target interface {
	// CreatePool registers a shared-memory region, identified by its file
	// descriptor and size, with the presentation side.
	CreatePool(fd int, size int) (Pool, error)

	// AttachAndCommit hands the buffer to the presentation target at the
	// given offset. The target may begin reading the backing region at any
	// point after this returns.
	AttachAndCommit(h BufferHandle, x, y int) error

	// OnConsumed registers a one-shot callback fired when the previously
	// committed frame has been consumed and a new one may be submitted.
	// The registration does not survive the firing; re-register each frame.
	OnConsumed(fn func())
}

// Event is a presentation-side notification delivered to the frame scheduler.
type Event interface {
	isEvent()
}

// ConfigureEvent carries new target geometry. The presentation side is the
// authority over dimensions and scale; the pipeline applies the change
// before its next draw.
type ConfigureEvent struct {
	Geometry Geometry
}

// FrameConsumedEvent reports that the previously committed frame has been
// consumed; the pipeline may render again.
type FrameConsumedEvent struct{}

// CloseEvent reports that the presentation surface is going away.
type CloseEvent struct{}

func (ConfigureEvent) isEvent()     {}
func (FrameConsumedEvent) isEvent() {}
func (CloseEvent) isEvent()         {}
