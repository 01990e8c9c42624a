// Package shm owns the shared-memory backing store a frame is rendered into.
// Each Buffer wraps one anonymous memfd region, mapped read/write locally and
// registered with the presentation target as a pool. The region is exactly
// stride × height bytes of ARGB8888 pixels and is resized by allocating a
// fresh region and switching over, never by growing or rewriting one the
// presentation side might still be reading.
package shm

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sys/unix"

	"github.com/acarl005/widget/surface"
)

// bytesPerPixel is fixed by the ARGB8888 pixel format.
const bytesPerPixel = 4

// Buffer is a shared-memory frame destination. It is not safe for concurrent
// use; the render pipeline drives it from a single goroutine.
type Buffer struct {
	logger *slog.Logger
	target surface.Target

	fd     int
	data   []byte
	size   int
	width  int // physical pixels
	height int
	stride int

	pool   surface.Pool
	handle surface.BufferHandle

	allocs int

	memfdCreate func(name string, flags int) (int, error)
	ftruncate   func(fd int, length int64) error
	mmap        func(fd int, offset int64, length int, prot, flags int) ([]byte, error)
	munmap      func(b []byte) error
	closeFD     func(fd int) error
}

// NewBuffer creates an empty Buffer that registers its regions with target.
// No storage is allocated until the first EnsureSized call.
// If logger is nil, a no-op logger is used.
func NewBuffer(target surface.Target, logger *slog.Logger) *Buffer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Buffer{
		logger:      logger,
		target:      target,
		fd:          -1,
		memfdCreate: unix.MemfdCreate,
		ftruncate:   unix.Ftruncate,
		mmap:        unix.Mmap,
		munmap:      unix.Munmap,
		closeFD:     unix.Close,
	}
}

// EnsureSized makes the backing region match width×height physical pixels.
// At steady dimensions this is a constant-time no-op. A dimension change at
// equal byte size (a width/height swap) reuses the region and its pool but
// installs a fresh buffer view, since the handle's stride no longer matches.
// On a byte-size change it allocates, maps, and registers a new region first
// and releases the old region and its pool only after the new one is fully
// installed, so the presentation side never observes its current region being
// torn down before a replacement exists. Allocation or mapping failure leaves
// the previous region intact and is returned to the caller; the frame cannot
// be produced.
func (b *Buffer) EnsureSized(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("shm: invalid dimensions %dx%d", width, height)
	}
	stride := width * bytesPerPixel
	size := stride * height
	if b.data != nil && size == b.size {
		if width == b.width && height == b.height {
			return nil
		}
		handle, err := b.pool.CreateBuffer(0, width, height, stride)
		if err != nil {
			return fmt.Errorf("shm: create buffer %dx%d: %w", width, height, err)
		}
		b.handle.Release()
		b.handle = handle
		b.width, b.height, b.stride = width, height, stride
		return nil
	}

	fd, err := b.memfdCreate("widget-frame", unix.MFD_CLOEXEC)
	if err != nil {
		return fmt.Errorf("shm: create backing region: %w", err)
	}
	if err := b.ftruncate(fd, int64(size)); err != nil {
		b.closeFD(fd)
		return fmt.Errorf("shm: size backing region to %d bytes: %w", size, err)
	}
	data, err := b.mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		b.closeFD(fd)
		return fmt.Errorf("shm: map backing region: %w", err)
	}
	pool, err := b.target.CreatePool(fd, size)
	if err != nil {
		b.munmap(data)
		b.closeFD(fd)
		return fmt.Errorf("shm: register pool: %w", err)
	}
	handle, err := pool.CreateBuffer(0, width, height, stride)
	if err != nil {
		pool.Destroy()
		b.munmap(data)
		b.closeFD(fd)
		return fmt.Errorf("shm: create buffer %dx%d: %w", width, height, err)
	}

	b.release()

	b.fd = fd
	b.data = data
	b.size = size
	b.width, b.height, b.stride = width, height, stride
	b.pool = pool
	b.handle = handle
	b.allocs++

	b.logger.Debug("allocated backing region",
		"width", width, "height", height, "stride", stride, "bytes", size)
	return nil
}

// Write copies pixels into the backing region. The slice length must equal
// the region size exactly; anything else is a programming error in the
// render pipeline and aborts rather than truncating or padding a frame.
func (b *Buffer) Write(pixels []byte) {
	if b.data == nil {
		panic("shm: Write before EnsureSized")
	}
	if len(pixels) != b.size {
		panic(fmt.Sprintf("shm: pixel slice is %d bytes, backing region is %d", len(pixels), b.size))
	}
	copy(b.data, pixels)
}

// Handle returns the opaque reference for the current region, suitable for
// handing to the presentation target. Nil before the first EnsureSized.
func (b *Buffer) Handle() surface.BufferHandle { return b.handle }

// Size returns the backing region size in bytes.
func (b *Buffer) Size() int { return b.size }

// Stride returns the row stride in bytes.
func (b *Buffer) Stride() int { return b.stride }

// Allocations reports how many backing regions have been created over the
// buffer's lifetime.
func (b *Buffer) Allocations() int { return b.allocs }

// Close releases the current region and its presentation-side registration.
func (b *Buffer) Close() error {
	b.release()
	return nil
}

// release tears down the current region, pool registration and mapping.
func (b *Buffer) release() {
	if b.handle != nil {
		b.handle.Release()
		b.handle = nil
	}
	if b.pool != nil {
		b.pool.Destroy()
		b.pool = nil
	}
	if b.data != nil {
		if err := b.munmap(b.data); err != nil {
			b.logger.Error("failed to unmap backing region", "error", err)
		}
		b.data = nil
	}
	if b.fd >= 0 {
		if err := b.closeFD(b.fd); err != nil {
			b.logger.Error("failed to close backing fd", "error", err)
		}
		b.fd = -1
	}
	b.size = 0
}
