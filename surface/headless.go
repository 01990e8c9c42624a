package surface

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/sys/unix"
)

// HeadlessConfig controls the file-backed presentation target.
type HeadlessConfig struct {
	// Dir is the directory committed frames are written to as PNG files.
	Dir string
	// Keep is the number of most recent frames retained on disk (default: 10).
	Keep int
	// PreviewScale divides the frame dimensions before encoding; 1 keeps
	// full resolution (default: 1).
	PreviewScale int
}

// Headless is a presentation target that consumes frames by encoding them to
// numbered PNG files. It maps committed pools read-only, the same way a real
// compositor would, and reports consumption as soon as the file is written.
type Headless struct {
	logger       *slog.Logger
	dir          string
	keep         int
	previewScale int

	frame    int
	consumed func()

	mmap   func(fd int, offset int64, length int, prot, flags int) ([]byte, error)
	munmap func(b []byte) error
}

// NewHeadless creates a Headless target writing into cfg.Dir, which is
// created if missing. If logger is nil, a no-op logger is used.
func NewHeadless(cfg HeadlessConfig, logger *slog.Logger) (*Headless, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("surface: create output directory %s: %w", cfg.Dir, err)
	}
	keep := cfg.Keep
	if keep <= 0 {
		keep = 10
	}
	previewScale := cfg.PreviewScale
	if previewScale <= 0 {
		previewScale = 1
	}
	return &Headless{
		logger:       logger,
		dir:          cfg.Dir,
		keep:         keep,
		previewScale: previewScale,
		mmap:         unix.Mmap,
		munmap:       unix.Munmap,
	}, nil
}

// headlessPool is a read-only mapping of one registered backing region.
type headlessPool struct {
	target *Headless
	data   []byte
}

// headlessBuffer is one view into a headlessPool.
type headlessBuffer struct {
	pool                 *headlessPool
	offset, w, h, stride int
}

// CreatePool maps the region read-only, as a compositor would.
func (t *Headless) CreatePool(fd int, size int) (Pool, error) {
	data, err := t.mmap(fd, 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("surface: map pool fd %d (%d bytes): %w", fd, size, err)
	}
	return &headlessPool{target: t, data: data}, nil
}

func (p *headlessPool) CreateBuffer(offset, width, height, stride int) (BufferHandle, error) {
	if offset < 0 || offset+stride*height > len(p.data) {
		return nil, fmt.Errorf("surface: buffer %dx%d stride %d at offset %d exceeds pool of %d bytes",
			width, height, stride, offset, len(p.data))
	}
	return &headlessBuffer{pool: p, offset: offset, w: width, h: height, stride: stride}, nil
}

func (p *headlessPool) Destroy() {
	if p.data == nil {
		return
	}
	if err := p.target.munmap(p.data); err != nil {
		p.target.logger.Error("failed to unmap pool", "error", err)
	}
	p.data = nil
}

func (b *headlessBuffer) Release() {}

// AttachAndCommit encodes the buffer contents to the next numbered PNG file,
// prunes old frames, and fires the registered consumed callback.
func (t *Headless) AttachAndCommit(h BufferHandle, x, y int) error {
	hb, ok := h.(*headlessBuffer)
	if !ok {
		return fmt.Errorf("surface: foreign buffer handle %T", h)
	}
	if hb.pool.data == nil {
		return fmt.Errorf("surface: buffer attached from destroyed pool")
	}

	img := image.NewNRGBA(image.Rect(0, 0, hb.w, hb.h))
	for row := 0; row < hb.h; row++ {
		src := hb.pool.data[hb.offset+row*hb.stride:]
		dst := img.Pix[row*img.Stride:]
		for col := 0; col < hb.w; col++ {
			// Backing store is ARGB8888 little-endian: B, G, R, A.
			dst[col*4+0] = src[col*4+2]
			dst[col*4+1] = src[col*4+1]
			dst[col*4+2] = src[col*4+0]
			dst[col*4+3] = src[col*4+3]
		}
	}

	var out image.Image = img
	if t.previewScale > 1 {
		out = imaging.Resize(img, hb.w/t.previewScale, 0, imaging.Box)
	}

	path := filepath.Join(t.dir, fmt.Sprintf("frame-%06d.png", t.frame))
	if err := t.writePNG(path, out); err != nil {
		return err
	}
	t.frame++
	t.prune()

	t.logger.Debug("frame committed", "path", path, "width", hb.w, "height", hb.h)

	// One-shot: clear before firing so the callback may re-register.
	if fn := t.consumed; fn != nil {
		t.consumed = nil
		fn()
	}
	return nil
}

// OnConsumed registers the one-shot consumed callback.
func (t *Headless) OnConsumed(fn func()) {
	t.consumed = fn
}

// writePNG encodes atomically via a temp file and rename.
func (t *Headless) writePNG(path string, img image.Image) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("surface: create %s: %w", tmp, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("surface: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("surface: close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("surface: rename %s: %w", path, err)
	}
	return nil
}

// prune removes frame files beyond the keep count, oldest first.
func (t *Headless) prune() {
	entries, err := os.ReadDir(t.dir)
	if err != nil {
		t.logger.Warn("failed to list output directory", "error", err)
		return
	}
	var frames []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "frame-") && strings.HasSuffix(name, ".png") {
			frames = append(frames, name)
		}
	}
	sort.Strings(frames)
	for len(frames) > t.keep {
		if err := os.Remove(filepath.Join(t.dir, frames[0])); err != nil {
			t.logger.Warn("failed to prune frame", "file", frames[0], "error", err)
		}
		frames = frames[1:]
	}
}

// Compile-time interface compliance check.
var _ Target = (*Headless)(nil)
