package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/acarl005/widget/collectors"
	"github.com/acarl005/widget/display/pixel"
	"github.com/acarl005/widget/history"
	"github.com/acarl005/widget/surface"
)

func testSnapshot() collectors.Snapshot {
	return collectors.Snapshot{
		Timestamp:  time.Unix(1700000000, 0),
		CPUPercent: 38.5,
		PerCore:    []float64{20, 45, 80, 95},
		Load1:      0.42, Load5: 0.33, Load15: 0.25,
		MemTotal: 16 << 30, MemUsed: 6 << 30,
		SwapTotal: 8 << 30, SwapUsed: 512 << 20,
		Mounts:         []collectors.MountUsage{{Path: "/", UsedPercent: 61}},
		DiskReadBytes:  7 << 30,
		DiskWriteBytes: 3 << 30,
	}
}

func testHistories() Histories {
	h := Histories{
		CPU:     history.NewRing[float64](150),
		Read:    history.NewRing[uint64](150),
		Written: history.NewRing[uint64](150),
	}
	for i := 0; i < 20; i++ {
		h.CPU.Push(float64(i * 5))
		h.Read.Push(uint64(i) * 1024 * 1024)
		h.Written.Push(uint64(i) * 512 * 1024)
	}
	return h
}

func TestDraw_Deterministic(t *testing.T) {
	comp := New(DefaultTheme())
	geom := surface.Geometry{Width: 800, Height: 600, Scale: 1}
	snap := testSnapshot()
	hist := testHistories()

	a := pixel.NewCanvas(800, 600)
	b := pixel.NewCanvas(800, 600)
	if err := comp.Draw(snap, hist, geom, a); err != nil {
		t.Fatalf("first draw failed: %v", err)
	}
	if err := comp.Draw(snap, hist, geom, b); err != nil {
		t.Fatalf("second draw failed: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("identical inputs produced different frames")
	}
}

func TestDraw_OutputDependsOnSnapshot(t *testing.T) {
	comp := New(DefaultTheme())
	geom := surface.Geometry{Width: 800, Height: 600, Scale: 1}
	hist := testHistories()

	a := pixel.NewCanvas(800, 600)
	b := pixel.NewCanvas(800, 600)

	snap := testSnapshot()
	if err := comp.Draw(snap, hist, geom, a); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	snap.CPUPercent = 99
	snap.Load1 = 0.97
	if err := comp.Draw(snap, hist, geom, b); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("changed snapshot produced an identical frame")
	}
}

func TestDraw_PaintsBackground(t *testing.T) {
	theme := DefaultTheme()
	comp := New(theme)
	geom := surface.Geometry{Width: 800, Height: 600, Scale: 1}
	c := pixel.NewCanvas(800, 600)

	if err := comp.Draw(testSnapshot(), testHistories(), geom, c); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if c.At(0, 0) != theme.Background {
		t.Errorf("corner pixel %v is not the background color", c.At(0, 0))
	}
}

func TestDraw_EmptyHistoriesAndZeroSnapshot(t *testing.T) {
	comp := New(DefaultTheme())
	geom := surface.Geometry{Width: 800, Height: 600, Scale: 1}
	c := pixel.NewCanvas(800, 600)

	hist := Histories{
		CPU:     history.NewRing[float64](150),
		Read:    history.NewRing[uint64](150),
		Written: history.NewRing[uint64](150),
	}
	var snap collectors.Snapshot

	if err := comp.Draw(snap, hist, geom, c); err != nil {
		t.Fatalf("blank dashboard must still render: %v", err)
	}
}

func TestDraw_TooSmallCanvasFails(t *testing.T) {
	comp := New(DefaultTheme())
	geom := surface.Geometry{Width: 120, Height: 90, Scale: 1}
	c := pixel.NewCanvas(120, 90)

	if err := comp.Draw(testSnapshot(), testHistories(), geom, c); err == nil {
		t.Error("expected an error for a canvas too small to hold the layout")
	}
}

func TestDraw_CanvasGeometryMismatchFails(t *testing.T) {
	comp := New(DefaultTheme())
	geom := surface.Geometry{Width: 800, Height: 600, Scale: 2}
	c := pixel.NewCanvas(800, 600) // scale ignored: wrong physical size

	if err := comp.Draw(testSnapshot(), testHistories(), geom, c); err == nil {
		t.Error("expected an error when canvas does not match physical geometry")
	}
}

func TestCounterDeltas(t *testing.T) {
	r := history.NewRing[uint64](10)
	for _, v := range []uint64{100, 250, 250, 200} {
		r.Push(v)
	}
	// Most-recent-first: [200, 250, 250, 100]; the newer-smaller pair
	// clamps to zero (counter reset).
	got := counterDeltas(r)
	want := []float64{0, 0, 150}
	if len(got) != len(want) {
		t.Fatalf("expected %d deltas, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delta %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestThemeFromHex(t *testing.T) {
	th, err := ThemeFromHex("#102030", "", "", "#ff0000", "")
	if err != nil {
		t.Fatalf("ThemeFromHex failed: %v", err)
	}
	if th.Background.R != 0x10 || th.Background.G != 0x20 || th.Background.B != 0x30 {
		t.Errorf("background override not applied: %+v", th.Background)
	}
	if th.Danger.R != 0xFF || th.Danger.G != 0 {
		t.Errorf("danger override not applied: %+v", th.Danger)
	}
	if th.Accent != DefaultTheme().Accent {
		t.Error("empty override must keep the default slot")
	}

	if _, err := ThemeFromHex("not-a-color", "", "", "", ""); err == nil {
		t.Error("expected an error for a malformed color")
	}
}
