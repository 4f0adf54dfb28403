package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/bebeshannu/datavis-a2/src/scales"
	"github.com/bebeshannu/datavis-a2/src/vehicles"
)

func sampleDataset() vehicles.Dataset {
	return vehicles.Dataset{
		{Name: "Acura RSX", Type: "Sedan", RetailPrice: 23820, DealerCost: 21761, EngineSize: 2.0, Horsepower: 200, CityMPG: 24},
		{Name: "Audi A4", Type: "Sedan", RetailPrice: 33430, DealerCost: 30366, EngineSize: 3.0, Horsepower: 220, CityMPG: 17},
		{Name: "Mystery", Type: "-", RetailPrice: 15000, EngineSize: math.NaN(), Horsepower: 110, CityMPG: math.NaN()},
	}
}

func selectedMarks(r *recorder) int {
	n := 0
	for _, o := range r.of("circle") {
		if o.style.StrokeWidth == selectedStrokeWidth {
			n++
		}
	}
	return n
}

func TestNewSelectsFirstRecord(t *testing.T) {
	c := New(sampleDataset(), DefaultOptions())
	i, ok := c.Selected()
	if !ok || i != 0 {
		t.Fatalf("initial selection = %d,%v want 0,true", i, ok)
	}
	if len(c.Marks()) != 3 {
		t.Fatalf("marks = %d want 3", len(c.Marks()))
	}
}

func TestSelectDistinguishesExactlyOneMark(t *testing.T) {
	c := New(sampleDataset(), DefaultOptions())
	rec := newRecorder(CanvasWidth, CanvasHeight)
	c.Render(rec)
	if got := selectedMarks(rec); got != 1 {
		t.Fatalf("distinguished marks = %d want 1", got)
	}
	if _, ok := c.Select(2); !ok {
		t.Fatalf("select 2 failed")
	}
	rec.reset()
	c.Render(rec)
	circles := rec.of("circle")
	if got := selectedMarks(rec); got != 1 {
		t.Fatalf("distinguished marks after select = %d want 1", got)
	}
	if circles[2].style.StrokeWidth != selectedStrokeWidth {
		t.Fatalf("mark 2 not distinguished: %+v", circles[2].style)
	}
	if circles[0].style.Fill.A != markAlpha {
		t.Fatalf("unselected mark alpha = %d want %d", circles[0].style.Fill.A, markAlpha)
	}
}

func TestSelectOutOfRange(t *testing.T) {
	c := New(sampleDataset(), DefaultOptions())
	called := false
	c.OnSelect = func(vehicles.Vehicle) { called = true }
	for _, i := range []int{-1, 3, 99} {
		if _, ok := c.Select(i); ok {
			t.Fatalf("select %d should fail", i)
		}
	}
	if called {
		t.Fatalf("OnSelect fired for invalid index")
	}
	if i, _ := c.Selected(); i != 0 {
		t.Fatalf("selection changed to %d", i)
	}
}

func TestOnSelectReceivesRecord(t *testing.T) {
	c := New(sampleDataset(), DefaultOptions())
	var got string
	c.OnSelect = func(v vehicles.Vehicle) { got = v.Name }
	c.Select(1)
	if got != "Audi A4" {
		t.Fatalf("OnSelect got %q", got)
	}
}

func TestHitTest(t *testing.T) {
	c := New(sampleDataset(), DefaultOptions())
	for _, m := range c.Marks() {
		i, ok := c.HitTest(m.X, m.Y)
		if !ok || i != m.Index {
			t.Fatalf("hit at mark %d center = %d,%v", m.Index, i, ok)
		}
	}
	if _, ok := c.HitTest(1, 1); ok {
		t.Fatalf("hit in the margin")
	}
}

func TestHitTestPrefersTopmost(t *testing.T) {
	v := sampleDataset()[0]
	c := New(vehicles.Dataset{v, v, v}, DefaultOptions())
	m := c.Marks()[0]
	// the selection is drawn on top of the later marks
	if i, ok := c.HitTest(m.X, m.Y); !ok || i != 0 {
		t.Fatalf("overlapping hit = %d,%v want selected 0", i, ok)
	}
	c.Select(1)
	if i, ok := c.HitTest(m.X, m.Y); !ok || i != 1 {
		t.Fatalf("overlapping hit after select = %d,%v want 1", i, ok)
	}
}

func TestSelectedMarkDrawnLast(t *testing.T) {
	v := sampleDataset()[0]
	c := New(vehicles.Dataset{v, v, v}, DefaultOptions())
	rec := newRecorder(CanvasWidth, CanvasHeight)
	for _, sel := range []int{0, 1, 2} {
		c.Select(sel)
		rec.reset()
		c.Render(rec)
		circles := rec.of("circle")
		if len(circles) != 3 {
			t.Fatalf("circles = %d want 3", len(circles))
		}
		if last := circles[len(circles)-1]; last.style.StrokeWidth != selectedStrokeWidth {
			t.Fatalf("selected %d not drawn last: %+v", sel, last.style)
		}
	}
}

func TestPriceTicksOnWholeDollars(t *testing.T) {
	narrow := vehicles.Dataset{
		{Name: "A", RetailPrice: 100, Horsepower: 100},
		{Name: "B", RetailPrice: 103, Horsepower: 120},
	}
	for name, ds := range map[string]vehicles.Dataset{"empty": nil, "narrow": narrow} {
		rec := newRecorder(CanvasWidth, CanvasHeight)
		New(ds, DefaultOptions()).Render(rec)
		seen := map[string]bool{}
		for _, o := range rec.of("text") {
			if !strings.HasPrefix(o.body, "$") {
				continue
			}
			if seen[o.body] {
				t.Fatalf("%s: price label %q repeated", name, o.body)
			}
			seen[o.body] = true
		}
		if len(seen) < 2 {
			t.Fatalf("%s: want at least two price labels, got %v", name, seen)
		}
	}
}

func TestWholeTicks(t *testing.T) {
	got := wholeTicks([]float64{0, 0.2, 0.4, 0.6, 0.8, 1})
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("wholeTicks = %v", got)
	}
}

func TestTooltip(t *testing.T) {
	c := New(sampleDataset(), DefaultOptions())
	if got, want := c.Tooltip(0), "Acura RSX\n$23,820\n200 hp"; got != want {
		t.Fatalf("tooltip = %q want %q", got, want)
	}
	if c.Tooltip(-1) != "" || c.Tooltip(3) != "" {
		t.Fatalf("tooltip for invalid index should be empty")
	}
}

func TestFallbackMark(t *testing.T) {
	c := New(sampleDataset(), DefaultOptions())
	m := c.Marks()[2]
	if m.R != scales.FallbackRadius {
		t.Fatalf("fallback radius = %v", m.R)
	}
	if m.Fill != scales.FallbackColor {
		t.Fatalf("fallback fill = %+v", m.Fill)
	}
}

func TestMarksInsidePlot(t *testing.T) {
	c := New(sampleDataset(), DefaultOptions())
	in := c.Inner()
	for _, m := range c.Marks() {
		if !in.Contains(m.X, m.Y) {
			t.Fatalf("mark %d at (%v,%v) outside %+v", m.Index, m.X, m.Y, in)
		}
	}
}

func TestSingleRecordCentered(t *testing.T) {
	c := New(sampleDataset()[:1], DefaultOptions())
	m := c.Marks()[0]
	if math.Abs(m.X-470) > 1e-9 || math.Abs(m.Y-245) > 1e-9 {
		t.Fatalf("single mark at (%v,%v) want (470,245)", m.X, m.Y)
	}
	rec := newRecorder(CanvasWidth, CanvasHeight)
	c.Render(rec)
	if rec.count("circle") != 1 {
		t.Fatalf("circles = %d want 1", rec.count("circle"))
	}
}

func TestRenderEmptyDataset(t *testing.T) {
	c := New(nil, DefaultOptions())
	if _, ok := c.Selected(); ok {
		t.Fatalf("empty chart should have no selection")
	}
	rec := newRecorder(CanvasWidth, CanvasHeight)
	c.Render(rec)
	if rec.count("circle") != 0 {
		t.Fatalf("empty chart drew %d marks", rec.count("circle"))
	}
	if !rec.hasText("No vehicles with price and horsepower") {
		t.Fatalf("empty chart message missing")
	}
}

func TestRenderAxes(t *testing.T) {
	c := New(sampleDataset(), DefaultOptions())
	rec := newRecorder(CanvasWidth, CanvasHeight)
	c.Render(rec)
	for _, want := range []string{"Retail Price", "Horsepower"} {
		if !rec.hasText(want) {
			t.Fatalf("missing axis text %q", want)
		}
	}
	currency := 0
	for _, o := range rec.of("text") {
		if strings.HasPrefix(o.body, "$") {
			currency++
		}
	}
	if currency < 2 {
		t.Fatalf("x ticks should be currency labels, found %d", currency)
	}
	if first := rec.ops[0]; first.kind != "clear" {
		t.Fatalf("render should start by clearing, got %s", first.kind)
	}
}

func TestDefaultOptionsOnZeroSize(t *testing.T) {
	c := New(sampleDataset(), Options{})
	if w, h := c.Size(); w != CanvasWidth || h != CanvasHeight {
		t.Fatalf("size = %vx%v", w, h)
	}
}
