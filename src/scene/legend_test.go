package scene

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/bebeshannu/datavis-a2/src/scales"
)

func TestLegendsIdempotent(t *testing.T) {
	c := New(sampleDataset(), DefaultOptions())
	rec := newRecorder(LegendWidth, LegendHeight)
	c.RenderLegends(rec)
	first := append([]op(nil), rec.ops...)
	rec.reset()
	c.RenderLegends(rec)
	if !reflect.DeepEqual(first, rec.ops) {
		t.Fatalf("second legend render differs from the first")
	}
	if rec.ops[0].kind != "clear" {
		t.Fatalf("legend should clear before drawing, got %s", rec.ops[0].kind)
	}
}

func TestColorLegendSamplesPerPixel(t *testing.T) {
	c := New(sampleDataset(), DefaultOptions())
	rec := newRecorder(LegendWidth, LegendHeight)
	box, _ := LegendBoxes(LegendWidth, LegendHeight)
	ColorLegend(rec, c.Scales().Color, box)
	// one rect per pixel column plus the outline
	if got, want := rec.count("rect"), int(box.W-20)+1; got != want {
		t.Fatalf("rects = %d want %d", got, want)
	}
	if !rec.hasText("17") || !rec.hasText("24") {
		t.Fatalf("color legend labels missing: %+v", rec.of("text"))
	}
	rects := rec.of("rect")
	if rects[0].style.Fill == rects[len(rects)-2].style.Fill {
		t.Fatalf("gradient ends share a color")
	}
}

func TestSizeLegendTrueRadii(t *testing.T) {
	c := New(sampleDataset(), DefaultOptions())
	rec := newRecorder(LegendWidth, LegendHeight)
	_, box := LegendBoxes(LegendWidth, LegendHeight)
	SizeLegend(rec, c.Scales().Radius, 2.5, box)
	circles := rec.of("circle")
	if len(circles) != 3 {
		t.Fatalf("circles = %d want 3", len(circles))
	}
	want := []float64{scales.MinRadius, math.Sqrt(102.5), scales.MaxRadius}
	for i, o := range circles {
		if math.Abs(o.r-want[i]) > 1e-9 {
			t.Fatalf("circle %d radius %v want %v", i, o.r, want[i])
		}
	}
	for _, l := range []string{"2.0 L", "2.5 L", "3.0 L"} {
		if !rec.hasText(l) {
			t.Fatalf("size legend label %q missing", l)
		}
	}
}

func TestLegendsEmptyDataset(t *testing.T) {
	c := New(nil, DefaultOptions())
	rec := newRecorder(LegendWidth, LegendHeight)
	c.RenderLegends(rec)
	if len(rec.ops) != 1 || rec.ops[0].kind != "clear" {
		t.Fatalf("empty legends should only clear, got %+v", rec.ops)
	}
}

func TestLegendsWithoutOptionalValues(t *testing.T) {
	ds := sampleDataset()
	for i := range ds {
		ds[i].EngineSize = math.NaN()
		ds[i].CityMPG = math.NaN()
	}
	c := New(ds, DefaultOptions())
	rec := newRecorder(LegendWidth, LegendHeight)
	c.RenderLegends(rec)
	if n := rec.count("circle"); n != 0 {
		t.Fatalf("size legend drew %d reference circles for unknown engine sizes", n)
	}
	if n := rec.count("rect"); n != 0 {
		t.Fatalf("color legend drew %d gradient rects for unknown MPG", n)
	}
	for _, o := range rec.of("text") {
		if strings.HasSuffix(o.body, " L") || o.body == "0" || o.body == "1" {
			t.Fatalf("legend shows made-up value %q", o.body)
		}
	}
	for _, want := range []string{"City MPG", "Engine size", "no data"} {
		if !rec.hasText(want) {
			t.Fatalf("legend text %q missing", want)
		}
	}
	if rec.count("clear") != 2 {
		t.Fatalf("both legend boxes should be cleared, got %d clears", rec.count("clear"))
	}
}
