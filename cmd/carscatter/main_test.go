package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bebeshannu/datavis-a2/src/config"
)

const carsCSV = "Name,Type,Retail Price,Dealer Cost,Engine Size (l),Horsepower(HP),City Miles Per Gallon\n" +
	"Acura RSX,Sedan,\"$23,820\",\"$21,761\",2.0,200,24\n" +
	"Broken,Sedan,n/a,,1.6,100,30\n" +
	"Audi A4,Sedan,\"$33,430\",\"$30,366\",3.0,220,17\n"

func testConfig(t *testing.T) (config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cars.csv")
	if err := os.WriteFile(path, []byte(carsCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	cfg := config.Config{DataPath: path, LogLevel: "error", FetchTimeout: 5 * time.Second, Width: 450, Height: 260}
	return cfg, dir
}

func execute(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderWritesPNGAndLegend(t *testing.T) {
	cfg, dir := testConfig(t)
	plot := filepath.Join(dir, "out", "scatter.png")
	legend := filepath.Join(dir, "out", "legend.svg")
	detail := filepath.Join(dir, "out", "detail.txt")
	out, err := execute(t, cfg, "render", "-o", plot, "--legend", legend, "--detail", detail, "--select", "1")
	if err != nil {
		t.Fatalf("render: %v\n%s", err, out)
	}
	if !strings.Contains(out, "2 vehicles, 1 rows skipped") {
		t.Fatalf("unexpected output: %s", out)
	}
	b, err := os.ReadFile(plot)
	if err != nil || !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Fatalf("plot not a PNG: %v", err)
	}
	b, err = os.ReadFile(legend)
	if err != nil || !strings.Contains(string(b), "<svg") {
		t.Fatalf("legend not an SVG: %v", err)
	}
	b, err = os.ReadFile(detail)
	if err != nil || !strings.HasPrefix(string(b), "Audi A4\nType: Sedan\n") {
		t.Fatalf("detail = %q, %v", b, err)
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	cfg, dir := testConfig(t)
	if _, err := execute(t, cfg, "render", "-o", filepath.Join(dir, "x.jpg")); err == nil {
		t.Fatalf("expected error for .jpg output")
	}
	if _, err := execute(t, cfg, "render", "-o", filepath.Join(dir, "x.png"), "--select", "5"); err == nil {
		t.Fatalf("expected error for out-of-range selection")
	}
}

func TestRenderMissingDataStampsError(t *testing.T) {
	cfg, dir := testConfig(t)
	plot := filepath.Join(dir, "err.png")
	detail := filepath.Join(dir, "err.txt")
	_, err := execute(t, cfg, "--data", filepath.Join(dir, "missing.csv"), "render", "-o", plot, "--detail", detail)
	if err == nil {
		t.Fatalf("expected load error")
	}
	if _, serr := os.Stat(plot); serr != nil {
		t.Fatalf("error image not written: %v", serr)
	}
	b, rerr := os.ReadFile(detail)
	if rerr != nil {
		t.Fatalf("detail not written: %v", rerr)
	}
	if !strings.HasPrefix(string(b), "Error: ") || !strings.Contains(string(b), "missing.csv") {
		t.Fatalf("detail = %q, want the load error", b)
	}
	if strings.Contains(string(b), "Type:") {
		t.Fatalf("detail should hold only the error: %q", b)
	}
}

func TestInspect(t *testing.T) {
	cfg, _ := testConfig(t)
	out, err := execute(t, cfg, "inspect", "--record", "1", "--list")
	if err != nil {
		t.Fatalf("inspect: %v\n%s", err, out)
	}
	for _, want := range []string{
		"Rows: 3  Plotted: 2  Skipped: 1",
		"Retail price: $23,820 .. $33,430",
		"Engine size: 2.0 L .. 3.0 L (2 known)",
		"Audi A4\nType: Sedan\nRetail Price: $33,430\nDealer Cost: $30,366\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInvalidLogLevel(t *testing.T) {
	cfg, _ := testConfig(t)
	if _, err := execute(t, cfg, "--log-level", "chatty", "inspect"); err == nil {
		t.Fatalf("expected validation error")
	}
}
