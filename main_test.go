package main

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestSnapshotCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")

	cmd := mainCmd()
	cmd.SetArgs([]string{"snapshot", "-o", out, "--width", "16", "--height", "12", "--color-mode", "log"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 16, 12) {
		t.Errorf("bounds = %v, want 16x12", got)
	}
}

func TestSnapshotOutsideSetIsFirstColor(t *testing.T) {
	out := filepath.Join(t.TempDir(), "far.png")

	cmd := mainCmd()
	cmd.SetArgs([]string{"snapshot", "-o", out, "--width", "4", "--height", "4",
		"--center-x", "10", "--center-y", "10", "--half-width", "1", "--half-height", "1"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	want := color.RGBA{0, 0, 255, 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := color.RGBAModel.Convert(img.At(x, y)); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSnapshotRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	for name, args := range map[string][]string{
		"color mode": {"snapshot", "-o", filepath.Join(dir, "a.png"), "--color-mode", "sqrt"},
		"extent":     {"snapshot", "-o", filepath.Join(dir, "b.png"), "--half-width", "0"},
		"size":       {"snapshot", "-o", filepath.Join(dir, "c.png"), "--width", "0"},
		"palette":    {"snapshot", "-o", filepath.Join(dir, "d.png"), "--palette", "nope"},
	} {
		cmd := mainCmd()
		cmd.SetArgs(args)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		if err := cmd.Execute(); err == nil {
			t.Errorf("%s: snapshot accepted bad flags %v", name, args)
		}
		if _, err := os.Stat(args[2]); err == nil {
			t.Errorf("%s: snapshot wrote %s despite bad flags", name, args[2])
		}
	}
}
