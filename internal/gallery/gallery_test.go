package gallery

import (
	"bytes"
	"context"
	"image/gif"
	"os"
	"testing"
	"time"

	"PatternLab/internal/lesson"
	"PatternLab/internal/model"
	"PatternLab/internal/render"
)

func TestBuild_PNG(t *testing.T) {
	cat, err := lesson.Builtin()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	dir := t.TempDir()
	rep, err := Build(context.Background(), cat, Options{
		Dir:      dir,
		Format:   render.FormatPNG,
		Viewport: model.Viewport{Width: 400, Height: 250},
		Seed:     42,
		Workers:  2,
	}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(rep.Entries) != 6 {
		t.Fatalf("expected 6 charts (intro, 4 patterns, quiz), got %d", len(rep.Entries))
	}
	names := map[string]bool{}
	for _, e := range rep.Entries {
		names[e.Name] = true
		data, err := os.ReadFile(e.Path)
		if err != nil {
			t.Fatalf("read %s: %v", e.Path, err)
		}
		if !bytes.HasPrefix(data, []byte("\x89PNG")) {
			t.Errorf("%s is not a PNG", e.Path)
		}
		if e.Name == "intro" && !e.Annotate {
			t.Error("intro chart should be annotated")
		}
	}
	for _, want := range []string{"intro", "orderblock", "liquidity", "fvg", "bos", "quiz"} {
		if !names[want] {
			t.Errorf("missing chart %s", want)
		}
	}
	if rep.Seed != 42 {
		t.Errorf("expected seed 42, got %d", rep.Seed)
	}
}

func TestBuild_GIF(t *testing.T) {
	cat, _ := lesson.Builtin()
	dir := t.TempDir()
	rep, err := Build(context.Background(), cat, Options{
		Dir:           dir,
		Format:        render.FormatGIF,
		Viewport:      model.Viewport{Width: 300, Height: 250},
		Seed:          7,
		Duration:      100 * time.Millisecond,
		FrameInterval: 50 * time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	f, err := os.Open(rep.Entries[0].Path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode gif: %v", err)
	}
	if len(anim.Image) != 3 {
		t.Errorf("expected 3 frames (0, 0.875, 1), got %d", len(anim.Image))
	}
}

func TestBuild_Cancelled(t *testing.T) {
	cat, _ := lesson.Builtin()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Build(ctx, cat, Options{Dir: t.TempDir(), Seed: 1}, nil); err == nil {
		t.Error("expected error for cancelled context")
	}
}
