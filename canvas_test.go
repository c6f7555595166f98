package ggspy

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveContextFallbackOrder(t *testing.T) {
	canvas := newFakeCanvas("c", ContextKindWebGL2Legacy)

	ctx, err := ResolveContext(canvas, "")
	if err != nil {
		t.Fatalf("ResolveContext() = %v, want nil", err)
	}
	if ctx.Kind() != ContextKindWebGL2Legacy {
		t.Errorf("resolved kind = %q, want %q", ctx.Kind(), ContextKindWebGL2Legacy)
	}

	want := []string{
		ContextKindWebGL,
		ContextKindWebGLLegacy,
		ContextKindWebGL2,
		ContextKindWebGL2Legacy,
	}
	if len(canvas.probes) != len(want) {
		t.Fatalf("probes = %v, want %v", canvas.probes, want)
	}
	for i, k := range want {
		if canvas.probes[i] != k {
			t.Errorf("probe[%d] = %q, want %q", i, canvas.probes[i], k)
		}
	}
}

func TestResolveContextOverrideProbedFirst(t *testing.T) {
	canvas := newFakeCanvas("c", "gg", ContextKindWebGL)

	ctx, err := ResolveContext(canvas, "gg")
	if err != nil {
		t.Fatalf("ResolveContext() = %v, want nil", err)
	}
	if ctx.Kind() != "gg" {
		t.Errorf("resolved kind = %q, want %q", ctx.Kind(), "gg")
	}
	if len(canvas.probes) != 1 {
		t.Errorf("probes = %v, want exactly the override", canvas.probes)
	}
}

func TestResolveContextOverrideMissFallsBack(t *testing.T) {
	canvas := newFakeCanvas("c", ContextKindWebGL)

	ctx, err := ResolveContext(canvas, "gg")
	if err != nil {
		t.Fatalf("ResolveContext() = %v, want nil", err)
	}
	if ctx.Kind() != ContextKindWebGL {
		t.Errorf("resolved kind = %q, want %q", ctx.Kind(), ContextKindWebGL)
	}
	if len(canvas.probes) != 2 || canvas.probes[0] != "gg" {
		t.Errorf("probes = %v, want [gg webgl]", canvas.probes)
	}
}

func TestResolveContextNoUsableKind(t *testing.T) {
	canvas := newFakeCanvas("orphan")

	_, err := ResolveContext(canvas, "")
	if !errors.Is(err, ErrNoContext) {
		t.Fatalf("ResolveContext() = %v, want ErrNoContext", err)
	}
	if !strings.Contains(err.Error(), `"orphan"`) {
		t.Errorf("error %q does not name the canvas", err)
	}
}
