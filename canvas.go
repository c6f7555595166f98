package ggspy

import (
	"fmt"
	"image"
)

// Context kind identifiers tried during resolution, mirroring the
// canvas getContext contract.
const (
	// ContextKindWebGL is the primary context kind.
	ContextKindWebGL = "webgl"

	// ContextKindWebGLLegacy is the legacy-prefixed alias of webgl.
	ContextKindWebGLLegacy = "experimental-webgl"

	// ContextKindWebGL2 is the newer major version.
	ContextKindWebGL2 = "webgl2"

	// ContextKindWebGL2Legacy is the legacy-prefixed alias of webgl2.
	ContextKindWebGL2Legacy = "experimental-webgl2"
)

// defaultContextKinds is the fixed fallback probe order.
var defaultContextKinds = []string{
	ContextKindWebGL,
	ContextKindWebGLLegacy,
	ContextKindWebGL2,
	ContextKindWebGL2Legacy,
}

// Canvas is a render surface that can hand out rendering contexts,
// mirroring the HTML canvas element's getContext contract.
//
// Implementations must return a stable ID for the lifetime of the
// surface: the Manager keys its recorder registry on it and reuses
// recorders across sessions on the same canvas.
type Canvas interface {
	// ID returns a stable identity for this canvas.
	ID() string

	// GetContext returns the rendering context for the given kind
	// identifier, or nil if the kind is not supported.
	GetContext(kind string) RenderingContext
}

// RenderingContext is a graphics context obtained from a Canvas.
type RenderingContext interface {
	// Kind returns the context kind identifier the context was
	// resolved with.
	Kind() string

	// Canvas returns the canvas the context draws on.
	Canvas() Canvas
}

// CommandSink receives one callback per drawing call from an
// instrumented context. [ContextRecorder] implements CommandSink.
type CommandSink interface {
	RecordCommand(name string, args ...any)
}

// CommandSource is implemented by rendering contexts that can attach a
// command observer. A recorder created over such a context attaches
// itself at construction; passing nil detaches.
type CommandSource interface {
	SetCommandSink(sink CommandSink)
}

// Imager is implemented by rendering contexts that can image their
// current frame contents. Recorders snapshot such contexts when a
// non-quick capture is finalized.
type Imager interface {
	Image() image.Image
}

// ResolveContext probes canvas for a usable rendering context.
//
// Kinds are tried in a fixed fallback order: the explicit override (when
// non-empty), then "webgl", "experimental-webgl", "webgl2" and
// "experimental-webgl2". A kind that yields no context is silently
// skipped; the first non-nil context wins.
//
// Returns ErrNoContext (wrapped with the canvas identity) when no kind
// yields a context.
func ResolveContext(canvas Canvas, override string) (RenderingContext, error) {
	kinds := defaultContextKinds
	if override != "" {
		kinds = append([]string{override}, defaultContextKinds...)
	}

	for _, kind := range kinds {
		if ctx := canvas.GetContext(kind); ctx != nil {
			Logger().Debug("resolved rendering context",
				"canvas", canvas.ID(), "kind", kind)
			return ctx, nil
		}
	}

	return nil, fmt.Errorf("%w: canvas %q", ErrNoContext, canvas.ID())
}
