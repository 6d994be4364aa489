// Package builder assembles a stream of tokenized content lines into
// component trees.
//
// BEGIN pushes an open component, END pops it after verifying the
// name, and every other line is attached as a property of the
// innermost open component. A root component is handed back the moment
// its END closes the stack, so structural failures later in the stream
// never invalidate roots that already completed.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/govobj/govobj/internal/contentline"
	"github.com/govobj/govobj/vobj"
)

// LevelTrace matches govobj.LevelTrace for per-line logging.
const LevelTrace = slog.Level(-8)

var ctx = context.Background()

type frame struct {
	comp *vobj.Component
	line int // line of the BEGIN, for unterminated-component errors
}

// Builder is the nesting state machine. It is stateful over the input
// and must not be shared across goroutines.
type Builder struct {
	profile vobj.Profile
	decoder vobj.ValueDecoder
	logger  *slog.Logger
	stack   []frame
}

// New returns a Builder applying the given format profile. decoder and
// logger may be nil.
func New(profile vobj.Profile, decoder vobj.ValueDecoder, logger *slog.Logger) *Builder {
	return &Builder{
		profile: profile,
		decoder: decoder,
		logger:  logger,
	}
}

// Depth returns the number of currently open components.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Feed consumes one tokenized line. It returns a non-nil component
// exactly when an END line closed a root-level component.
func (b *Builder) Feed(cl contentline.ContentLine) (*vobj.Component, error) {
	switch cl.Name {
	case "BEGIN":
		return nil, b.begin(cl)
	case "END":
		return b.end(cl)
	default:
		return nil, b.property(cl)
	}
}

// Finish reports an error if any component is still open.
func (b *Builder) Finish() error {
	if len(b.stack) == 0 {
		return nil
	}
	top := b.stack[len(b.stack)-1]
	return vobj.NewLineError(top.line,
		fmt.Errorf("%w: BEGIN:%s never closed", vobj.ErrUnterminatedComponent, top.comp.Name))
}

func (b *Builder) begin(cl contentline.ContentLine) error {
	name := cl.Value
	if name == "" {
		return vobj.NewLineError(cl.Line, vobj.ErrMissingComponentName)
	}
	if len(b.stack) == 0 && b.profile.Root != "" && !strings.EqualFold(name, b.profile.Root) {
		return vobj.NewLineError(cl.Line,
			fmt.Errorf("%w: BEGIN:%s, want %s", vobj.ErrUnexpectedRootComponent, name, b.profile.Root))
	}

	b.stack = append(b.stack, frame{
		comp: &vobj.Component{Name: strings.ToUpper(name)},
		line: cl.Line,
	})
	if b.logger != nil && b.logger.Enabled(ctx, LevelTrace) {
		b.logger.LogAttrs(ctx, LevelTrace, "component open",
			slog.String("name", strings.ToUpper(name)),
			slog.Int("depth", len(b.stack)),
			slog.Int("line", cl.Line))
	}
	return nil
}

func (b *Builder) end(cl contentline.ContentLine) (*vobj.Component, error) {
	name := cl.Value
	if name == "" {
		return nil, vobj.NewLineError(cl.Line, vobj.ErrMissingComponentName)
	}
	if len(b.stack) == 0 {
		return nil, vobj.NewLineError(cl.Line,
			fmt.Errorf("%w: END:%s", vobj.ErrEndWithoutBegin, name))
	}

	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	if !strings.EqualFold(top.comp.Name, name) {
		return nil, vobj.NewLineError(cl.Line,
			fmt.Errorf("%w: END:%s closes BEGIN:%s", vobj.ErrEndMismatch, name, top.comp.Name))
	}

	if b.logger != nil && b.logger.Enabled(ctx, LevelTrace) {
		b.logger.LogAttrs(ctx, LevelTrace, "component close",
			slog.String("name", top.comp.Name),
			slog.Int("depth", len(b.stack)))
	}

	if len(b.stack) == 0 {
		return top.comp, nil
	}
	parent := b.stack[len(b.stack)-1].comp
	parent.Components = append(parent.Components, top.comp)
	return nil, nil
}

func (b *Builder) property(cl contentline.ContentLine) error {
	if len(b.stack) == 0 {
		return vobj.NewLineError(cl.Line,
			fmt.Errorf("%w: %s", vobj.ErrPropertyOutsideComponent, cl.Name))
	}

	prop := &vobj.Property{
		Name:   cl.Name,
		Params: cl.Params,
		Value:  vobj.UnescapeText(cl.Value),
		Line:   cl.Line,
	}
	if b.profile.IsMultiValue(cl.Name) {
		prop.Values = vobj.SplitTextList(cl.Value)
	}

	if b.decoder != nil {
		decoded, err := b.decoder.DecodeValue(prop)
		switch {
		case err != nil:
			// Value interpretation is best-effort: keep the raw text.
			if b.logger != nil && b.logger.Enabled(ctx, slog.LevelDebug) {
				b.logger.LogAttrs(ctx, slog.LevelDebug, "value decode failed",
					slog.String("name", cl.Name),
					slog.Int("line", cl.Line),
					slog.String("err", err.Error()))
			}
		case decoded != nil:
			prop.Decoded = decoded
		}
	}

	top := b.stack[len(b.stack)-1].comp
	top.Properties = append(top.Properties, prop)
	return nil
}
