package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"appliance-site/internal/domain/blocks"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Rendered is one block's output. Position is the block's index in the layout.
type Rendered struct {
	Position int
	Kind     blocks.Kind
	HTML     template.HTML
}

type Renderer struct {
	registry   *Registry
	log        *zap.Logger
	fetchLimit int
}

func NewRenderer(registry *Registry, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{registry: registry, log: log, fetchLimit: 8}
}

func emptySection(kind blocks.Kind) template.HTML {
	return template.HTML(fmt.Sprintf(`<section class="block block-%s block-empty"></section>`,
		template.HTMLEscapeString(string(kind))))
}

// RenderBlocks renders layout in order. Data for all blocks is fetched concurrently
// first; output order is always layout order. Unregistered kinds produce no output and
// a failing block renders as an empty section.
func (r *Renderer) RenderBlocks(ctx context.Context, layout []blocks.Block, rc Context) []Rendered {
	type fetched struct {
		data any
		err  error
	}
	results := make([]fetched, len(layout))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.fetchLimit)
	for i, b := range layout {
		if b == nil {
			continue
		}
		entry, ok := r.registry.Lookup(b.Kind())
		if !ok || entry.Fetch == nil {
			continue
		}
		i, b := i, b
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					results[i].err = errors.Errorf("fetch panic: %v", p)
				}
			}()
			results[i].data, results[i].err = entry.Fetch(gctx, b)
			// block failures stay local to the block
			return nil
		})
	}
	_ = g.Wait()

	out := make([]Rendered, 0, len(layout))
	for i, b := range layout {
		if b == nil {
			continue
		}
		kind := b.Kind()
		entry, ok := r.registry.Lookup(kind)
		if !ok {
			r.log.Warn("unregistered block type skipped", zap.String("type", string(kind)), zap.Int("position", i))
			continue
		}

		if err := results[i].err; err != nil {
			r.log.Debug("block rendered empty", zap.String("type", string(kind)), zap.Int("position", i), zap.Error(err))
			out = append(out, Rendered{Position: i, Kind: kind, HTML: emptySection(kind)})
			continue
		}

		html, err := r.renderOne(entry, BlockView{Block: b, Data: results[i].data, Ctx: rc})
		if err != nil {
			r.log.Error("block render failed", zap.String("type", string(kind)), zap.Int("position", i), zap.Error(err))
			html = emptySection(kind)
		}
		out = append(out, Rendered{Position: i, Kind: kind, HTML: html})
	}
	return out
}

func (r *Renderer) renderOne(entry Entry, v BlockView) (html template.HTML, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Errorf("render panic: %v", p)
		}
	}()
	var buf bytes.Buffer
	if err := entry.Render(&buf, v); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
