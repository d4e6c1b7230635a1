// Package layout simulates a vertically stacked page so the scroll model
// can run outside a browser.
package layout

import (
	"github.com/tharindu1999/portfolio/internal/scroll"
)

// Block is one element in document flow.
type Block struct {
	ID     string  `json:"id"`
	Height float64 `json:"height"`
}

// Page stacks blocks top to bottom inside a viewport.
type Page struct {
	viewport float64
	blocks   []Block
	offsets  map[string]float64
	height   float64
	scrollY  float64
}

// NewPage lays the blocks out from the document top. Negative heights are
// treated as zero.
func NewPage(viewport float64, blocks ...Block) *Page {
	p := &Page{
		viewport: viewport,
		blocks:   make([]Block, 0, len(blocks)),
		offsets:  make(map[string]float64, len(blocks)),
	}
	for _, b := range blocks {
		if b.Height < 0 {
			b.Height = 0
		}
		p.offsets[b.ID] = p.height
		p.blocks = append(p.blocks, b)
		p.height += b.Height
	}
	return p
}

// Blocks returns the blocks in document order.
func (p *Page) Blocks() []Block {
	out := make([]Block, len(p.blocks))
	copy(out, p.blocks)
	return out
}

// MaxScroll is the largest reachable scroll offset.
func (p *Page) MaxScroll() float64 {
	if m := p.height - p.viewport; m > 0 {
		return m
	}
	return 0
}

// ScrollTo moves the viewport, limited to the reachable range.
func (p *Page) ScrollTo(y float64) {
	switch {
	case y < 0:
		y = 0
	case y > p.MaxScroll():
		y = p.MaxScroll()
	}
	p.scrollY = y
}

// ScrollY is the current offset.
func (p *Page) ScrollY() float64 { return p.scrollY }

// Offset is the document position of a block's top edge.
func (p *Page) Offset(id string) (float64, bool) {
	off, ok := p.offsets[id]
	return off, ok
}

// Metrics implements scroll.Layout.
func (p *Page) Metrics() scroll.Metrics {
	return scroll.Metrics{
		ScrollY:        p.scrollY,
		DocumentHeight: p.height,
		ViewportHeight: p.viewport,
	}
}

// Rect implements scroll.Layout in viewport coordinates.
func (p *Page) Rect(id string) (scroll.Rect, bool) {
	off, ok := p.offsets[id]
	if !ok {
		return scroll.Rect{}, false
	}
	var h float64
	for _, b := range p.blocks {
		if b.ID == id {
			h = b.Height
			break
		}
	}
	top := off - p.scrollY
	return scroll.Rect{Top: top, Bottom: top + h}, true
}

// LayoutRect implements scroll.TransformFree. A simulated page has no
// transforms, so it equals Rect.
func (p *Page) LayoutRect(id string) (scroll.Rect, bool) { return p.Rect(id) }
