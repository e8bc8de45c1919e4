package asset

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound reports a missing part or variant. Per-tick callers treat
// it as "skip this layer", never as a reason to abort the frame.
var ErrNotFound = errors.New("not found")

// ErrInvalidAsset reports an image rejected at load time. It never
// surfaces inside the tick loop.
var ErrInvalidAsset = errors.New("invalid asset")

// DefaultVariant names the variant used when a filename declares none.
const DefaultVariant = "default"

// OriginalVariant receives a part's existing default image when a merge
// turns a single-image part into a variant set.
const OriginalVariant = "original"

// baseRenderOrder is the fixed back-to-front layering for known parts.
// Parts outside this list draw after it, in first-seen order.
var baseRenderOrder = []string{"tail", "body", "legs", "arms", "head"}

// Variant is a named ordered animation sequence of at least one frame.
// Frames within a variant may differ in size.
type Variant struct {
	Name   string
	Frames []*Frame

	// FrameSeconds is the display duration of each frame. Zero means
	// constants.DefaultFrameSeconds.
	FrameSeconds float64
}

// FrameCount returns the number of frames in the sequence.
func (v *Variant) FrameCount() int {
	return len(v.Frames)
}

// Frame returns the frame at index modulo the frame count, nil when the
// sequence is empty. Negative indices wrap as well.
func (v *Variant) Frame(index int) *Frame {
	n := len(v.Frames)
	if n == 0 {
		return nil
	}
	i := index % n
	if i < 0 {
		i += n
	}
	return v.Frames[i]
}

// Part is a named creature layer with one or more appearance variants.
type Part struct {
	Name     string
	variants map[string]*Variant
}

// VariantNames returns the part's variant names in sorted order.
// Sorting keeps enumeration and default selection deterministic.
func (p *Part) VariantNames() []string {
	names := make([]string, 0, len(p.variants))
	for name := range p.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variant looks up a variant by name.
func (p *Part) Variant(name string) (*Variant, error) {
	v, ok := p.variants[name]
	if !ok {
		return nil, fmt.Errorf("part %q variant %q: %w", p.Name, name, ErrNotFound)
	}
	return v, nil
}

// Model is the asset description of one creature: parts, their variants,
// and the back-to-front render order. It is built once at hatch time and
// is immutable afterward except for additive Merge.
type Model struct {
	Name string

	parts map[string]*Part
	order []string // render order, maintained on insert
}

// NewModel creates an empty model.
func NewModel(name string) *Model {
	return &Model{
		Name:  name,
		parts: make(map[string]*Part),
	}
}

// AddFrame appends a frame to (part, variant), creating both as needed.
// An empty variant name maps to DefaultVariant. This is the validated
// entry point: frames reaching it are already decoded RGBA buffers.
func (m *Model) AddFrame(part, variant string, frame *Frame) {
	if variant == "" {
		variant = DefaultVariant
	}
	p, ok := m.parts[part]
	if !ok {
		p = &Part{Name: part, variants: make(map[string]*Variant)}
		m.parts[part] = p
		m.insertOrder(part)
	}
	v, ok := p.variants[variant]
	if !ok {
		v = &Variant{Name: variant}
		p.variants[variant] = v
	}
	v.Frames = append(v.Frames, frame)
}

// insertOrder places a new part into the render order: known parts keep
// their slot in baseRenderOrder, unknown parts append after it in
// first-seen order.
func (m *Model) insertOrder(part string) {
	rank := func(name string) int {
		for i, known := range baseRenderOrder {
			if known == name {
				return i
			}
		}
		return len(baseRenderOrder)
	}
	r := rank(part)
	for i, existing := range m.order {
		if rank(existing) > r {
			m.order = append(m.order[:i], append([]string{part}, m.order[i:]...)...)
			return
		}
	}
	m.order = append(m.order, part)
}

// RenderOrder returns all part names back to front.
func (m *Model) RenderOrder() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// PartCount returns the number of parts in the model.
func (m *Model) PartCount() int {
	return len(m.parts)
}

// Part looks up a part by name.
func (m *Model) Part(name string) (*Part, error) {
	p, ok := m.parts[name]
	if !ok {
		return nil, fmt.Errorf("part %q: %w", name, ErrNotFound)
	}
	return p, nil
}

// Merge adds every part and variant of other into m. Merging is additive
// and order-preserving: it never removes or reorders existing frames.
// When other brings a default-variant image to a part that currently has
// only a single default variant, the existing default is renamed to
// OriginalVariant so both appearances stay selectable.
func (m *Model) Merge(other *Model) {
	for _, partName := range other.RenderOrder() {
		src := other.parts[partName]
		for _, variantName := range src.VariantNames() {
			sv := src.variants[variantName]
			if variantName == DefaultVariant {
				m.promoteDefault(partName)
			}
			for _, fr := range sv.Frames {
				m.AddFrame(partName, variantName, fr)
			}
			if dv, ok := m.parts[partName].variants[variantName]; ok && dv.FrameSeconds == 0 {
				dv.FrameSeconds = sv.FrameSeconds
			}
		}
	}
}

// promoteDefault renames an existing lone default variant to
// OriginalVariant ahead of a merge that adds a new default.
func (m *Model) promoteDefault(partName string) {
	p, ok := m.parts[partName]
	if !ok {
		return
	}
	v, ok := p.variants[DefaultVariant]
	if !ok || len(p.variants) != 1 {
		return
	}
	delete(p.variants, DefaultVariant)
	v.Name = OriginalVariant
	p.variants[OriginalVariant] = v
}
