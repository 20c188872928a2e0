package srv3

import (
	"fmt"
	"math"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Document construction from the etree DOM. We want exhaustive parsing with
// per-attribute validation: a malformed attribute or an unknown element only
// costs a warning and the affected value, never the document.

// Options control parser behavior.
type Options struct {
	// PreserveWhitespaceRuns keeps line-break-only spans and text nodes as
	// segments of their own instead of folding them into a neighbor. This
	// reproduces the older, pre-merge segmentation.
	PreserveWhitespaceRuns bool
}

var penAttrDefs = []attrDef[Pen]{
	{name: "id", max: math.MaxInt32, set: func(p *Pen, v int, _ *zap.Logger) { p.ID = v }},
	{name: "sz", max: math.MaxInt32, set: func(p *Pen, v int, _ *zap.Logger) { p.FontSize = v }},
	{name: "fs", min: 1, max: 7, set: func(p *Pen, v int, _ *zap.Logger) { p.FontStyle = v }},
	{name: "et", min: 1, max: 4, set: func(p *Pen, v int, _ *zap.Logger) { p.EdgeType = EdgeType(v) }},
	{name: "ec", kind: attrColor, set: func(p *Pen, v int, _ *zap.Logger) { p.EdgeColor = v }},
	{name: "fc", kind: attrColor, set: func(p *Pen, v int, _ *zap.Logger) { p.ForegroundColor = v }},
	{name: "fo", max: 0xFF, set: func(p *Pen, v int, _ *zap.Logger) { p.ForegroundAlpha = v }},
	{name: "bc", kind: attrColor, set: func(p *Pen, v int, _ *zap.Logger) { p.BackgroundColor = v }},
	{name: "bo", max: 0xFF, set: func(p *Pen, v int, _ *zap.Logger) { p.BackgroundAlpha = v }},
	{name: "rb", max: 5, set: func(p *Pen, v int, log *zap.Logger) {
		// for whatever reason three is an unused value of this enum
		if v == 3 {
			log.Warn("Encountered unknown ruby part 3")
			v = 0
		}
		p.RubyPart = RubyPart(v)
	}},
	{name: "i", kind: attrFlag, set: func(p *Pen, _ int, _ *zap.Logger) { p.Italic = true }},
	{name: "b", kind: attrFlag, set: func(p *Pen, _ int, _ *zap.Logger) { p.Bold = true }},
}

var windowPosAttrDefs = []attrDef[WindowPos]{
	{name: "id", max: math.MaxInt32, set: func(w *WindowPos, v int, _ *zap.Logger) { w.ID = v }},
	{name: "ap", max: 8, set: func(w *WindowPos, v int, _ *zap.Logger) { w.Point = v }},
	{name: "ah", max: 100, set: func(w *WindowPos, v int, _ *zap.Logger) { w.X = v }},
	{name: "av", max: 100, set: func(w *WindowPos, v int, _ *zap.Logger) { w.Y = v }},
}

// paragraphAttrs collects raw attribute values of one "p" element; pen and
// window position ids are resolved against the tables afterwards.
type paragraphAttrs struct {
	start, duration int
	wp, pen         int
	hasWP, hasPen   bool
}

var paragraphAttrDefs = []attrDef[paragraphAttrs]{
	{name: "t", max: math.MaxInt32, set: func(a *paragraphAttrs, v int, _ *zap.Logger) { a.start = v }},
	{name: "d", max: math.MaxInt32, set: func(a *paragraphAttrs, v int, _ *zap.Logger) { a.duration = v }},
	{name: "wp", max: math.MaxInt32, set: func(a *paragraphAttrs, v int, _ *zap.Logger) { a.wp, a.hasWP = v, true }},
	{name: "p", max: math.MaxInt32, set: func(a *paragraphAttrs, v int, _ *zap.Logger) { a.pen, a.hasPen = v, true }},
	// window styles are recognized but not implemented
	{name: "ws"},
}

type spanAttrs struct {
	pen    int
	hasPen bool
}

var spanAttrDefs = []attrDef[spanAttrs]{
	{name: "p", max: math.MaxInt32, set: func(a *spanAttrs, v int, _ *zap.Logger) { a.pen, a.hasPen = v, true }},
}

// ParseDocument walks the etree DOM of a timedtext document and builds the
// style table and event sequence. Unreadable structure is fatal; everything
// else degrades to defaults with a warning.
func ParseDocument(doc *etree.Document, opts Options, log *zap.Logger) (*Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: no document", ErrMalformedDocument)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrMalformedDocument)
	}
	if root.Tag != "timedtext" {
		return nil, fmt.Errorf("%w: unexpected root element %q", ErrMalformedDocument, root.Tag)
	}
	if format := root.SelectAttrValue("format", ""); format != "3" {
		log.Warn("Unexpected timedtext format", zap.String("format", format))
	}

	d := &Document{}

	// heads first: bodies reference pens and window positions by id no
	// matter where in the document they are declared
	for _, el := range root.ChildElements() {
		if el.Tag == "head" {
			d.parseHead(el, log)
		}
	}
	for _, el := range root.ChildElements() {
		if el.Tag == "body" {
			d.parseBody(el, opts, log)
		}
	}

	return d, nil
}

func (d *Document) parseHead(head *etree.Element, log *zap.Logger) {
	for _, el := range head.ChildElements() {
		switch el.Tag {
		case "pen":
			d.parsePen(el, log)
		case "wp":
			d.parseWindowPos(el, log)
		}
	}
}

func (d *Document) parsePen(el *etree.Element, log *zap.Logger) {
	pen := DefaultPen
	for _, attr := range el.Attr {
		if !applyAttr(penAttrDefs, &pen, "pen", attr, log) {
			log.Warn("Unhandled pen attribute", zap.String("attribute", attr.Key))
		}
	}
	d.Pens = append(d.Pens, pen)
}

func (d *Document) parseWindowPos(el *etree.Element, log *zap.Logger) {
	var wp WindowPos
	for _, attr := range el.Attr {
		if !applyAttr(windowPosAttrDefs, &wp, "window pos", attr, log) {
			log.Warn("Unhandled window pos attribute", zap.String("attribute", attr.Key))
		}
	}
	d.WindowPositions = append(d.WindowPositions, wp)
}

func (d *Document) parseBody(body *etree.Element, opts Options, log *zap.Logger) {
	for _, el := range body.ChildElements() {
		if el.Tag == "p" {
			d.Events = append(d.Events, d.parseParagraph(el, opts, log))
		}
	}
}

// parseParagraph builds one event: resolves the paragraph-level pen and
// window position, then turns child text nodes and "s" spans into segments
// over one shared text buffer. A paragraph without t/d starts at 0 with
// duration 0.
func (d *Document) parseParagraph(el *etree.Element, opts Options, log *zap.Logger) Event {
	var pa paragraphAttrs
	for _, attr := range el.Attr {
		if !applyAttr(paragraphAttrDefs, &pa, "event", attr, log) {
			log.Warn("Unhandled event attribute", zap.String("attribute", attr.Key))
		}
	}

	ev := Event{Start: int64(pa.start), Duration: int64(pa.duration), WP: -1}

	eventPen := -1
	if pa.hasPen {
		if idx := d.FindPen(pa.pen); idx >= 0 {
			eventPen = idx
		} else {
			log.Warn("Non-existent pen assigned to event", zap.Int("id", pa.pen))
		}
	}
	if pa.hasWP {
		if idx := d.FindWindowPos(pa.wp); idx >= 0 {
			ev.WP = idx
		} else {
			log.Warn("Non-existent window pos assigned to event", zap.Int("id", pa.wp))
		}
	}

	var (
		buf     strings.Builder
		pending int // buffered bytes not yet attributed to any segment
	)

	children := el.Child
	for i, child := range children {
		var (
			raw string
			pen = eventPen
		)

		switch node := child.(type) {
		case *etree.CharData:
			raw = node.Data
		case *etree.Element:
			if node.Tag != "s" {
				log.Warn("Unknown event child element", zap.String("element", node.Tag))
				continue
			}
			if len(node.Child) == 0 {
				continue
			}
			var sa spanAttrs
			for _, attr := range node.Attr {
				if !applyAttr(spanAttrDefs, &sa, "segment", attr, log) {
					log.Warn("Unhandled segment attribute", zap.String("attribute", attr.Key))
				}
			}
			if sa.hasPen {
				if idx := d.FindPen(sa.pen); idx >= 0 {
					pen = idx
				} else {
					log.Warn("Non-existent pen assigned to segment", zap.Int("id", sa.pen))
				}
			}
			raw = node.Text()
		default:
			log.Warn("Unexpected event child node", zap.String("node", fmt.Sprintf("%T", child)))
			continue
		}

		text := CleanSegmentText(raw)
		if len(text) == 0 {
			continue
		}
		buf.WriteString(text)

		if !opts.PreserveWhitespaceRuns && isLineBreakRun(text) {
			// A run of bare line breaks carries no glyphs, so it should not
			// force a style boundary. Fold it into the previous segment when
			// that cannot change rendering (same font size, or nothing
			// follows); otherwise leave it for the next segment to absorb as
			// its prefix.
			last := i == len(children)-1
			if n := len(ev.Segments); n > 0 && (last || d.PenAt(ev.Segments[n-1].Pen).FontSize == d.PenAt(pen).FontSize) {
				ev.Segments[n-1].Size += pending + len(text)
				pending = 0
			} else {
				pending += len(text)
			}
			continue
		}

		ev.Segments = append(ev.Segments, Segment{Size: pending + len(text), Pen: pen})
		pending = 0
	}

	// line breaks left hanging when skipped nodes follow them
	if n := len(ev.Segments); pending > 0 && n > 0 {
		ev.Segments[n-1].Size += pending
	}

	ev.Text = buf.String()
	return ev
}

func isLineBreakRun(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' && text[i] != '\r' {
			return false
		}
	}
	return true
}
