// Package srv3 parses YouTube SRV3/YTT timed-text documents into a typed
// model: a style table (pens and window positions) plus a sequence of timed
// events made of styled text segments. The format has no official
// documentation; attribute semantics follow what YouTube's own player and the
// YTSubConverter tool agree on.
// See https://github.com/arcusmaximus/YTSubConverter
package srv3

// Pen is a named text style. Declared pens live in Document.Pens; everything
// a pen does not set explicitly comes from DefaultPen.
type Pen struct {
	ID int

	FontSize  int
	FontStyle int

	Bold   bool
	Italic bool

	EdgeType  EdgeType
	EdgeColor int

	RubyPart RubyPart

	ForegroundColor int
	ForegroundAlpha int
	BackgroundColor int
	BackgroundAlpha int
}

// DefaultPen is the style every pen declaration starts from and the style of
// any text that references no pen at all. Treated as immutable.
var DefaultPen = Pen{
	ID: -1,

	FontSize:  100,
	FontStyle: 0,

	EdgeType:  EdgeTypeNone,
	EdgeColor: 0x020202,

	RubyPart: RubyPartNone,

	ForegroundColor: 0xFFFFFF,
	ForegroundAlpha: 254,
	BackgroundColor: 0x080808,
	BackgroundAlpha: 192,
}

// WindowPos is a named screen anchor: a point on a 3x3 grid plus horizontal
// and vertical offsets in percent.
type WindowPos struct {
	ID int

	Point int
	X, Y  int
}

// Segment is a run of event text sharing one pen. It stores only its byte
// length within the owning event's text buffer and the index of its pen in
// Document.Pens (negative for DefaultPen); it never copies text.
type Segment struct {
	Size int
	Pen  int
}

// Event is one subtitle cue. Text is the shared buffer all segments slice
// into, in order. WP indexes Document.WindowPositions, negative when the cue
// has no explicit position.
type Event struct {
	Start    int64
	Duration int64

	Text     string
	Segments []Segment

	WP int
}

// Document is the parse result. Pens and WindowPositions are append-only
// declaration tables; events and segments reference them by index, so the
// tables must not be mutated once parsing completes.
type Document struct {
	Pens            []Pen
	WindowPositions []WindowPos

	Events []Event
}

// FindPen returns the index of the most recent pen declared with the given
// id, or -1. Later declarations shadow earlier ones.
func (d *Document) FindPen(id int) int {
	for i := len(d.Pens) - 1; i >= 0; i-- {
		if d.Pens[i].ID == id {
			return i
		}
	}
	return -1
}

// FindWindowPos returns the index of the most recent window position
// declared with the given id, or -1.
func (d *Document) FindWindowPos(id int) int {
	for i := len(d.WindowPositions) - 1; i >= 0; i-- {
		if d.WindowPositions[i].ID == id {
			return i
		}
	}
	return -1
}

// PenAt resolves a segment or event pen index, falling back to DefaultPen
// for out-of-table values.
func (d *Document) PenAt(idx int) *Pen {
	if idx < 0 || idx >= len(d.Pens) {
		return &DefaultPen
	}
	return &d.Pens[idx]
}

// WindowPosAt resolves an event window position index, nil when the event
// has none.
func (d *Document) WindowPosAt(idx int) *WindowPos {
	if idx < 0 || idx >= len(d.WindowPositions) {
		return nil
	}
	return &d.WindowPositions[idx]
}
