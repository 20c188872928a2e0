package srv3

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestParseSampleDocument(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	doc, err := ParseDocument(loadSampleDocument(t), Options{}, log)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	if len(doc.Pens) != 3 {
		t.Fatalf("expected 3 pens, got %d", len(doc.Pens))
	}
	if len(doc.WindowPositions) != 2 {
		t.Fatalf("expected 2 window positions, got %d", len(doc.WindowPositions))
	}
	if len(doc.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(doc.Events))
	}

	pen := doc.Pens[0]
	if !pen.Bold || pen.Italic {
		t.Errorf("pen 1 flags wrong: bold=%v italic=%v", pen.Bold, pen.Italic)
	}
	if pen.ForegroundColor != 0xFF0000 || pen.ForegroundAlpha != 254 {
		t.Errorf("pen 1 foreground wrong: %06x/%d", pen.ForegroundColor, pen.ForegroundAlpha)
	}
	if pen.BackgroundAlpha != 0 {
		t.Errorf("pen 1 background alpha = %d, want 0", pen.BackgroundAlpha)
	}
	if pen.EdgeType != EdgeTypeHardShadow || pen.EdgeColor != 0x222222 {
		t.Errorf("pen 1 edge wrong: %v/%06x", pen.EdgeType, pen.EdgeColor)
	}

	wp := doc.WindowPositions[0]
	if wp.Point != 4 || wp.X != 50 || wp.Y != 50 {
		t.Errorf("window pos 0 wrong: %+v", wp)
	}

	ev := doc.Events[0]
	if ev.Start != 0 || ev.Duration != 2000 {
		t.Errorf("event 0 timing wrong: %d/%d", ev.Start, ev.Duration)
	}
	if ev.Text != "Hello" {
		t.Errorf("event 0 text = %q", ev.Text)
	}
	if ev.WP != 0 {
		t.Errorf("event 0 window pos index = %d, want 0", ev.WP)
	}
	if len(ev.Segments) != 1 || ev.Segments[0].Size != 5 || ev.Segments[0].Pen != 0 {
		t.Errorf("event 0 segments wrong: %+v", ev.Segments)
	}
}

func TestParseSegmentsAndLineBreaks(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	doc, err := ParseDocument(loadSampleDocument(t), Options{}, log)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	ev := doc.Events[1]
	if ev.Text != "Big\nred" {
		t.Fatalf("event text = %q", ev.Text)
	}
	// the lone line break between spans of different font sizes becomes the
	// prefix of the second segment
	if len(ev.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %+v", ev.Segments)
	}
	if ev.Segments[0].Size != 3 || ev.Segments[0].Pen != 2 {
		t.Errorf("first segment wrong: %+v", ev.Segments[0])
	}
	if ev.Segments[1].Size != 4 || ev.Segments[1].Pen != 0 {
		t.Errorf("second segment wrong: %+v", ev.Segments[1])
	}
}

func TestParseLineBreakFoldsIntoPrevious(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	// both pens share the default font size, the break joins the first segment
	xml := mustDocument(t, `<timedtext format="3">
		<head><pen id="1" b="1"/><pen id="2" i="1"/></head>
		<body><p t="0" d="1000"><s p="1">Hi</s>
<s p="2">There</s></p></body>
	</timedtext>`)

	doc, err := ParseDocument(xml, Options{}, log)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	ev := doc.Events[0]
	if ev.Text != "Hi\nThere" {
		t.Fatalf("event text = %q", ev.Text)
	}
	if len(ev.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %+v", ev.Segments)
	}
	if ev.Segments[0].Size != 3 {
		t.Errorf("first segment size = %d, want 3 (break folded in)", ev.Segments[0].Size)
	}
	if ev.Segments[1].Size != 5 {
		t.Errorf("second segment size = %d, want 5", ev.Segments[1].Size)
	}
}

func TestParseTrailingLineBreakFolds(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	xml := mustDocument(t, `<timedtext format="3">
		<head><pen id="1" sz="200"/></head>
		<body><p t="0" d="1000"><s p="1">Last</s>
</p></body>
	</timedtext>`)

	doc, err := ParseDocument(xml, Options{}, log)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	ev := doc.Events[0]
	if len(ev.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %+v", ev.Segments)
	}
	// break at the end of the paragraph joins the segment before it even
	// though the font sizes differ
	if ev.Segments[0].Size != len(ev.Text) {
		t.Errorf("segment size = %d, text length %d", ev.Segments[0].Size, len(ev.Text))
	}
}

func TestParsePreserveWhitespaceRuns(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	doc, err := ParseDocument(loadSampleDocument(t), Options{PreserveWhitespaceRuns: true}, log)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	ev := doc.Events[1]
	if len(ev.Segments) != 3 {
		t.Fatalf("expected 3 segments in compatibility mode, got %+v", ev.Segments)
	}
	if ev.Segments[1].Size != 1 || ev.Segments[1].Pen != -1 {
		t.Errorf("line break segment wrong: %+v", ev.Segments[1])
	}
}

func TestParseDuplicatePenLastWins(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	doc, err := ParseDocument(loadSampleDocument(t), Options{}, log)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	idx := doc.FindPen(2)
	if idx != 2 {
		t.Fatalf("FindPen(2) = %d, want 2 (last declaration)", idx)
	}
	if doc.Pens[idx].RubyPart != RubyPartBefore {
		t.Errorf("pen ruby part = %v, want before", doc.Pens[idx].RubyPart)
	}
	if doc.Pens[idx].Italic {
		t.Errorf("last declaration of pen 2 should not be italic")
	}
}

func TestParseDanglingReferences(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	doc, err := ParseDocument(loadSampleDocument(t), Options{}, log)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	ev := doc.Events[2]
	if ev.WP != -1 {
		t.Errorf("dangling window pos should leave event unpositioned, got %d", ev.WP)
	}
	if ev.Text != "dangling window" {
		t.Errorf("event text = %q", ev.Text)
	}
	if len(ev.Segments) != 1 || ev.Segments[0].Pen != -1 {
		t.Errorf("event should fall back to default pen: %+v", ev.Segments)
	}
}

func TestParseRubyPartThreeNormalized(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	xml := mustDocument(t, `<timedtext format="3">
		<head><pen id="1" rb="3"/></head>
		<body/>
	</timedtext>`)

	doc, err := ParseDocument(xml, Options{}, log)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if doc.Pens[0].RubyPart != RubyPartNone {
		t.Errorf("ruby part 3 should normalize to none, got %v", doc.Pens[0].RubyPart)
	}
}

func TestParseDefaultTiming(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	xml := mustDocument(t, `<timedtext format="3">
		<body><p>no timing</p></body>
	</timedtext>`)

	doc, err := ParseDocument(xml, Options{}, log)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	ev := doc.Events[0]
	if ev.Start != 0 || ev.Duration != 0 {
		t.Errorf("untimed paragraph should start at 0 with duration 0, got %d/%d", ev.Start, ev.Duration)
	}
}

func TestParseMalformedAttributeKeepsDefault(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	xml := mustDocument(t, `<timedtext format="3">
		<head><pen id="1" sz="huge" fo="999"/></head>
		<body/>
	</timedtext>`)

	doc, err := ParseDocument(xml, Options{}, log)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	pen := doc.Pens[0]
	if pen.FontSize != DefaultPen.FontSize {
		t.Errorf("malformed sz should keep default font size, got %d", pen.FontSize)
	}
	if pen.ForegroundAlpha != DefaultPen.ForegroundAlpha {
		t.Errorf("out of range fo should keep default alpha, got %d", pen.ForegroundAlpha)
	}
}

func TestParseUnexpectedRoot(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	_, err := ParseDocument(mustDocument(t, `<transcript/>`), Options{}, log)
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}

	_, err = ParseDocument(nil, Options{}, log)
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument for nil document, got %v", err)
	}
}

func TestParseUnexpectedFormatIsNotFatal(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	doc, err := ParseDocument(mustDocument(t, `<timedtext format="2"><body><p t="1" d="2">x</p></body></timedtext>`), Options{}, log)
	if err != nil {
		t.Fatalf("unexpected format should only warn: %v", err)
	}
	if len(doc.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(doc.Events))
	}
}
