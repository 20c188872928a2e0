package ass

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"yttc/srv3"
)

func TestTimestamp(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "0:00:00.00"},
		{10, "0:00:00.01"},
		{1500, "0:00:01.50"},
		{61510, "0:01:01.51"},
		{3600000, "1:00:00.00"},
		{3661990, "1:01:01.99"},
		{5, "0:00:00.00"}, // sub-centisecond precision truncates
		{-100, "0:00:00.00"},
	}
	for _, tc := range cases {
		if got := Timestamp(tc.ms); got != tc.want {
			t.Errorf("Timestamp(%d) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	doc := &srv3.Document{
		Events: []srv3.Event{
			// out of order on purpose
			{Start: 2000, Duration: 1000, Text: "second", Segments: []srv3.Segment{{Size: 6, Pen: -1}}, WP: -1},
			{Start: 0, Duration: 1500, Text: "first", Segments: []srv3.Segment{{Size: 5, Pen: -1}}, WP: -1},
			{Start: 1000, Duration: 0, Text: "", WP: -1}, // empty events are dropped
		},
	}

	out := filepath.Join(t.TempDir(), "out.ass")
	if err := Generate(context.Background(), doc, out, nil, log); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	script := string(data)

	if !strings.HasPrefix(script, "[Script Info]\r\n") {
		t.Fatal("output does not start with header")
	}

	first := strings.Index(script, `Dialogue: 0,0:00:00.00,0:00:01.50,P0,,0,0,0,,{\an2\pos(640,705)}{\rP0}first`)
	second := strings.Index(script, `Dialogue: 0,0:00:02.00,0:00:03.00,P0,,0,0,0,,{\an2\pos(640,705)}{\rP0}second`)
	if first < 0 || second < 0 {
		t.Fatalf("dialogue lines missing or wrong:\n%s", script)
	}
	if first > second {
		t.Error("events not ordered by start time")
	}

	if strings.Count(script, "Dialogue:") != 2 {
		t.Errorf("expected 2 dialogue lines, got %d", strings.Count(script, "Dialogue:"))
	}
}

func TestGenerateCancelled(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := &srv3.Document{
		Events: []srv3.Event{
			{Start: 0, Duration: 1000, Text: "x", Segments: []srv3.Segment{{Size: 1, Pen: -1}}, WP: -1},
		},
	}

	out := filepath.Join(t.TempDir(), "out.ass")
	if err := Generate(ctx, doc, out, nil, log); err == nil {
		t.Fatal("expected context error")
	}
}
