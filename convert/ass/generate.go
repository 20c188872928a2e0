package ass

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"yttc/config"
	"yttc/srv3"
	"yttc/subtitles"
)

// Generate renders the whole document into an ASS script at outputPath.
// Events are emitted ordered by start time, source order breaking ties.
func Generate(ctx context.Context, doc *srv3.Document, outputPath string, cfg *config.ScriptConfig, log *zap.Logger) (err error) {

	script := NewScript(cfg, log)

	queue := subtitles.New()
	for i := range doc.Events {
		ev := &doc.Events[i]
		if len(ev.Text) == 0 {
			continue
		}
		queue.Insert(ev.Start, ev.Duration, ev)
	}
	queue.Finalize()

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("unable to create output script: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(script.Header(doc)); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		cue, ok := queue.Next()
		if !ok {
			break
		}
		ev := cue.Payload.(*srv3.Event)
		if _, err := fmt.Fprintf(w, "Dialogue: 0,%s,%s,P0,,0,0,0,,%s\r\n",
			Timestamp(cue.Start), Timestamp(cue.Start+cue.Duration), script.EventText(doc, ev)); err != nil {
			return err
		}
	}

	log.Debug("Generated ASS script",
		zap.String("path", outputPath),
		zap.Int("events", queue.Len()))

	return w.Flush()
}

// Timestamp formats a millisecond offset as an ASS timestamp (H:MM:SS.CC).
// ASS stores centiseconds, extra precision is truncated. Negative offsets
// clamp to zero.
func Timestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	cs := ms / 10
	return fmt.Sprintf("%d:%02d:%02d.%02d", cs/360000, cs/6000%60, cs/100%60, cs%100)
}
