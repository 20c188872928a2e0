// Package ass renders parsed timed-text documents into ASS (Advanced
// SubStation Alpha) scripts. Geometry and styling follow what YouTube's own
// player renders as closely as the ASS model allows, so numeric mappings here
// are deliberate and should not be "improved" without comparing output
// against the player.
package ass

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"yttc/config"
	"yttc/misc"
	"yttc/srv3"
)

// Defaults mirror the geometry of YouTube's player: captions are laid out on
// a 1280x720 canvas with a 38px base font.
const (
	DefaultPlayResX     = 1280
	DefaultPlayResY     = 720
	DefaultBaseFontSize = 38
)

// Script holds rendering geometry for one output script.
type Script struct {
	PlayResX     int
	PlayResY     int
	BaseFontSize int

	log *zap.Logger
}

// NewScript creates renderer with geometry from configuration, falling back
// to player defaults for unset values.
func NewScript(cfg *config.ScriptConfig, log *zap.Logger) *Script {
	s := &Script{
		PlayResX:     DefaultPlayResX,
		PlayResY:     DefaultPlayResY,
		BaseFontSize: DefaultBaseFontSize,
		log:          log,
	}
	if cfg != nil {
		if cfg.PlayResX > 0 {
			s.PlayResX = cfg.PlayResX
		}
		if cfg.PlayResY > 0 {
			s.PlayResY = cfg.PlayResY
		}
		if cfg.BaseFontSize > 0 {
			s.BaseFontSize = cfg.BaseFontSize
		}
	}
	return s
}

// fontStyleName maps pen font style codes to font names YouTube uses.
// See https://github.com/arcusmaximus/YTSubConverter/blob/38fb2ab469f37e8f3a5a6a27adf91d9d0e81ea4f/YTSubConverter.Shared/Formats/YttDocument.cs#L1123
func fontStyleName(fontStyle int) string {
	switch fontStyle {
	case 1:
		return "Courier New"
	case 2:
		return "Times New Roman"
	case 3:
		return "Lucida Console"
	case 4:
		return "Comic Sans Ms"
	case 6:
		return "Monotype Corsiva"
	case 7:
		return "Carrois Gothic Sc"
	default:
		return "Roboto"
	}
}

// pointToAlignment converts a window anchor point (0..8, row-major from top
// left) to ASS numpad alignment (1..9, row-major from bottom left).
func pointToAlignment(point int) int {
	if point >= 6 {
		return point - 5
	} else if point < 3 {
		return point + 7
	}
	return point + 1
}

// mapCoord converts a percent coordinate to script pixels. Percents are
// squeezed into the central 96% of the axis, matching the 2% margin the
// player keeps on every side.
func (s *Script) mapCoord(coord, max int) int {
	return int((2.0 + float64(coord)*0.96) / 100.0 * float64(max))
}

// fontSize converts a pen font scale (percent, 100 is normal) to an ASS font
// size. The player compresses the scale: going from 100% to 200% only grows
// rendered text by a quarter.
func (s *Script) fontSize(size int) float64 {
	return float64(s.BaseFontSize) * (1.0 + (float64(size)/100.0-1.0)/4.0)
}

// assColor packs RGB color and alpha into ASS &HAABBGGRR form. ASS alpha is
// inverted: 0 is opaque, 255 fully transparent.
func assColor(rgb, alpha int) uint32 {
	bgr := uint32(rgb&0x0000FF)<<16 | uint32(rgb&0x00FF00) | uint32(rgb&0xFF0000)>>16
	return bgr | uint32(0xFF-alpha)<<24
}

// assBool renders a boolean the way ASS styles expect it, -1 for true.
func assBool(v bool) int {
	if v {
		return -1
	}
	return 0
}

// Header renders the script header: script info, one ASS style per declared
// pen plus style P0 for the default pen, and the events format line.
func (s *Script) Header(doc *srv3.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"[Script Info]\r\n"+
			"; Script generated by %s/%s\r\n"+
			"ScriptType: v4.00+\r\n"+
			"PlayResX: %d\r\n"+
			"PlayResY: %d\r\n"+
			"WrapStyle: 0\r\n"+
			"ScaledBorderAndShadow: yes\r\n"+
			"YCbCr Matrix: None\r\n"+
			"\r\n"+
			"[V4+ Styles]\r\n"+
			"Format: Name, "+
			"Fontname, Fontsize, "+
			"PrimaryColour, SecondaryColour, OutlineColour, BackColour, "+
			"Bold, Italic, Underline, StrikeOut, "+
			"ScaleX, ScaleY, "+
			"Spacing, Angle, "+
			"BorderStyle, Outline, Shadow, "+
			"Alignment, MarginL, MarginR, MarginV, "+
			"Encoding\r\n",
		misc.GetAppName(), misc.GetVersion(),
		s.PlayResX, s.PlayResY)

	s.writeStyle(&b, &srv3.DefaultPen)
	for i := range doc.Pens {
		s.writeStyle(&b, &doc.Pens[i])
	}

	b.WriteString("[Events]\r\n" +
		"Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\r\n")

	return b.String()
}

// writeStyle renders one pen as an ASS style named P<id+1>. A pen with a
// visible background becomes an opaque box (BorderStyle 3) and its edge type
// is ignored since ASS cannot combine the two.
func (s *Script) writeStyle(b *strings.Builder, pen *srv3.Pen) {
	outline := assColor(pen.EdgeColor, pen.ForegroundAlpha)
	borderStyle := 0
	outlineWidth := 0
	if pen.BackgroundAlpha > 0 {
		outline = assColor(pen.BackgroundColor, pen.BackgroundAlpha)
		borderStyle = 3
		outlineWidth = 1
	} else if pen.EdgeType > 0 {
		borderStyle = 1
	}

	fmt.Fprintf(b,
		"Style: "+
			"P%d,"+ /* Name */
			"%s,%f,"+ /* Font{name,size} */
			"&H%x,&H0,&H%x,&H%x,"+ /* {Primary,Secondary,Outline,Back}Colour */
			"%d,%d,0,0,"+ /* Bold, Italic, Underline, StrikeOut */
			"100,100,"+ /* Scale{X,Y} */
			"0,0,"+ /* Spacing, Angle */
			"%d,%d,0,"+ /* BorderStyle, Outline, Shadow */
			"2,0,0,0,"+ /* Alignment, Margin[LRV] */
			"1\r\n", /* Encoding */
		pen.ID+1,
		fontStyleName(pen.FontStyle), s.fontSize(pen.FontSize),
		assColor(pen.ForegroundColor, pen.ForegroundAlpha),
		outline, outline,
		assBool(pen.Bold), assBool(pen.Italic),
		borderStyle, outlineWidth)
}

// position resolves event placement in script pixels plus ASS alignment.
// Events without a window position sit bottom-center like plain captions.
func (s *Script) position(wp *srv3.WindowPos) (x, y, align int) {
	if wp != nil {
		return s.mapCoord(wp.X, s.PlayResX), s.mapCoord(wp.Y, s.PlayResY), pointToAlignment(wp.Point)
	}
	return s.mapCoord(50, s.PlayResX), s.mapCoord(100, s.PlayResY), 2
}

// EventText renders the text of one event: a positioning block followed by
// each segment's style reset, edge override tags and escaped text.
func (s *Script) EventText(doc *srv3.Document, ev *srv3.Event) string {
	var b strings.Builder

	x, y, align := s.position(doc.WindowPosAt(ev.WP))
	fmt.Fprintf(&b, `{\an%d\pos(%d,%d)}`, align, x, y)

	text := ev.Text
	for _, seg := range ev.Segments {
		s.styleSegment(&b, doc.PenAt(seg.Pen))
		n := min(seg.Size, len(text))
		writeText(&b, text[:n])
		text = text[n:]
	}
	return b.String()
}

func (s *Script) styleSegment(b *strings.Builder, pen *srv3.Pen) {
	fmt.Fprintf(b, `{\rP%d}`, pen.ID+1)

	if pen.BackgroundAlpha != 0 {
		// ASS doesn't support text shadows or outlines with BorderStyle 3,
		// the opaque box always wins.
		return
	}

	switch pen.EdgeType {
	case srv3.EdgeTypeHardShadow:
		b.WriteString(`{\shad2}`)
	// A glow approximates a soft shadow better than a plain shadow would,
	// even if YTSubConverter renders it differently.
	case srv3.EdgeTypeSoftShadow:
		b.WriteString(`{\bord2\blur3}`)
	case srv3.EdgeTypeGlow:
		b.WriteString(`{\bord1\blur1}`)
	case srv3.EdgeTypeBevel:
		b.WriteString(`{\shad2}`)
	case srv3.EdgeTypeNone:
	default:
		s.log.Warn("bug: Unhandled edge type in renderer", zap.Int("type", int(pen.EdgeType)))
	}
}

// writeText escapes raw segment text for an ASS dialogue line: carriage
// returns are dropped and newlines become hard line breaks.
func writeText(b *strings.Builder, text string) {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
		case '\n':
			b.WriteString(`\N`)
		default:
			b.WriteByte(text[i])
		}
	}
}
