package srv3

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Attribute validation. Every numeric attribute in the format is an integer
// with an element-specific range; colors are 24-bit RGB in hex with an
// optional CSS-style "#". Validation failures never abort parsing - the
// caller logs and keeps whatever value the destination already had.

// ErrMalformedDocument marks input that cannot be interpreted as a timedtext
// document at all. It is the only parse failure that aborts a document.
var ErrMalformedDocument = errors.New("malformed timedtext document")

// ErrInvalidValue marks an attribute value that does not parse in full as a
// number of the expected base.
var ErrInvalidValue = errors.New("invalid attribute value")

// RangeError reports a value that parsed fine but lies outside the range an
// attribute allows. Value carries the parsed number for diagnostics.
type RangeError struct {
	Value    int64
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %d out of range [%d, %d]", e.Value, e.Min, e.Max)
}

// ParseInt parses raw as an integer of the given base. The whole string must
// be consumed, nothing is trimmed. Out-of-range values return a *RangeError
// carrying the parsed number.
func ParseInt(raw string, base, min, max int) (int, error) {
	parsed, err := strconv.ParseInt(raw, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}
	if parsed < int64(min) || parsed > int64(max) {
		return 0, &RangeError{Value: parsed, Min: min, Max: max}
	}
	return int(parsed), nil
}

// ParseColor parses a 24-bit RGB color, accepting an optional leading "#".
func ParseColor(raw string) (int, error) {
	if len(raw) > 0 && raw[0] == '#' {
		raw = raw[1:]
	}
	return ParseInt(raw, 16, 0, 0xFFFFFF)
}

type attrKind int

const (
	attrInt attrKind = iota
	attrColor
	attrFlag
)

// attrDef describes one attribute of an element kind: how to validate its
// value and where the result goes. A nil set means the attribute is
// recognized but intentionally not acted upon.
type attrDef[T any] struct {
	name     string
	kind     attrKind
	min, max int
	set      func(dst *T, v int, log *zap.Logger)
}

// applyAttr runs one element attribute through the definition table for its
// element kind. It reports whether the attribute name was recognized;
// malformed values are logged and dropped, leaving dst untouched.
func applyAttr[T any](defs []attrDef[T], dst *T, parent string, attr etree.Attr, log *zap.Logger) bool {
	for i := range defs {
		def := &defs[i]
		if def.name != attr.Key {
			continue
		}
		if def.set == nil {
			return true
		}

		var (
			v   int
			err error
		)
		switch def.kind {
		case attrColor:
			v, err = ParseColor(attr.Value)
		case attrFlag:
			// flags are only ever set, "0" and garbage alike leave the
			// default in place
			if attr.Value != "1" {
				return true
			}
			v = 1
		default:
			v, err = ParseInt(attr.Value, 10, def.min, def.max)
		}
		if err != nil {
			log.Warn("Ignoring malformed attribute value",
				zap.String("parent", parent), zap.String("attribute", attr.Key),
				zap.String("value", attr.Value), zap.Error(err))
			return true
		}

		def.set(dst, v, log)
		return true
	}
	return false
}
