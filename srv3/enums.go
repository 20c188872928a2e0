package srv3

// Text edge (outline/shadow) kind a pen may request.
// ENUM(none, hardShadow, bevel, glow, softShadow)
type EdgeType int

// Ruby (furigana) role of a pen. Raw value 3 is unused by the format and is
// normalized to none during parsing.
// ENUM(none, base, parenthesis, before=4, after)
type RubyPart int
