// Package render draws grids and search snapshots as terminal frames.
//
// A frame is one line per grid row, one glyph per cell:
//
//	#  wall          S  start         .  visited
//	~  trap          E  end           o  frontier
//	·  empty         @  current       *  path
//
// Precedence, highest first: start/end, current, path, frontier, visited,
// then the painted state. Colors come from lipgloss styles and degrade to
// plain glyphs when the output is not a terminal or WithPlain is set.
package render
