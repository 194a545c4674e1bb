// Package listview provides a cursor-driven list component for Bubble Tea.
//
// Only the rows inside the viewport are rendered, so redrawing a list of
// thousands of customers costs O(viewport height). Navigation follows the
// usual terminal conventions (arrows, j/k, pgup/pgdn, home/end, g/G) and the
// cursor survives item replacement by index, clamped to the new length.
package listview
