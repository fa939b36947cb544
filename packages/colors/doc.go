// Package colors converts between RGB, HEX and HSL representations and
// generates random colors.
//
// Channels are float64 and are never clamped: out-of-range or fractional
// values flow through the conversion arithmetic unchanged, and malformed hex
// input decodes to whatever its longest valid prefix encodes. HSL uses hue in
// degrees and saturation/lightness as percentages.
package colors
