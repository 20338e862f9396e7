// Package hanzi provides script-level transforms for Chinese text: detection
// of Han characters, simplified/traditional conversion through the
// dictionary, tone colourisation markup, ruby annotations, silhouettes and
// classifier formatting.
//
// Markup transforms only ever add markup around the input text; stripping
// the markup returns the original string.
package hanzi
