// Package source supplies fixed-size frames to the frame loop.
//
// An InputSource hands out consecutive frames of Size() values. Concrete
// sources read from memory (ArraySource) or from a binary stream
// (StreamSource); FilterGainSource decorates another source and rewrites
// the gain term of every frame before it reaches the reverse recursion.
package source
