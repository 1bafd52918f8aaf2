// Package stream reads and writes frames of raw float64 values.
//
// The wire format is a headerless sequence of IEEE-754 doubles in
// little-endian byte order. A frame is a fixed number of consecutive
// values; the stream carries frames back to back with no separators.
package stream
