// Package extract turns reader callbacks into sealed model types.
//
// A class-file reader drives a Sink for one type at a time, in the fixed
// order inner classes, fields, methods, constructors, annotations, and ends
// with EndType. Collect runs many producers in parallel and assembles their
// types into a model set.
package extract
