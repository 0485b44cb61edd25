// Package dump defines the diagnostic state-dump capability the analyzer
// and oscilloscope accept: a sink that records field name/value pairs and
// nested arrays/objects, decoupled from any particular output format.
//
// This is the one polymorphic interface in the design; everything else is
// concrete structs and functions.
package dump
