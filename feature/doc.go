// Package feature defines the reachability metadata record handed to the
// compiler integration stage, together with the accumulator that builds it.
//
// Reflective classes, constructors, fields and methods are carried as data
// shapes only; archive scanning detects reflection-config resources but does
// not decompose them, so these collections stay empty unless a caller adds
// entries explicitly.
package feature
