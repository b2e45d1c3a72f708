// Package util provides the dynamic-value helpers seqkit stages share:
// value equality across comparable and non-comparable types, an
// insertion-ordered seen set, and numeric coercion.
package util
