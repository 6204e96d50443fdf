// Package library holds the annotation library: the reference repeat
// sequences, their reverse complements and the per-entry thresholds derived
// from an annotation mode. A Library is built once and is read-only
// afterwards, so workers share it without locking.
package library
