// Package align holds the sequence-similarity primitive used by the
// classifier. Callers only depend on Matcher; SemiGlobal is the concrete
// affine-gap implementation.
package align
