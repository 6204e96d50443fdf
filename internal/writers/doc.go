// Package writers owns the output side of a run: it serialises annotated
// records to the output stream and classifies write failures.
package writers
