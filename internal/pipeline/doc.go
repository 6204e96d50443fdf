// Package pipeline streams VCF records through a fixed pool of
// classification workers and hands them to a sink in input order.
//
// The contracts to implement are Source, Annotator and Sink. This keeps
// the pipeline swappable and testable.
//
// Two collection strategies are available: the default waits for every
// record to be classified and sorts by index before writing anything;
// streaming mode releases records through a Reorderer as soon as the
// next index is complete, bounding in-flight records with a window.
package pipeline
