// Package vcf reads and writes the text VCF container: a header of
// "##" meta lines closed by the "#CHROM" column line, followed by one
// tab-separated record per line.
//
// Records keep their original column bytes; only the INFO column is
// rewritten when an annotation is set, so untouched records are
// written back byte for byte.
package vcf
