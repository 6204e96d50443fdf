// internal/fasta/reader_test.go
package fasta

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const plain = `>seq1 first record
ACGT
acgt
>seq2
NNnn

>empty
`

func TestReadAll(t *testing.T) {
	recs, err := ReadAll(strings.NewReader(plain))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("want 3 records, got %d", len(recs))
	}
	if recs[0].ID != "seq1" || string(recs[0].Seq) != "ACGTacgt" {
		t.Fatalf("bad first record: %+v", recs[0])
	}
	if recs[1].ID != "seq2" || string(recs[1].Seq) != "NNnn" {
		t.Fatalf("bad second record: %+v", recs[1])
	}
	if recs[2].ID != "empty" || len(recs[2].Seq) != 0 {
		t.Fatalf("bad empty record: %+v", recs[2])
	}
}

func TestScan_DataBeforeHeader(t *testing.T) {
	_, err := ReadAll(strings.NewReader("ACGT\n>x\nA\n"))
	if err == nil {
		t.Fatal("expected error for sequence before header")
	}
}

func TestScan_EmitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := Scan(context.Background(), strings.NewReader(plain), func(Record) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Fatalf("want stop after 1 record, got n=%d err=%v", n, err)
	}
}

func TestScan_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := 0
	err := Scan(ctx, strings.NewReader(plain), func(Record) error { n++; return nil })
	if !errors.Is(err, context.Canceled) || n != 0 {
		t.Fatalf("want canceled with 0 records, got n=%d err=%v", n, err)
	}
}
