package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pbsvThresholds = Thresholds{Similarity: 0.6, SizeFraction: 0.75}

func TestNewEntry_RevComp(t *testing.T) {
	e := NewEntry("x", []byte("aacgtN"))
	assert.Equal(t, "AACGTN", string(e.Seq))
	assert.Equal(t, "NACGTT", string(e.RevComp))
}

func TestDeriveParams_Truncates(t *testing.T) {
	cases := []struct {
		n        int
		score    int
		minAllel int
	}{
		{10, 6, 7},
		{7, 4, 5},
		{288, 172, 216},
		{1, 0, 0},
	}
	for _, tc := range cases {
		e := NewEntry("x", make([]byte, tc.n))
		p := DeriveParams(e, pbsvThresholds)
		assert.Equal(t, tc.score, p.MinScore, "len %d", tc.n)
		assert.Equal(t, tc.minAllel, p.MinAlleleLen, "len %d", tc.n)
	}
}

func TestDeriveParams_MonotoneInSimilarity(t *testing.T) {
	e := NewEntry("x", make([]byte, 311))
	prev := -1
	for _, sim := range []float64{0.1, 0.3, 0.5, 0.6, 0.8, 1.0} {
		p := DeriveParams(e, Thresholds{Similarity: sim, SizeFraction: 0.75})
		require.GreaterOrEqual(t, p.MinScore, prev)
		prev = p.MinScore
	}
}

func TestNew_PairsParamsByIndex(t *testing.T) {
	lib, err := New([]Entry{
		NewEntry("A", []byte("ACGTACGTAC")),
		NewEntry("B", []byte("ACGTACG")),
	}, pbsvThresholds)
	require.NoError(t, err)
	require.Equal(t, 2, lib.Len())
	assert.Equal(t, []string{"A", "B"}, lib.Labels())
	assert.Equal(t, Params{MinScore: 6, MinAlleleLen: 7}, lib.Params(0))
	assert.Equal(t, Params{MinScore: 4, MinAlleleLen: 5}, lib.Params(1))
	assert.Equal(t, "CGTACGT", string(lib.Entry(1).RevComp))
}

func TestNew_FillsMissingRevComp(t *testing.T) {
	lib, err := New([]Entry{{Label: "raw", Seq: []byte("AAC")}}, pbsvThresholds)
	require.NoError(t, err)
	assert.Equal(t, "GTT", string(lib.Entry(0).RevComp))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil, pbsvThresholds)
	assert.ErrorIs(t, err, ErrEmptyLibrary)

	_, err = New([]Entry{NewEntry("e", nil)}, pbsvThresholds)
	assert.ErrorIs(t, err, ErrEmptySequence)

	_, err = New([]Entry{NewEntry("e", []byte("A"))}, Thresholds{Similarity: 0, SizeFraction: 0.5})
	assert.Error(t, err)
	_, err = New([]Entry{NewEntry("e", []byte("A"))}, Thresholds{Similarity: 0.5, SizeFraction: 1.5})
	assert.Error(t, err)
}

func TestBuild_PBSV(t *testing.T) {
	lib, err := Build(ModePBSV)
	require.NoError(t, err)
	require.Equal(t, []string{"ALU"}, lib.Labels())
	alu := lib.Entry(0)
	assert.Len(t, alu.Seq, 288)
	assert.Equal(t, Params{MinScore: 172, MinAlleleLen: 216}, lib.Params(0))
	assert.Equal(t, pbsvThresholds, lib.Thresholds())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" PBSV ")
	require.NoError(t, err)
	assert.Equal(t, ModePBSV, m)

	_, err = ParseMode("dfam")
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, err = Build(Mode("dfam"))
	assert.ErrorIs(t, err, ErrUnknownMode)

	assert.Equal(t, []Mode{ModePBSV}, Modes())
}

func TestLoadFASTA_BuildFrom(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "lib.fa")
	require.NoError(t, os.WriteFile(fn, []byte(">L1 extra\nACGTACGTAC\n>SVA\nacgtacg\n"), 0o644))

	entries, err := LoadFASTA(fn)
	require.NoError(t, err)
	lib, err := BuildFrom(ModePBSV, entries)
	require.NoError(t, err)
	assert.Equal(t, []string{"L1", "SVA"}, lib.Labels())
	assert.Equal(t, "ACGTACG", string(lib.Entry(1).Seq))

	_, err = LoadFASTA(filepath.Join(t.TempDir(), "missing.fa"))
	assert.Error(t, err)
}
