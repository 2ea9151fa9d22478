package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roadwatch-io/trackview/internal/model"
)

func sp(s string) *string   { return &s }
func fp(f float64) *float64 { return &f }

func rec(id int64, plate, track string) model.Record {
	r := model.Record{MessageID: id}
	if plate != "" {
		r.Plate = sp(plate)
	}
	if track != "" {
		r.TrackID = sp(track)
	}
	return r
}

func ids(records []model.Record) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.MessageID)
	}
	return out
}

func TestDerive_FilterAllMatchesPlateCaseInsensitive(t *testing.T) {
	raw := []model.Record{
		rec(5, "ABC1D23", "T1"),
		rec(2, "XYZ9K88", "T2"),
	}

	got := derive(raw, "abc", model.FilterAll, model.SortNone, false)

	assert.Equal(t, []int64{5}, ids(got))
}

func TestDerive_FilterAllMatchesTrackID(t *testing.T) {
	raw := []model.Record{
		rec(1, "AAA0000", "alpha-7"),
		rec(2, "BBB1111", "beta-9"),
	}

	got := derive(raw, "BETA", model.FilterAll, model.SortNone, false)

	assert.Equal(t, []int64{2}, ids(got))
}

func TestDerive_FilterPlateIgnoresTrackID(t *testing.T) {
	raw := []model.Record{
		rec(1, "AAA0000", "match-me"),
		rec(2, "match-me", "zzz"),
	}

	got := derive(raw, "match", model.FilterPlate, model.SortNone, false)

	assert.Equal(t, []int64{2}, ids(got))
}

func TestDerive_AbsentFieldNeverMatches(t *testing.T) {
	raw := []model.Record{
		{MessageID: 1}, // no plate, no track id
		rec(2, "ABC", ""),
	}

	got := derive(raw, "abc", model.FilterAll, model.SortNone, false)

	assert.Equal(t, []int64{2}, ids(got))
}

func TestDerive_BlankFilterKeepsEverything(t *testing.T) {
	raw := []model.Record{rec(1, "A", ""), rec(2, "B", "")}

	got := derive(raw, "   ", model.FilterAll, model.SortNone, false)

	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestDerive_SortMessageIDDescendingAndFlip(t *testing.T) {
	raw := []model.Record{
		rec(5, "ABC1D23", "T1"),
		rec(2, "XYZ9K88", "T2"),
	}

	desc := derive(raw, "", model.FilterAll, model.SortMessageID, true)
	assert.Equal(t, []int64{5, 2}, ids(desc))

	asc := derive(raw, "", model.FilterAll, model.SortMessageID, false)
	assert.Equal(t, []int64{2, 5}, ids(asc))
}

func TestDerive_TimestampSortsRawString(t *testing.T) {
	// Mixed encodings: lexicographic on the raw string, not calendar order.
	raw := []model.Record{
		{MessageID: 1, Timestamp: sp("2023-10-27T10:30:00+00:00")},
		{MessageID: 2, Timestamp: sp("2023-10-27T09:00:00")},
		{MessageID: 3}, // absent sorts as ""
	}

	got := derive(raw, "", model.FilterAll, model.SortTimestamp, false)

	assert.Equal(t, []int64{3, 2, 1}, ids(got))
}

func TestDerive_AbsentNumericSortsAsMinimum(t *testing.T) {
	raw := []model.Record{
		{MessageID: 1, Latitude: fp(-38.7)},
		{MessageID: 2},
		{MessageID: 3, Latitude: fp(41.1)},
	}

	got := derive(raw, "", model.FilterAll, model.SortLatitude, false)

	assert.Equal(t, []int64{2, 1, 3}, ids(got))
}

func TestDerive_DescendingReversesTies(t *testing.T) {
	// Equal sort keys must appear in reverse of insertion order when
	// descending: the view is a reversal of a stable ascending sort.
	raw := []model.Record{
		rec(1, "SAME", ""),
		rec(2, "SAME", ""),
		rec(3, "SAME", ""),
	}

	asc := derive(raw, "", model.FilterAll, model.SortPlate, false)
	assert.Equal(t, []int64{1, 2, 3}, ids(asc))

	desc := derive(raw, "", model.FilterAll, model.SortPlate, true)
	assert.Equal(t, []int64{3, 2, 1}, ids(desc))
}

func TestDerive_ReversalIsSelfInverse(t *testing.T) {
	raw := []model.Record{rec(4, "D", ""), rec(1, "A", ""), rec(3, "C", "")}

	once := derive(raw, "", model.FilterAll, model.SortPlate, true)
	twiceBack := derive(raw, "", model.FilterAll, model.SortPlate, false)

	for i := range once {
		assert.Equal(t, once[len(once)-1-i].MessageID, twiceBack[i].MessageID)
	}
}

func TestDerive_FilteredIsSubsequenceOfRaw(t *testing.T) {
	raw := []model.Record{
		rec(1, "AB", ""), rec(2, "BC", ""), rec(3, "CD", ""), rec(4, "AB", ""),
	}

	got := derive(raw, "b", model.FilterAll, model.SortNone, false)

	// Unsorted filtering preserves raw order and invents nothing.
	assert.Equal(t, []int64{1, 2, 4}, ids(got))
}

func TestDerive_Idempotent(t *testing.T) {
	raw := []model.Record{rec(2, "B", "t2"), rec(1, "A", "t1"), rec(3, "C", "t3")}

	first := derive(raw, "t", model.FilterTrackID, model.SortTrackID, true)
	second := derive(raw, "t", model.FilterTrackID, model.SortTrackID, true)

	assert.Equal(t, first, second)
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	raw := []model.Record{rec(3, "C", ""), rec(1, "A", ""), rec(2, "B", "")}

	_ = derive(raw, "", model.FilterAll, model.SortPlate, true)

	assert.Equal(t, []int64{3, 1, 2}, ids(raw))
}
