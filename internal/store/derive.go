package store

import (
	"math"
	"sort"
	"strings"

	"github.com/roadwatch-io/trackview/internal/model"
)

// derive computes the final view: filter, stable ascending sort, then a full
// reversal when descending. The reversal deliberately flips tie-break order for
// equal keys; it is not a descending stable sort.
func derive(raw []model.Record, filterText string, filterCol model.FilterColumn, sortCol model.SortColumn, descending bool) []model.Record {
	filtered := filterRecords(raw, filterText, filterCol)
	sorted := sortRecords(filtered, sortCol)
	if descending {
		reverse(sorted)
	}
	return sorted
}

func filterRecords(raw []model.Record, text string, col model.FilterColumn) []model.Record {
	if strings.TrimSpace(text) == "" {
		out := make([]model.Record, len(raw))
		copy(out, raw)
		return out
	}
	out := make([]model.Record, 0, len(raw))
	for _, r := range raw {
		if matches(r, text, col) {
			out = append(out, r)
		}
	}
	return out
}

// matches reports whether the record's relevant field contains text,
// case-insensitively. An absent field never matches.
func matches(r model.Record, text string, col model.FilterColumn) bool {
	switch col {
	case model.FilterPlate:
		return containsFold(r.Plate, text)
	case model.FilterTrackID:
		return containsFold(r.TrackID, text)
	default: // model.FilterAll
		return containsFold(r.Plate, text) || containsFold(r.TrackID, text)
	}
}

func containsFold(field *string, text string) bool {
	if field == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*field), strings.ToLower(text))
}

// sortRecords stable-sorts ascending by the chosen field's natural ordering.
// Absent numeric values sort as the minimum, absent strings as "". Timestamps
// compare as raw strings, never as parsed instants.
func sortRecords(records []model.Record, col model.SortColumn) []model.Record {
	if col == model.SortNone {
		return records
	}
	switch col {
	case model.SortMessageID:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].MessageID < records[j].MessageID
		})
	case model.SortLatitude:
		sort.SliceStable(records, func(i, j int) bool {
			return floatKey(records[i].Latitude) < floatKey(records[j].Latitude)
		})
	case model.SortLongitude:
		sort.SliceStable(records, func(i, j int) bool {
			return floatKey(records[i].Longitude) < floatKey(records[j].Longitude)
		})
	case model.SortPlate:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].PlateValue() < records[j].PlateValue()
		})
	case model.SortTrackID:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].TrackIDValue() < records[j].TrackIDValue()
		})
	case model.SortTimestamp:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].TimestampValue() < records[j].TimestampValue()
		})
	}
	return records
}

func floatKey(v *float64) float64 {
	if v == nil {
		return math.Inf(-1)
	}
	return *v
}

func reverse(records []model.Record) {
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
}
