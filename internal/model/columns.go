package model

// FilterColumn selects which field the free-text filter matches against.
type FilterColumn string

const (
	FilterAll     FilterColumn = "ALL"
	FilterPlate   FilterColumn = "PLATE"
	FilterTrackID FilterColumn = "TRACK_ID"
)

// SortColumn selects the field records are ordered by. The empty value means
// unsorted (records keep the order they were received in).
type SortColumn string

const (
	SortNone      SortColumn = ""
	SortTimestamp SortColumn = "TIMESTAMP"
	SortMessageID SortColumn = "MESSAGE_ID"
	SortPlate     SortColumn = "PLATE"
	SortTrackID   SortColumn = "TRACK_ID"
	SortLatitude  SortColumn = "LATITUDE"
	SortLongitude SortColumn = "LONGITUDE"
)

// DisplayColumn is one of the table columns whose visibility the user can toggle.
type DisplayColumn string

const (
	ColTimestamp DisplayColumn = "TIMESTAMP"
	ColMessageID DisplayColumn = "MESSAGE_ID"
	ColPlate     DisplayColumn = "PLATE"
	ColTrackID   DisplayColumn = "TRACK_ID"
)

// DisplayColumns lists every toggleable column in table order.
func DisplayColumns() []DisplayColumn {
	return []DisplayColumn{ColTimestamp, ColMessageID, ColPlate, ColTrackID}
}

// Title returns the column header shown in the UI.
func (c DisplayColumn) Title() string {
	switch c {
	case ColTimestamp:
		return "Data/Hora"
	case ColMessageID:
		return "ID"
	case ColPlate:
		return "Placa"
	case ColTrackID:
		return "TrackID"
	default:
		return string(c)
	}
}

// SortKey returns the sort column that corresponds to this display column.
func (c DisplayColumn) SortKey() SortColumn {
	switch c {
	case ColTimestamp:
		return SortTimestamp
	case ColMessageID:
		return SortMessageID
	case ColPlate:
		return SortPlate
	case ColTrackID:
		return SortTrackID
	default:
		return SortNone
	}
}
