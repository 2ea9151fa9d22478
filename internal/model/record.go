package model

// Record is one tracked event returned by the remote endpoint.
// Field names follow the wire shape of the api/data payload.
type Record struct {
	MessageID int64    `json:"IDMENSAGEM"`          // unique; identity and stable sort key
	TrackID   *string  `json:"TrackID,omitempty"`   // optional
	Plate     *string  `json:"PLACA,omitempty"`     // optional
	Latitude  *float64 `json:"LATITUDE,omitempty"`  // optional
	Longitude *float64 `json:"LONGITUDE,omitempty"` // optional
	Timestamp *string  `json:"DATAHORA,omitempty"`  // kept verbatim; display formatting is the UI's concern
}

// PlateValue returns the plate or "" when absent.
func (r Record) PlateValue() string {
	if r.Plate == nil {
		return ""
	}
	return *r.Plate
}

// TrackIDValue returns the track id or "" when absent.
func (r Record) TrackIDValue() string {
	if r.TrackID == nil {
		return ""
	}
	return *r.TrackID
}

// TimestampValue returns the raw timestamp string or "" when absent.
func (r Record) TimestampValue() string {
	if r.Timestamp == nil {
		return ""
	}
	return *r.Timestamp
}
