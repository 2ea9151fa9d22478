package tui

import "time"

const displayLayout = "02/01/2006 15:04:05"

// timestampLayouts are the encodings the endpoint is known to emit. Parsing
// happens here for display only; the store sorts the raw strings.
var timestampLayouts = []string{
	time.RFC3339Nano,            // offset-qualified with sub-seconds
	"2006-01-02T15:04:05Z07:00", // offset-qualified, no sub-seconds
	"2006-01-02T15:04:05",       // local, unqualified
}

// displayTimestamp formats a raw timestamp for the table. Unrecognized
// encodings fall back to the raw string; absent values render as "n/a".
func displayTimestamp(raw string) string {
	if raw == "" {
		return "n/a"
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(displayLayout)
		}
	}
	return raw
}
