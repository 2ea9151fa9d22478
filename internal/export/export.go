// Package export renders the current final view as flat text. Both formats
// emit field values verbatim: embedded delimiters and markup characters are
// not escaped, matching the remote consumer's expectations.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/roadwatch-io/trackview/internal/model"
)

const delimitedHeader = "DATAHORA,IDMENSAGEM,LATITUDE,LONGITUDE,PLACA,TrackID"

// Delimited renders records as comma-delimited text, one line per record,
// missing fields as empty strings.
func Delimited(records []model.Record) string {
	var b strings.Builder
	b.WriteString(delimitedHeader)
	b.WriteByte('\n')
	for _, r := range records {
		b.WriteString(r.TimestampValue())
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(r.MessageID, 10))
		b.WriteByte(',')
		b.WriteString(floatField(r.Latitude))
		b.WriteByte(',')
		b.WriteString(floatField(r.Longitude))
		b.WriteByte(',')
		b.WriteString(r.PlateValue())
		b.WriteByte(',')
		b.WriteString(r.TrackIDValue())
		b.WriteByte('\n')
	}
	return b.String()
}

// Markup renders records as a <consultas> document with one <registo> element
// per record, missing fields as empty element content.
func Markup(records []model.Record) string {
	var b strings.Builder
	b.WriteString("<consultas>\n")
	for _, r := range records {
		b.WriteString("  <registo>\n")
		writeElement(&b, "DATAHORA", r.TimestampValue())
		writeElement(&b, "IDMENSAGEM", strconv.FormatInt(r.MessageID, 10))
		writeElement(&b, "LATITUDE", floatField(r.Latitude))
		writeElement(&b, "LONGITUDE", floatField(r.Longitude))
		writeElement(&b, "PLACA", r.PlateValue())
		writeElement(&b, "TrackID", r.TrackIDValue())
		b.WriteString("  </registo>\n")
	}
	b.WriteString("</consultas>\n")
	return b.String()
}

func writeElement(b *strings.Builder, name, value string) {
	b.WriteString("    <")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(value)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">\n")
}

func floatField(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Filename returns a timestamped export file name such as
// "consulta_20231027_103000.csv".
func Filename(ext string) string {
	return "consulta_" + time.Now().Format("20060102_150405") + "." + ext
}
