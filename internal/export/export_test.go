package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roadwatch-io/trackview/internal/model"
)

func sp(s string) *string   { return &s }
func fp(f float64) *float64 { return &f }

func TestDelimited_MissingFieldsRenderEmpty(t *testing.T) {
	records := []model.Record{
		{
			MessageID: 7,
			TrackID:   sp("T9"),
			Timestamp: sp("2023-10-27T10:30:00+00:00"),
		},
	}

	got := Delimited(records)

	want := "DATAHORA,IDMENSAGEM,LATITUDE,LONGITUDE,PLACA,TrackID\n" +
		"2023-10-27T10:30:00+00:00,7,,,,T9\n"
	assert.Equal(t, want, got)
}

func TestDelimited_AllFieldsPresent(t *testing.T) {
	records := []model.Record{
		{
			MessageID: 12,
			TrackID:   sp("T1"),
			Plate:     sp("ABC1D23"),
			Latitude:  fp(38.7223),
			Longitude: fp(-9.1393),
			Timestamp: sp("2023-10-27T10:30:00+00:00"),
		},
	}

	got := Delimited(records)

	assert.Equal(t,
		"DATAHORA,IDMENSAGEM,LATITUDE,LONGITUDE,PLACA,TrackID\n"+
			"2023-10-27T10:30:00+00:00,12,38.7223,-9.1393,ABC1D23,T1\n",
		got)
}

func TestDelimited_EmptyViewIsHeaderOnly(t *testing.T) {
	assert.Equal(t, "DATAHORA,IDMENSAGEM,LATITUDE,LONGITUDE,PLACA,TrackID\n", Delimited(nil))
}

func TestDelimited_FieldsAreVerbatim(t *testing.T) {
	// Embedded delimiters are not quoted or escaped.
	records := []model.Record{
		{MessageID: 1, Plate: sp("AB,CD")},
	}

	got := Delimited(records)

	assert.Contains(t, got, ",,,AB,CD,\n")
}

func TestMarkup_ElementOrderAndEmptyContent(t *testing.T) {
	records := []model.Record{
		{
			MessageID: 7,
			TrackID:   sp("T9"),
			Timestamp: sp("2023-10-27T10:30:00+00:00"),
		},
	}

	got := Markup(records)

	assert.True(t, strings.HasPrefix(got, "<consultas>\n"))
	assert.True(t, strings.HasSuffix(got, "</consultas>\n"))
	assert.Contains(t, got, "<registo>")
	assert.Contains(t, got, "<DATAHORA>2023-10-27T10:30:00+00:00</DATAHORA>")
	assert.Contains(t, got, "<IDMENSAGEM>7</IDMENSAGEM>")
	assert.Contains(t, got, "<LATITUDE></LATITUDE>")
	assert.Contains(t, got, "<LONGITUDE></LONGITUDE>")
	assert.Contains(t, got, "<PLACA></PLACA>")
	assert.Contains(t, got, "<TrackID>T9</TrackID>")

	// Fixed child order inside each registo.
	order := []string{"<DATAHORA>", "<IDMENSAGEM>", "<LATITUDE>", "<LONGITUDE>", "<PLACA>", "<TrackID>"}
	last := -1
	for _, tag := range order {
		idx := strings.Index(got, tag)
		assert.Greater(t, idx, last, tag)
		last = idx
	}
}

func TestMarkup_NoCharacterEscaping(t *testing.T) {
	records := []model.Record{
		{MessageID: 1, Plate: sp("A<B&C")},
	}

	got := Markup(records)

	assert.Contains(t, got, "<PLACA>A<B&C</PLACA>")
}

func TestFilename(t *testing.T) {
	name := Filename("csv")

	assert.True(t, strings.HasPrefix(name, "consulta_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}
