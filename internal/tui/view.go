package tui

import (
	"strconv"
	"strings"

	"github.com/roadwatch-io/trackview/internal/model"
)

var columnWidths = map[model.DisplayColumn]int{
	model.ColTimestamp: 21,
	model.ColMessageID: 12,
	model.ColPlate:     10,
	model.ColTrackID:   14,
}

func (m *Model) View() string {
	var b strings.Builder

	title := m.styles.title.Render("trackview")
	tenantLine := m.styles.tenant.Render("tenant: " + m.snap.ActiveTenant.Name)
	head := title + "  " + tenantLine
	if m.snap.IsLoading {
		head += "  " + m.spin.View() + m.styles.loading.Render("loading")
	}
	b.WriteString(head + "\n\n")

	b.WriteString(m.renderInputs())
	b.WriteString("\n")

	if m.snap.Selected != nil {
		b.WriteString(m.renderDetail())
	} else {
		b.WriteString(m.renderTable())
	}

	if m.snap.LastFailure != nil {
		b.WriteString("\n" + m.styles.errLine.Render("last fetch failed: "+m.snap.LastFailure.Error()))
	}
	if m.status != "" {
		b.WriteString("\n" + m.styles.status.Render(m.status))
	}
	b.WriteString("\n" + m.styles.help.Render(helpLine))

	return b.String()
}

const helpLine = "/ filter | # id lookup | f filter column | s sort | o direction | 1-4 columns | tab tenant | r refresh | e/x/c export | q quit"

func (m *Model) renderInputs() string {
	var b strings.Builder
	if m.focus == focusFilter || m.snap.FilterText != "" {
		b.WriteString(m.filterInput.View())
		b.WriteString(m.styles.help.Render("  (" + string(m.snap.FilterColumn) + ")"))
		b.WriteString("\n")
	}
	if m.focus == focusID || m.snap.IDQueryText != "" {
		b.WriteString(m.idInput.View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderTable() string {
	cols := m.visibleInOrder()
	var b strings.Builder

	var headers []string
	for _, c := range cols {
		title := c.Title()
		if c.SortKey() == m.snap.SortColumn {
			if m.snap.SortDescending {
				title += " v"
			} else {
				title += " ^"
			}
		}
		headers = append(headers, pad(title, columnWidths[c]))
	}
	b.WriteString(m.styles.header.Render(strings.Join(headers, " ")) + "\n")

	if len(m.snap.FinalRecords) == 0 {
		b.WriteString(m.styles.help.Render("no records") + "\n")
		return b.String()
	}

	for i, r := range m.snap.FinalRecords {
		var cells []string
		for _, c := range cols {
			cells = append(cells, pad(cellValue(r, c), columnWidths[c]))
		}
		line := strings.Join(cells, " ")
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("> "+line) + "\n")
		} else {
			b.WriteString(m.styles.row.Render("  "+line) + "\n")
		}
	}
	return b.String()
}

func (m *Model) renderDetail() string {
	r := m.snap.Selected
	lines := []string{
		"Registo " + strconv.FormatInt(r.MessageID, 10),
		"",
		"Data/Hora: " + displayTimestamp(r.TimestampValue()),
		"Placa:     " + orNA(r.PlateValue()),
		"TrackID:   " + orNA(r.TrackIDValue()),
		"Latitude:  " + floatOrNA(r.Latitude),
		"Longitude: " + floatOrNA(r.Longitude),
		"",
		"esc to close",
	}
	return m.styles.detail.Render(strings.Join(lines, "\n")) + "\n"
}

func (m *Model) visibleInOrder() []model.DisplayColumn {
	var cols []model.DisplayColumn
	for _, c := range model.DisplayColumns() {
		if m.snap.VisibleColumns[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

func cellValue(r model.Record, c model.DisplayColumn) string {
	switch c {
	case model.ColTimestamp:
		return displayTimestamp(r.TimestampValue())
	case model.ColMessageID:
		return strconv.FormatInt(r.MessageID, 10)
	case model.ColPlate:
		return r.PlateValue()
	case model.ColTrackID:
		return r.TrackIDValue()
	default:
		return ""
	}
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}

func floatOrNA(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
