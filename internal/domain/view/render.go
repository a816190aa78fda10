package view

import "github.com/riskibarqy/fpl-dashboard/internal/domain/stat"

type ChartKind string

const (
	ChartBar        ChartKind = "bar"
	ChartGroupedBar ChartKind = "grouped_bar"
	ChartRadar      ChartKind = "radar"
)

// DarkTemplate is the plot template every chart is drawn with.
const DarkTemplate = "plotly_dark"

// Series is one trace of a chart. Colors, when set, colours each point individually and Groups
// names the legend group of each point.
type Series struct {
	Name   string       `json:"name"`
	Color  string       `json:"color,omitempty"`
	Values []stat.Value `json:"values"`
	Colors []string     `json:"colors,omitempty"`
	Groups []string     `json:"groups,omitempty"`
}

type Chart struct {
	Kind       ChartKind `json:"kind"`
	Title      string    `json:"title"`
	XLabel     string    `json:"xLabel,omitempty"`
	YLabel     string    `json:"yLabel,omitempty"`
	Categories []string  `json:"categories"`
	Series     []Series  `json:"series"`
	Height     int       `json:"height,omitempty"`
	Template   string    `json:"template"`
}

// Table is a rectangular result. Cells hold strings, stat.Value, or nil for an empty cell.
type Table struct {
	Title   string   `json:"title,omitempty"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

type Notice struct {
	Level NoticeLevel `json:"level"`
	Text  string      `json:"text"`
}

// View is the rendered description of one page.
type View struct {
	Page    Page                `json:"page"`
	Title   string              `json:"title"`
	Charts  []Chart             `json:"charts"`
	Tables  []Table             `json:"tables"`
	Notices []Notice            `json:"notices"`
	Options map[string][]string `json:"options,omitempty"`
}

func New(page Page) View {
	return View{
		Page:    page,
		Title:   page.String(),
		Charts:  []Chart{},
		Tables:  []Table{},
		Notices: []Notice{},
		Options: map[string][]string{},
	}
}

func (v *View) Notify(level NoticeLevel, text string) {
	v.Notices = append(v.Notices, Notice{Level: level, Text: text})
}

// PrimaryTable returns the first table, used for export.
func (v View) PrimaryTable() (Table, bool) {
	if len(v.Tables) == 0 {
		return Table{}, false
	}
	return v.Tables[0], true
}
