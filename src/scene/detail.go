package scene

import (
	"strings"

	"github.com/bebeshannu/datavis-a2/src/vehicles"
)

// Field is one labeled line of the detail panel.
type Field struct {
	Label string
	Value string
}

// DetailFields returns the six panel fields for v, always in the same order.
func DetailFields(v vehicles.Vehicle) []Field {
	return []Field{
		{Label: "Type", Value: v.Type},
		{Label: "Retail Price", Value: FormatCurrency(v.RetailPrice)},
		{Label: "Dealer Cost", Value: FormatCurrency(v.DealerCost)},
		{Label: "Engine Size", Value: FormatLitres(v.EngineSize)},
		{Label: "City MPG", Value: FormatInteger(v.CityMPG)},
		{Label: "Horsepower", Value: FormatInteger(v.Horsepower)},
	}
}

// DetailPanel is the region showing the selected record. Every call replaces whatever the
// panel showed before.
type DetailPanel interface {
	Clear()
	SetFields(title string, fields []Field)
	SetError(msg string)
}

// ShowDetail renders the current selection into p, or clears p when nothing is selected.
func (c *Chart) ShowDetail(p DetailPanel) {
	i, ok := c.Selected()
	if !ok {
		p.Clear()
		return
	}
	v := c.ds[i]
	p.SetFields(v.Name, DetailFields(v))
}

// TextPanel is a DetailPanel that keeps its content as plain text.
type TextPanel struct {
	Title  string
	Fields []Field
	Err    string
}

func (p *TextPanel) Clear() { *p = TextPanel{} }

func (p *TextPanel) SetFields(title string, fields []Field) {
	*p = TextPanel{Title: title, Fields: append([]Field(nil), fields...)}
}

func (p *TextPanel) SetError(msg string) { *p = TextPanel{Err: msg} }

// String renders the panel as "Label: Value" lines under the title.
func (p *TextPanel) String() string {
	if p.Err != "" {
		return "Error: " + p.Err + "\n"
	}
	var b strings.Builder
	if p.Title != "" {
		b.WriteString(p.Title)
		b.WriteByte('\n')
	}
	for _, f := range p.Fields {
		b.WriteString(f.Label)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteByte('\n')
	}
	return b.String()
}
