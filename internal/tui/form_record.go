package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pet-locator/models"
)

const (
	fieldName = iota
	fieldLatitude
	fieldLongitude
)

var formLabels = [...]string{
	fieldName:      "Pet name:  ",
	fieldLatitude:  "Latitude:  ",
	fieldLongitude: "Longitude: ",
}

type recordForm struct {
	inputs []textinput.Model
	focus  int
}

func newRecordForm() recordForm {
	inputs := make([]textinput.Model, len(formLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldName].Placeholder = "Rex"
	inputs[fieldName].CharLimit = 64
	inputs[fieldLatitude].Placeholder = "37.7749"
	inputs[fieldLongitude].Placeholder = "-122.4194"
	inputs[fieldName].Focus()

	return recordForm{inputs: inputs}
}

func (f recordForm) value() models.NewRecord {
	return models.NewRecord{
		Name:      f.inputs[fieldName].Value(),
		Latitude:  f.inputs[fieldLatitude].Value(),
		Longitude: f.inputs[fieldLongitude].Value(),
	}
}

func (f *recordForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update routes navigation keys and forwards everything else to the focused
// input. submit is true when enter was pressed on the last field.
func (f recordForm) update(msg tea.Msg) (form recordForm, submit bool, cmd tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.tab), k.Type == tea.KeyDown:
			f.move(1)
			return f, false, nil
		case key.Matches(k, keys.backtab), k.Type == tea.KeyUp:
			f.move(-1)
			return f, false, nil
		case key.Matches(k, keys.enter):
			if f.focus == len(f.inputs)-1 {
				return f, true, nil
			}
			f.move(1)
			return f, false, nil
		}
	}

	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, false, cmd
}

func (f recordForm) View() string {
	var b strings.Builder
	for i, in := range f.inputs {
		b.WriteString(formLabels[i])
		b.WriteString("[")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	b.WriteString("\nThe latitude is encrypted before it leaves this machine.")
	return b.String()
}
