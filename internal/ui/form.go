package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldName = iota
	fieldSpecies
	fieldAge
	fieldCount
)

var fieldPlaceholders = [fieldCount]string{"Name", "species", "age in years"}

// petForm is the "Add New Pet" fieldset: three free-text inputs and a submit.
type petForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newPetForm() petForm {
	var f petForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.Prompt = "› "
		ti.CharLimit = 64
		ti.Width = 28
		f.inputs[i] = ti
	}
	return f
}

// focusField moves the cursor to field i, wrapping around.
func (f *petForm) focusField(i int) tea.Cmd {
	i = (i%fieldCount + fieldCount) % fieldCount
	f.focus = i
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	return f.inputs[i].Focus()
}

func (f *petForm) blur() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
}

func (f *petForm) next() tea.Cmd { return f.focusField(f.focus + 1) }

func (f *petForm) prev() tea.Cmd { return f.focusField(f.focus - 1) }

// values returns the raw field contents. Nothing is trimmed or validated.
func (f petForm) values() (name, species, age string) {
	return f.inputs[fieldName].Value(), f.inputs[fieldSpecies].Value(), f.inputs[fieldAge].Value()
}

// reset blanks every field and returns the cursor to Name.
func (f *petForm) reset() tea.Cmd {
	for j := range f.inputs {
		f.inputs[j].Reset()
	}
	return f.focusField(fieldName)
}

// update forwards msg to the focused input.
func (f petForm) update(msg tea.Msg) (petForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f petForm) view(styles Styles, focused bool) string {
	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Add New Pet"))
	b.WriteString("\n")

	labelStyle := styles.MutedText.Width(14)
	for i, input := range f.inputs {
		label := fieldPlaceholders[i]
		if focused && i == f.focus {
			label = styles.WarningText.Width(14).Render(label)
		} else {
			label = labelStyle.Render(label)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, input.View()))
		b.WriteString("\n")
	}
	b.WriteString(styles.Button.Render("Add Pet"))
	b.WriteString(" ")
	b.WriteString(styles.FaintText.Render("enter"))

	panel := styles.Panel
	if focused {
		panel = styles.FocusedPanel
	}
	return panel.Render(b.String())
}
