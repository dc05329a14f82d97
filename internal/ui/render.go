package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerText = "Our Amazing App Header"
	footerText = "Copyright Footer Text"
)

func (m Model) listHeight() int {
	return max(m.height-chromeRows, minListRows)
}

// renderMain renders the full screen top to bottom.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	width := max(m.width, LayoutMinWidth)

	sections := []string{
		styles.Header.Width(width).Render(headerText),
		m.renderStatus(styles, width),
		"",
		m.renderLikes(styles),
		styles.Text.Render("The current time is ") + styles.InfoText.Render(m.clock.View()),
		"",
		m.form.view(styles, m.focus == paneForm),
		m.renderList(styles),
		m.renderFooter(styles, width),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStatus(styles Styles, width int) string {
	snap := m.snapshot
	var parts []string
	if m.storeLabel != "" {
		parts = append(parts, styles.MutedText.Render("store ")+styles.Text.Render(truncateMiddle(m.storeLabel, storeLabelWidth)))
	}
	parts = append(parts, styles.MutedText.Render(fmt.Sprintf("%d pets", len(snap.Pets))))
	if !snap.LastSaved.IsZero() {
		parts = append(parts, styles.MutedText.Render("saved ")+styles.SuccessText.Render(snap.LastSaved.Format("15:04:05")))
	}
	if snap.LastError != nil {
		maxErr := statusErrorWidth
		if width < LayoutCompactWidth {
			maxErr = statusErrorWidthCompact
		}
		parts = append(parts, styles.DangerText.Render("ERROR ")+styles.DangerText.Render(truncate(snap.LastError.Error(), maxErr)))
	}
	return strings.Join(parts, styles.FaintText.Render("  •  "))
}

func (m Model) renderLikes(styles Styles) string {
	buttons := styles.Button.Render("+ Increase likes") + " " + styles.Button.Render("- Decrease likes")
	line := m.printer.Sprintf("This page has been liked %d times.", m.snapshot.Likes)
	return buttons + "  " + styles.AccentText.Bold(true).Render(line)
}

func (m Model) renderList(styles Styles) string {
	title := styles.AccentText.Bold(true).Render(fmt.Sprintf("Pets (%d)", len(m.snapshot.Pets)))
	panel := styles.Panel
	if m.focus == paneList {
		panel = styles.FocusedPanel
	}
	return panel.Render(title + "\n" + m.list.View())
}

func (m Model) renderFooter(styles Styles, width int) string {
	bindings := m.keys.ShortHelp()
	if m.focus == paneForm {
		bindings = m.keys.FormHelp()
	}
	var hints []string
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, h.Key+" "+strings.ToLower(h.Desc))
	}
	left := footerText
	right := strings.Join(hints, "  ")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		return styles.Footer.Width(width).Render(left)
	}
	return styles.Footer.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// syncList clamps the selection and re-renders the list into the viewport,
// scrolling so the selected row stays visible.
func (m *Model) syncList() {
	count := len(m.snapshot.Pets)
	if m.selected >= count {
		m.selected = count - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}

	styles := m.theme.Styles()
	if count == 0 {
		m.list.SetContent(styles.MutedText.Render("No pets yet. Fill in the form and press enter."))
		m.list.SetYOffset(0)
		return
	}

	lines := make([]string, count)
	for i, p := range m.snapshot.Pets {
		text := p.Describe()
		if i == m.selected && m.focus == paneList {
			lines[i] = styles.Selected.Render("› "+text) + " " + styles.FaintText.Render("[d] Delete")
			continue
		}
		lines[i] = styles.Text.Render("  " + text)
	}
	m.list.SetContent(strings.Join(lines, "\n"))

	if m.list.Height <= 0 {
		return
	}
	if m.selected < m.list.YOffset {
		m.list.SetYOffset(m.selected)
	} else if m.selected >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(m.selected - m.list.Height + 1)
	}
}
