package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cliform-tools/cli/internal/ui/splitpanel"
	"github.com/cliform-tools/cli/internal/ui/style"
)

func (m model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	layout := splitpanel.NewLayout(m.width, splitpanel.Config{
		SidebarWidthPercent: 0.22,
		SidebarMinWidth:     18,
		SidebarMaxWidth:     32,
		HasDrawer:           true,
		DrawerWidthPercent:  0.34,
	}, style.GetColors())
	layout.SetFocus(m.focus == focusSidebar)
	layout.SetDrawerOpen(true)

	panelHeight := m.height - 4
	if panelHeight < 5 {
		panelHeight = 5
	}
	visible := panelHeight - 2

	sidebar := m.sidebarPanel(visible)
	content := m.contentPanel(visible)
	drawer := m.outputPanel(visible)

	var b strings.Builder
	b.WriteString(layout.RenderWithDrawer(sidebar, content, &drawer, panelHeight))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m model) sidebarPanel(visible int) splitpanel.Panel {
	offset := scrollOffset(m.pathIdx, len(m.paths), visible)
	lines := make([]string, 0, visible)
	for i := offset; i < len(m.paths) && i < offset+visible; i++ {
		entry := displayPath(m.paths[i])
		if i == m.pathIdx {
			entry = lipgloss.NewStyle().Bold(true).Render("→ " + entry)
		} else {
			entry = "  " + entry
		}
		lines = append(lines, entry)
	}
	return splitpanel.Panel{Lines: lines, ScrollPos: offset, TotalItems: len(m.paths)}
}

func (m model) contentPanel(visible int) splitpanel.Panel {
	if len(m.rows) == 0 {
		return splitpanel.Panel{Lines: []string{style.Muted("no parameters")}}
	}
	offset := scrollOffset(m.cursor, len(m.rows), visible)
	lines := make([]string, 0, visible)
	for i := offset; i < len(m.rows) && i < offset+visible; i++ {
		lines = append(lines, m.renderRow(m.rows[i], i == m.cursor))
	}
	return splitpanel.Panel{Lines: lines, ScrollPos: offset, TotalItems: len(m.rows)}
}

func (m model) renderRow(r row, focused bool) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", r.depth))

	if r.parent == nil {
		switch {
		case !r.ctl.CanToggle():
			b.WriteString("   ")
		case r.ctl.IsEnabled():
			b.WriteString("[x] ")
		default:
			b.WriteString("[ ] ")
		}
	}

	name := r.label
	if r.parent == nil && r.ctl.Param().EffectiveRequired() {
		name += "*"
	}
	if focused && m.focus == focusContent {
		name = lipgloss.NewStyle().Bold(true).Render(name)
	}
	b.WriteString(name)

	if focused && m.editing {
		b.WriteString("  ")
		b.WriteString(m.editInput.View())
		return b.String()
	}

	if v := valueText(r.ctl); v != "" {
		b.WriteString("  ")
		if r.ctl.IsEnabled() {
			b.WriteString(v)
		} else {
			b.WriteString(style.Muted(v))
		}
	}
	return b.String()
}

func (m model) outputPanel(visible int) splitpanel.Panel {
	lines := m.output.Lines()
	total := len(lines)

	end := total - m.outputScroll
	if end > total {
		end = total
	}
	if end < 0 {
		end = 0
	}
	start := end - visible
	if start < 0 {
		start = 0
	}
	return splitpanel.Panel{Lines: lines[start:end], ScrollPos: start, TotalItems: total}
}

func (m model) statusLine() string {
	switch {
	case len(m.confirmQueue) > 0:
		answer := "no"
		if m.confirmYes {
			answer = "yes"
		}
		return style.Warning(fmt.Sprintf("%s [%s] (y/n, enter confirms)", m.confirmQueue[0].Param().Prompt, answer))
	case m.importing:
		return m.importInput.View()
	case m.status != "":
		return style.Error(m.status)
	case m.exec.Running():
		return style.Info("running... (s stops)")
	}
	return ""
}

func (m model) footer() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 1)

	sep := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238")).
		Render(" │ ")

	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	return keyStyle.Render("tab") + label.Render(" focus") + sep +
		keyStyle.Render("↑↓") + label.Render(" move") + sep +
		keyStyle.Render("enter") + label.Render(" edit") + sep +
		keyStyle.Render("space") + label.Render(" on/off") + sep +
		keyStyle.Render("r") + label.Render(" run") + sep +
		keyStyle.Render("e/i") + label.Render(" export/import") + sep +
		keyStyle.Render("q") + label.Render(" quit")
}

// scrollOffset keeps the cursor inside a window of the given height.
func scrollOffset(cursor, total, visible int) int {
	if total <= visible || visible <= 0 {
		return 0
	}
	offset := cursor - visible/2
	if offset < 0 {
		offset = 0
	}
	if offset > total-visible {
		offset = total - visible
	}
	return offset
}
