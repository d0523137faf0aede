package ui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	if len(m.snapshot.Channels) == 0 {
		b.WriteString(m.styles.Muted.Render("  No channels configured. Press o to edit the channels file."))
		b.WriteString("\n")
	}

	for i := range m.snapshot.Channels {
		b.WriteString(m.channelRow(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	title := m.styles.Accent.Render("lurk " + appVersion)
	playerInfo := "player: " + m.snapshot.EffectivePlayer().String()
	if m.snapshot.SessionPlayer != nil {
		playerInfo += " (session)"
	}
	return m.styles.Header.Render(title + "  " + m.styles.Muted.Render(playerInfo))
}

func (m Model) channelRow(i int) string {
	ch := m.snapshot.Channels[i]

	badge := m.styles.Offline.Render("○")
	if ch.IsOnline {
		badge = m.styles.Online.Render("●")
	}

	line := fmt.Sprintf(" %s %-20s", badge, ch.Name)
	if ch.IsOnline {
		if ch.Title != nil {
			line += " " + *ch.Title
		}
		if ch.Viewers != nil {
			line += m.styles.Muted.Render(fmt.Sprintf(" (%d viewers)", *ch.Viewers))
		}
	}

	if i == m.selected {
		return m.styles.Selected.Render("▸" + line)
	}
	if !ch.IsOnline {
		return m.styles.Offline.Render(" " + line)
	}
	return m.styles.Text.Render(" " + line)
}

func (m Model) footerView() string {
	help := "j/k move · enter open · p player · o channels file · T theme · q quit"
	footer := m.styles.Footer.Render(help)
	if m.notice != "" {
		footer += "\n" + m.styles.Accent.Render(" "+m.notice)
	}
	return footer
}
