package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/frabecrazy/digital-footprint/internal/community"
	"github.com/frabecrazy/digital-footprint/internal/session"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

var volumeLabels = []string{"0", "1-3", "4-10", "11-25", "more than 25"}

var storageLabels = []string{"less than 5 GB", "5-20 GB", "20-100 GB", "100-500 GB", "more than 500 GB"}

var idleLabels = []string{"no computer", "leave it on idle", "turn it off"}

var habitLabels = [habitFieldCount]string{
	"Plain emails sent per day",
	"Emails with attachments per day",
	"Cloud storage in use",
	"Hours on Wi-Fi per day",
	"Pages printed per day",
	"When you stop using your computer",
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	switch m.sess.Screen() {
	case session.ScreenIntro:
		m.viewIntro(&b)
	case session.ScreenForm:
		m.viewForm(&b)
	case session.ScreenResults:
		m.viewResults(&b)
	}

	if m.flash != "" {
		b.WriteString("\n" + warnStyle.Render(m.flash) + "\n")
	}
	return b.String()
}

func (m *Model) viewIntro(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Digital Carbon Footprint Calculator") + "\n\n")
	b.WriteString("Estimate your yearly footprint from your devices, digital activities,\nand AI tool usage.\n\n")
	b.WriteString("Please select your role:\n\n")

	for i, role := range m.roles {
		cursor := "  "
		line := role
		if i == m.roleCursor {
			cursor = "> "
			line = focusStyle.Render(role)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("enter: start  ·  q: quit") + "\n")
}

func (m *Model) viewForm(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Digital Usage Form") + dimStyle.Render("  ("+m.sess.Role()+")") + "\n")

	if m.calculating {
		b.WriteString("\nCalculating…\n")
		return
	}

	lastKind := rowKind(-1)
	lastDevice := -1
	for i, r := range m.rows {
		if r.kind != lastKind || (r.kind == rowDeviceField && r.device != lastDevice) {
			m.writeSectionHeader(b, r)
			lastKind = r.kind
			lastDevice = r.device
		}
		m.writeRow(b, i, r)
	}

	b.WriteString("\n" + dimStyle.Render(
		"up/down: move  ·  left/right: change  ·  enter: edit/add  ·  d: clear devices  ·  c: calculate  ·  q: quit") + "\n")
}

func (m *Model) writeSectionHeader(b *strings.Builder, r row) {
	switch r.kind {
	case rowDeviceAdd:
		b.WriteString("\n" + sectionStyle.Render("Devices") + "\n")
	case rowDeviceField:
		d := m.sess.Devices()[r.device]
		b.WriteString("\n  " + valueStyle.Render(d.Entry.Type) + dimStyle.Render(" ("+d.ID+")") + "\n")
	case rowActivity:
		b.WriteString("\n" + sectionStyle.Render("Digital activities (hours per day)") + "\n")
	case rowHabit:
		b.WriteString("\n" + sectionStyle.Render("Habits") + "\n")
	case rowAITask:
		b.WriteString("\n" + sectionStyle.Render("AI tools (queries per day)") + "\n")
	}
}

func (m *Model) writeRow(b *strings.Builder, i int, r row) {
	focused := i == m.cursor
	cursor := "  "
	if focused {
		cursor = "> "
	}

	label, value := m.rowContent(r)
	if focused && m.editing {
		value = m.input.View()
	}

	line := fmt.Sprintf("%s%s: %s", cursor, label, valueStyle.Render(value))
	if focused && !m.editing {
		line = fmt.Sprintf("%s%s: %s", cursor, focusStyle.Render(label), focusStyle.Render(value))
	}
	b.WriteString(line + "\n")
}

// rowContent returns the label and current value for a form row.
func (m *Model) rowContent(r row) (string, string) {
	switch r.kind {
	case rowDeviceAdd:
		return "Add a device", "< " + m.deviceTypes[m.deviceIdx] + " >"

	case rowDeviceField:
		entry := m.deviceEntry(r.device)
		switch r.field {
		case fieldYears:
			return "    Years of use", formatYears(entry.Years)
		case fieldCondition:
			return "    Condition", string(entry.Condition)
		case fieldOwnership:
			return "    Ownership", string(entry.Ownership)
		default:
			return "    End of life", entry.EndOfLife
		}

	case rowActivity:
		return truncate(r.label, 58), trimFloat(m.activities[r.label])

	case rowHabit:
		return habitLabels[r.field], m.habitValue(r.field)

	case rowAITask:
		return truncate(r.label, 58), fmt.Sprintf("%d", m.aiCounts[r.label])
	}
	return "", ""
}

func (m *Model) habitValue(field int) string {
	switch field {
	case habitPlainEmails:
		return volumeLabels[int(m.habits.PlainEmails)]
	case habitAttachmentEmails:
		return volumeLabels[int(m.habits.AttachmentEmails)]
	case habitCloudStorage:
		return storageLabels[int(m.habits.CloudStorage)]
	case habitWiFiHours:
		return trimFloat(m.habits.WiFiHoursPerDay)
	case habitPages:
		return trimFloat(m.habits.PagesPerDay)
	default:
		return idleLabels[int(m.habits.Idle)]
	}
}

func (m *Model) viewResults(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Your Digital Carbon Footprint") + "\n\n")

	writeMetric(b, "Total", m.result.Total)
	writeMetric(b, "Devices", m.result.Devices)
	if m.result.EWaste != 0 {
		writeMetric(b, "E-waste", m.result.EWaste)
	}
	writeMetric(b, "Digital activities", m.result.DigitalActivities)
	writeMetric(b, "AI tools", m.result.AITools)

	b.WriteString("\n" + sectionStyle.Render("Community comparison (medians)") + "\n")
	if m.noData || len(m.medians) == 0 {
		b.WriteString(dimStyle.Render("  No community data available yet.") + "\n")
	} else {
		writeMedian(b, "Total", m.medians, community.ColTotal)
		writeMedian(b, "Devices", m.medians, community.ColDevices)
		writeMedian(b, "Digital activities", m.medians, community.ColActivities)
		writeMedian(b, "AI tools", m.medians, community.ColAITools)
	}

	if m.saveWarning != "" {
		b.WriteString("\n" + warnStyle.Render("⚠ "+m.saveWarning) + "\n")
	}

	if len(m.shownTips) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Tips") + "\n")
		for _, tip := range m.shownTips {
			b.WriteString("  • " + tip + "\n")
		}
	}

	b.WriteString("\n" + dimStyle.Render("a: calculate again  ·  q: quit") + "\n")
}

func writeMetric(b *strings.Builder, label string, v float64) {
	b.WriteString(fmt.Sprintf("  %-20s %s kg CO₂e/year\n", label, valueStyle.Render(fmt.Sprintf("%8.2f", v))))
}

func writeMedian(b *strings.Builder, label string, medians community.Medians, col string) {
	v, ok := medians[col]
	if !ok {
		b.WriteString(fmt.Sprintf("  %-20s %s\n", label, dimStyle.Render("unavailable")))
		return
	}
	b.WriteString(fmt.Sprintf("  %-20s %8.2f kg CO₂e/year\n", label, v))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
