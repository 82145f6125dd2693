package main

import (
	"fmt"
	"strings"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	switch m.sessionState {
	case loading:
		_, pending := m.loadingState.allLoaded()
		b.WriteString(fmt.Sprintf("%s loading %s...", m.loadingSpinner.View(), pending))

	case accountsView:
		b.WriteString(m.accountsTable.View())
		b.WriteString("\n")
		b.WriteString(m.styles.footerStyle.Render(formatRowCount(len(m.accounts.Rows()))))

	case entriesView:
		b.WriteString(m.entriesTable.View())
		b.WriteString("\n")
		b.WriteString(m.entriesFooter())

	case editRow:
		if m.editForm != nil {
			b.WriteString(m.editForm.View())
		}

	case configView:
		b.WriteString(m.configView.View())

	case errorState:
		b.WriteString(m.styles.errorStyle.Render("Something went wrong: " + m.errMsg))
	}

	if m.statusMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.statusStyle.Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	title := fmt.Sprintf("ledgertui | %s", m.sessionState)
	if m.accounts.Fetching() || m.entries.Fetching() {
		title += " | fetching"
	}

	return m.styles.titleStyle.Render(title)
}

// entriesFooter shows paging info plus the total and average of the loaded
// page.
func (m model) entriesFooter() string {
	meta := m.entries.Meta()

	totalPages := meta.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}

	paging := fmt.Sprintf("page %d of %d | %d entries | sort %s %s",
		m.entryQuery.page+1,
		totalPages,
		meta.TotalElements,
		m.entryQuery.sort,
		strings.ToLower(m.entryQuery.direction),
	)
	stats := fmt.Sprintf("total %s | average %s",
		m.entryStats.totalDisplay(),
		m.entryStats.averageDisplay(),
	)

	return m.styles.footerStyle.Render(paging + "\n" + stats)
}
