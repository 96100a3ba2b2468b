package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docuscan/internal/engine/scan"
)

var (
	titleStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Render

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

type moduleItem struct {
	doc *scan.ModuleDocument
}

func (i moduleItem) Title() string { return i.doc.Name }
func (i moduleItem) Description() string {
	return fmt.Sprintf("%d imports, %d variables, %d functions, %d classes",
		len(i.doc.Modules), len(i.doc.Variables), len(i.doc.Functions), len(i.doc.Classes))
}
func (i moduleItem) FilterValue() string { return i.doc.Name }

type updateMsg struct {
	documents  []*scan.ModuleDocument
	fileCount  int
	errorCount int
}

type model struct {
	list       list.Model
	documents  []*scan.ModuleDocument
	fileCount  int
	errorCount int
	lastUpdate time.Time

	showDetail bool
	detail     *scan.ModuleDocument
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if idx := m.list.Index(); idx >= 0 && idx < len(m.documents) {
				m.detail = m.documents[idx]
				m.showDetail = true
			}
			return m, nil
		case "esc", "backspace":
			m.showDetail = false
			m.detail = nil
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
	case updateMsg:
		m.documents = msg.documents
		m.fileCount = msg.fileCount
		m.errorCount = msg.errorCount
		m.lastUpdate = time.Now()

		items := make([]list.Item, 0, len(m.documents))
		for _, doc := range m.documents {
			items = append(items, moduleItem{doc: doc})
		}
		m.list.SetItems(items)

		if m.showDetail && m.detail != nil {
			m.detail = findDocument(m.documents, m.detail.Name)
			if m.detail == nil {
				m.showDetail = false
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := statusStyle.Render(fmt.Sprintf("Last update: %v | %d files documented",
		m.lastUpdate.Format("15:04:05"), m.fileCount))

	var summary string
	if m.errorCount == 0 {
		summary = successStyle.Render("all files documented")
	} else {
		summary = errorStyle.Render(fmt.Sprintf("%d files failed", m.errorCount))
	}

	header := fmt.Sprintf("%s\n%s | %s\n", titleStyle("Python Module Documentation"), status, summary)

	if m.showDetail && m.detail != nil {
		return docStyle.Render(header + "\n" + detailStyle.Render(renderDetail(m.detail)))
	}
	return docStyle.Render(header + "\n" + m.list.View())
}

func renderDetail(doc *scan.ModuleDocument) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s", doc.Name)
	if doc.Version != "" {
		fmt.Fprintf(&b, "  v%s", doc.Version)
	}
	b.WriteString("\n")
	if doc.Description != "" {
		b.WriteString(doc.Description + "\n")
	}

	if len(doc.Modules) > 0 {
		b.WriteString("\nimports: " + strings.Join(doc.Modules, ", ") + "\n")
	}
	if len(doc.Variables) > 0 {
		b.WriteString("\nvariables:\n")
		for _, v := range doc.Variables {
			fmt.Fprintf(&b, "  %s = %s\n", v.Name, v.Value)
		}
	}
	if len(doc.Functions) > 0 {
		b.WriteString("\nfunctions:\n")
		for _, fn := range doc.Functions {
			fmt.Fprintf(&b, "  %s(...)\n", fn.Name)
		}
	}
	if len(doc.Classes) > 0 {
		b.WriteString("\nclasses:\n")
		for _, cls := range doc.Classes {
			marker := ""
			if cls.IsException {
				marker = "  [exception]"
			}
			fmt.Fprintf(&b, "  %s(%s)%s\n", cls.Name, cls.Inheritance, marker)
		}
	}

	b.WriteString("\n" + statusStyle.Render("esc: back, q: quit"))
	return b.String()
}

func findDocument(docs []*scan.ModuleDocument, name string) *scan.ModuleDocument {
	for _, doc := range docs {
		if doc.Name == name {
			return doc
		}
	}
	return nil
}

func initialModel() model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Documented Modules"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return model{
		list:       l,
		lastUpdate: time.Now(),
	}
}
