package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	coreapp "docuscan/internal/core/app"
)

func runUI(app *coreapp.App) error {
	m := initialModel()
	p := tea.NewProgram(m, tea.WithAltScreen())

	sendUpdate := func(update coreapp.Update) {
		p.Send(updateMsg{
			documents:  update.Documents,
			fileCount:  update.FileCount,
			errorCount: update.ErrorCount,
		})
	}

	app.SetUpdateHandler(sendUpdate)

	go func() {
		sendUpdate(app.CurrentUpdate())
	}()

	_, err := p.Run()
	return err
}
