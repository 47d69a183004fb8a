package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/workshop-registry/internal/crud"
)

// Alert показывает блокирующее уведомление с кнопкой OK
func (a *App) Alert(alert crud.Alert) {
	modal := tview.NewModal().
		SetText(alertText(alert)).
		AddButtons([]string{"OK"})
	modal.SetBackgroundColor(severityColor(alert.Severity))

	var name string
	modal.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		a.popModal(name)
	})
	name = a.pushModal(modal, modal)
}

// Confirm задаёт вопрос "да/нет". Esc закрывает окно без ответа (ChoiceNone).
func (a *App) Confirm(title, body string, answer func(crud.Choice)) {
	modal := tview.NewModal().
		SetText(title + "\n\n" + body).
		AddButtons([]string{"Yes", "No"})

	var name string
	modal.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		a.popModal(name)
		answer(choiceFor(buttonIndex, buttonLabel))
	})
	name = a.pushModal(modal, modal)
}

func choiceFor(buttonIndex int, buttonLabel string) crud.Choice {
	if buttonIndex < 0 {
		return crud.ChoiceNone
	}
	switch buttonLabel {
	case "Yes":
		return crud.ChoiceYes
	case "No":
		return crud.ChoiceNo
	default:
		return crud.ChoiceNone
	}
}

func alertText(alert crud.Alert) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{alert.Title, alert.Header, alert.Body} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

func severityColor(s crud.Severity) tcell.Color {
	switch s {
	case crud.SeverityError:
		return tcell.ColorDarkRed
	case crud.SeverityWarning:
		return tcell.ColorOlive
	default:
		return tcell.ColorNavy
	}
}
