package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/workshop-registry/internal/crud"
)

// listPage - таблица сущностей с кнопкой New и ячейками действий в каждой строке
type listPage struct {
	app     *App
	model   crud.ListModel
	columns []string
	rows    []crud.Row

	table  *tview.Table
	layout *tview.Flex
}

func newListPage(app *App, model crud.ListModel) *listPage {
	p := &listPage{
		app:     app,
		model:   model,
		columns: model.Columns(),
		table:   tview.NewTable(),
	}

	p.table.SetBorders(false).
		SetSelectable(true, true).
		SetFixed(1, 0).
		SetSelectedFunc(p.onSelected).
		SetInputCapture(p.onKey)

	newButton := tview.NewButton("New").SetSelectedFunc(func() {
		p.app.run(crud.Action{Label: "new " + p.model.Title(), Handler: p.model.New})
	})

	toolbar := tview.NewFlex().
		AddItem(newButton, 9, 0, false).
		AddItem(nil, 0, 1, false)

	p.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(toolbar, 1, 0, false).
		AddItem(p.table, 0, 1, true)
	p.layout.SetBorder(true)
	p.layout.SetTitle(" " + model.Title() + " ")

	p.SetRows(nil)
	return p
}

// SetRows перерисовывает таблицу. Ячейки действий хранят действие своей строки.
func (p *listPage) SetRows(rows []crud.Row) {
	p.rows = rows
	p.table.Clear()

	for col, title := range p.columns {
		p.table.SetCell(0, col, tview.NewTableCell(title).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetExpansion(1))
	}

	for i, row := range rows {
		r := i + 1
		for col, text := range row.Cells {
			p.table.SetCell(r, col, tview.NewTableCell(tview.Escape(text)).SetExpansion(1))
		}
		for j, action := range row.Actions {
			p.table.SetCell(r, len(p.columns)+j, tview.NewTableCell(tview.Escape("["+action.Label+"]")).
				SetTextColor(tcell.ColorAqua).
				SetReference(action))
		}
	}

	if len(rows) > 0 {
		p.table.Select(1, 0)
	}
}

func (p *listPage) onSelected(row, column int) {
	if action, ok := p.actionAt(row, column); ok {
		p.app.run(action)
	}
}

func (p *listPage) actionAt(row, column int) (crud.Action, bool) {
	cell := p.table.GetCell(row, column)
	if cell == nil {
		return crud.Action{}, false
	}
	action, ok := cell.GetReference().(crud.Action)
	return action, ok
}

// rowAction ищет действие выбранной строки по подписи
func (p *listPage) rowAction(label string) (crud.Action, bool) {
	row, _ := p.table.GetSelection()
	if row < 1 || row > len(p.rows) {
		return crud.Action{}, false
	}
	for _, action := range p.rows[row-1].Actions {
		if action.Label == label {
			return action, true
		}
	}
	return crud.Action{}, false
}

func (p *listPage) onKey(event *tcell.EventKey) *tcell.EventKey {
	var label string
	switch {
	case event.Rune() == 'n':
		p.app.run(crud.Action{Label: "new " + p.model.Title(), Handler: p.model.New})
		return nil
	case event.Rune() == 'e':
		label = "Edit"
	case event.Rune() == 'd' || event.Key() == tcell.KeyDelete:
		label = "Remove"
	default:
		return event
	}
	if action, ok := p.rowAction(label); ok {
		p.app.run(action)
	}
	return nil
}
