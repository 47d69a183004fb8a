package tui

import (
	"context"
	"strconv"
	"unicode"

	"github.com/rivo/tview"
	"github.com/workshop-registry/internal/crud"
)

const (
	formWidth  = 64
	fieldWidth = 40
)

// formDialog строит tview.Form по описанию полей и связывает его с контроллером формы
type formDialog struct {
	app    *App
	model  crud.FormModel
	form   *tview.Form
	slots  map[string]*tview.TextView
	name   string
	height int
}

// ShowModal показывает форму поверх текущего экрана. Ввод захватывается
// диалогом до его закрытия через Save или Cancel.
func (a *App) ShowModal(title string, model crud.FormModel) error {
	a.openForm(title, model)
	return nil
}

func (a *App) openForm(title string, model crud.FormModel) *formDialog {
	d := newFormDialog(a, title, model)
	model.AttachView(d)
	d.name = a.pushModal(d.view(), d.form)
	return d
}

func newFormDialog(app *App, title string, model crud.FormModel) *formDialog {
	d := &formDialog{
		app:   app,
		model: model,
		form:  tview.NewForm(),
		slots: make(map[string]*tview.TextView),
	}

	d.form.SetBorder(true)
	d.form.SetTitle(" " + title + " ")
	d.form.SetTitleAlign(tview.AlignCenter)

	for _, field := range model.Fields() {
		d.addField(field)
	}

	d.form.AddButton("Save", d.save)
	d.form.AddButton("Cancel", model.Cancel)
	d.form.SetCancelFunc(model.Cancel)

	// каждая строка формы занимает две строки экрана, плюс кнопки и рамка
	d.height = 2*d.form.GetFormItemCount() + 4
	return d
}

func (d *formDialog) addField(field crud.Field) {
	switch field.Type {
	case crud.FieldChoice:
		d.addChoice(field)
	default:
		d.addInput(field)
	}

	if field.ReadOnly {
		return
	}
	d.form.AddTextView("", "", fieldWidth, 1, true, false)
	slot, ok := d.form.GetFormItem(d.form.GetFormItemCount() - 1).(*tview.TextView)
	if ok {
		d.slots[field.Key] = slot
	}
}

func (d *formDialog) addInput(field crud.Field) {
	input := tview.NewInputField().
		SetLabel(field.Label).
		SetText(d.model.Value(field.Key)).
		SetFieldWidth(fieldWidth).
		SetAcceptanceFunc(acceptanceFor(field))
	if field.Type == crud.FieldDate {
		input.SetPlaceholder("dd/mm/yyyy")
	}
	if field.ReadOnly {
		input.SetDisabled(true)
	} else {
		key := field.Key
		input.SetChangedFunc(func(text string) {
			d.model.SetValue(key, text)
		})
	}
	d.form.AddFormItem(input)
}

func (d *formDialog) addChoice(field crud.Field) {
	options := d.model.Options(field.Key)
	labels := make([]string, len(options))
	current := -1
	value := d.model.Value(field.Key)
	for i, opt := range options {
		labels[i] = opt.Label
		if strconv.FormatInt(opt.ID, 10) == value {
			current = i
		}
	}

	key := field.Key
	dropDown := tview.NewDropDown().
		SetLabel(field.Label).
		SetFieldWidth(fieldWidth).
		SetOptions(labels, func(text string, index int) {
			if index >= 0 && index < len(options) {
				d.model.SetValue(key, strconv.FormatInt(options[index].ID, 10))
			}
		})
	if current >= 0 {
		dropDown.SetCurrentOption(current)
	}
	d.form.AddFormItem(dropDown)
}

func (d *formDialog) save() {
	d.app.run(crud.Action{Label: "save form", Handler: func(ctx context.Context) error {
		_, err := d.model.Save(ctx)
		return err
	}})
}

// SetErrors обновляет слоты ошибок; поля без ошибки очищаются
func (d *formDialog) SetErrors(errs map[string]string) {
	for key, slot := range d.slots {
		msg := errs[key]
		if msg == "" {
			slot.SetText("")
			continue
		}
		slot.SetText("[red]" + tview.Escape(msg))
	}
}

// Close убирает диалог с экрана
func (d *formDialog) Close() {
	d.app.popModal(d.name)
}

// view центрирует форму на экране
func (d *formDialog) view() tview.Primitive {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(d.form, formWidth, 0, true).
			AddItem(nil, 0, 1, false), d.height, 0, true).
		AddItem(nil, 0, 1, false)
}

func acceptanceFor(field crud.Field) func(text string, ch rune) bool {
	switch field.Type {
	case crud.FieldInteger:
		return tview.InputFieldInteger
	case crud.FieldDecimal:
		return tview.InputFieldFloat
	case crud.FieldDate:
		return acceptDate
	}
	if field.MaxLength > 0 {
		return tview.InputFieldMaxLength(field.MaxLength)
	}
	return nil
}

func acceptDate(text string, ch rune) bool {
	if len([]rune(text)) > len("dd/mm/yyyy") {
		return false
	}
	return unicode.IsDigit(ch) || ch == '/'
}
