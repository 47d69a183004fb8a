package crud

import "context"

// Severity - уровень важности уведомления
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Alert - блокирующее уведомление пользователю
type Alert struct {
	Title    string
	Header   string
	Body     string
	Severity Severity
}

// Choice - ответ пользователя на запрос подтверждения
type Choice int

const (
	// ChoiceNone - окно закрыто без ответа, трактуется как отмена
	ChoiceNone Choice = iota
	ChoiceYes
	ChoiceNo
)

// UI - то, что контроллерам нужно от слоя представления
type UI interface {
	Alert(a Alert)
	Confirm(title, body string, answer func(Choice))
}

// HandlerFunc - действие, запускаемое пользователем
type HandlerFunc func(ctx context.Context) error

// Action описывает кнопку в строке списка
type Action struct {
	Label   string
	Handler HandlerFunc
}

// Row - строка списка: значения колонок и действия над сущностью строки
type Row struct {
	Cells   []string
	Actions []Action
}

// ListView отображает строки списка
type ListView interface {
	SetRows(rows []Row)
}

// ListModel - нетипизированный интерфейс контроллера списка для слоя представления
type ListModel interface {
	Title() string
	Columns() []string
	Refresh(ctx context.Context) error
	New(ctx context.Context) error
	AttachView(v ListView)
}

// FormView - диалог формы, которым управляет FormController
type FormView interface {
	SetErrors(errs map[string]string)
	Close()
}

// FormModel - нетипизированный интерфейс контроллера формы для слоя представления
type FormModel interface {
	Fields() []Field
	Value(key string) string
	SetValue(key, value string)
	Options(key string) []Option
	Errors() map[string]string
	Save(ctx context.Context) (Outcome, error)
	Cancel()
	AttachView(v FormView)
}

// DialogHost показывает форму модально
type DialogHost interface {
	ShowModal(title string, form FormModel) error
}
