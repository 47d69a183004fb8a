package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/workshop-registry/internal/crud"
	"github.com/workshop-registry/internal/handler"
	"github.com/workshop-registry/internal/middleware"
)

// App - оболочка терминального интерфейса: меню слева, экран списка справа,
// модальные окна поверх. Все действия выполняются в горутине событий tview.
type App struct {
	app     *tview.Application
	pages   *tview.Pages
	menu    *tview.List
	content *tview.Pages
	logger  *slog.Logger
	version string

	ctx     context.Context
	routes  []handler.Route
	screens map[string]*listPage
	mws     []middleware.Middleware

	modals   []modalEntry
	seq      int
	fatalErr error
}

type modalEntry struct {
	name string
	prev tview.Primitive
}

// NewApp создаёт приложение без экранов; экраны добавляются через SetRoutes
func NewApp(logger *slog.Logger, version string) *App {
	a := &App{
		app:     tview.NewApplication(),
		pages:   tview.NewPages(),
		menu:    tview.NewList(),
		content: tview.NewPages(),
		logger:  logger,
		version: version,
		ctx:     context.Background(),
		screens: make(map[string]*listPage),
		mws: []middleware.Middleware{
			middleware.Recoverer(logger),
			middleware.Logger(logger),
		},
	}
	a.setupLayout()
	return a
}

// SetRoutes регистрирует экраны списков и пункты меню
func (a *App) SetRoutes(routes []handler.Route) {
	a.routes = routes
	a.menu.Clear()
	for i, route := range routes {
		route := route
		shortcut := rune('1' + i)
		a.menu.AddItem(route.List.Title(), "", shortcut, func() {
			a.showRoute(route)
		})
	}
	a.menu.AddItem("About", "", 'a', a.showAbout)
	a.menu.AddItem("Quit", "", 'q', a.app.Stop)
}

func (a *App) setupLayout() {
	a.menu.ShowSecondaryText(false)
	a.menu.SetBorder(true)
	a.menu.SetTitle(" Menu ")

	a.content.SetBorder(false)

	hints := tview.NewTextView().
		SetDynamicColors(true).
		SetText(" [yellow]Tab[-] switch panel  [yellow]n[-] new  [yellow]e[-] edit  [yellow]d[-] remove  [yellow]Enter[-] run action  [yellow]Esc[-] close dialog")

	body := tview.NewFlex().
		AddItem(a.menu, 20, 0, true).
		AddItem(a.content, 0, 1, false)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(hints, 1, 0, false)

	a.pages.AddPage("main", root, true, true)
	a.app.SetRoot(a.pages, true)
	a.app.EnableMouse(true)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if len(a.modals) > 0 || event.Key() != tcell.KeyTab {
			return event
		}
		if a.menu.HasFocus() {
			if page := a.currentScreen(); page != nil {
				a.app.SetFocus(page.table)
			}
		} else {
			a.app.SetFocus(a.menu)
		}
		return nil
	})
}

// Run запускает цикл событий до выхода пользователя или отмены ctx
func (a *App) Run(ctx context.Context) error {
	a.ctx = ctx
	if len(a.routes) > 0 {
		a.showRoute(a.routes[0])
	}

	go func() {
		<-ctx.Done()
		a.app.Stop()
	}()

	if err := a.app.Run(); err != nil {
		return err
	}
	return a.fatalErr
}

func (a *App) showRoute(route handler.Route) {
	page, ok := a.screens[route.Name]
	if !ok {
		page = newListPage(a, route.List)
		route.List.AttachView(page)
		a.screens[route.Name] = page
		a.content.AddPage(route.Name, page.layout, true, false)
	}
	a.content.SwitchToPage(route.Name)
	a.run(crud.Action{Label: "refresh " + route.Name, Handler: route.List.Refresh})
	a.app.SetFocus(page.table)
}

func (a *App) currentScreen() *listPage {
	name, _ := a.content.GetFrontPage()
	return a.screens[name]
}

func (a *App) showAbout() {
	a.Alert(crud.Alert{
		Title:    "About",
		Header:   "Workshop registry",
		Body:     fmt.Sprintf("Departments and sellers.\nVersion %s", a.version),
		Severity: crud.SeverityInfo,
	})
}

// run выполняет действие через цепочку middleware. Ошибки хранения уже
// показаны контроллерами; ошибка связывания завершает приложение.
func (a *App) run(action crud.Action) {
	err := middleware.Chain(action, a.mws...).Handler(a.ctx)
	if err == nil {
		return
	}
	if errors.Is(err, crud.ErrIllegalState) || errors.Is(err, middleware.ErrPanic) {
		a.fatal(err)
	}
}

func (a *App) fatal(err error) {
	a.logger.Error("fatal application error", slog.Any("error", err))
	a.fatalErr = err
	a.app.Stop()
}

// pushModal показывает примитив поверх остальных и запоминает фокус
func (a *App) pushModal(p tview.Primitive, focus tview.Primitive) string {
	a.seq++
	name := fmt.Sprintf("modal-%d", a.seq)
	a.modals = append(a.modals, modalEntry{name: name, prev: a.app.GetFocus()})
	a.pages.AddPage(name, p, true, true)
	a.app.SetFocus(focus)
	return name
}

// popModal закрывает модальное окно и возвращает фокус
func (a *App) popModal(name string) {
	for i := len(a.modals) - 1; i >= 0; i-- {
		if a.modals[i].name != name {
			continue
		}
		prev := a.modals[i].prev
		a.modals = append(a.modals[:i], a.modals[i+1:]...)
		a.pages.RemovePage(name)
		if prev != nil {
			a.app.SetFocus(prev)
		}
		return
	}
}
