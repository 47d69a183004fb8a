package crud_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/workshop-registry/internal/crud"
	"github.com/workshop-registry/internal/domain"
	"github.com/workshop-registry/internal/handler"
)

var errConnection = errors.New("connection refused")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testValidator(t *testing.T) *handler.FormValidator {
	t.Helper()
	v, err := handler.NewFormValidator()
	require.NoError(t, err)
	return v
}

// events записывает порядок вызовов между фейками
type events []string

func (e *events) add(s string) { *e = append(*e, s) }

type fakeUI struct {
	alerts   []crud.Alert
	confirms int
	answer   crud.Choice
}

func (u *fakeUI) Alert(a crud.Alert) {
	u.alerts = append(u.alerts, a)
}

func (u *fakeUI) Confirm(title, body string, answer func(crud.Choice)) {
	u.confirms++
	answer(u.answer)
}

// fakeHost вызывает onShow до возврата, как модальный диалог,
// который блокирует вызывающего до закрытия
type fakeHost struct {
	titles []string
	forms  []crud.FormModel
	err    error
	onShow func(form crud.FormModel)
}

func (h *fakeHost) ShowModal(title string, form crud.FormModel) error {
	if h.err != nil {
		return h.err
	}
	h.titles = append(h.titles, title)
	h.forms = append(h.forms, form)
	if h.onShow != nil {
		h.onShow(form)
	}
	return nil
}

type fakeFormView struct {
	errs   map[string]string
	closed int
	events *events
}

func (v *fakeFormView) SetErrors(errs map[string]string) {
	v.errs = errs
}

func (v *fakeFormView) Close() {
	v.closed++
	if v.events != nil {
		v.events.add("close")
	}
}

type fakeListView struct {
	rows  []crud.Row
	calls int
}

func (v *fakeListView) SetRows(rows []crud.Row) {
	v.rows = rows
	v.calls++
}

type memDepartments struct {
	items      map[int64]domain.Department
	nextID     int64
	referenced map[int64]bool
	saves      int
	removes    int
	findErr    error
	saveErr    error
	events     *events
}

func newMemDepartments(names ...string) *memDepartments {
	m := &memDepartments{
		items:      make(map[int64]domain.Department),
		nextID:     1,
		referenced: make(map[int64]bool),
	}
	for _, name := range names {
		m.items[m.nextID] = domain.Department{ID: m.nextID, Name: name}
		m.nextID++
	}
	return m
}

func (m *memDepartments) FindAll(ctx context.Context) ([]domain.Department, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	result := make([]domain.Department, 0, len(m.items))
	for _, d := range m.items {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *memDepartments) SaveOrUpdate(ctx context.Context, dept *domain.Department) error {
	m.saves++
	if m.events != nil {
		m.events.add("save")
	}
	if m.saveErr != nil {
		return m.saveErr
	}
	if !dept.HasID() {
		dept.ID = m.nextID
		m.nextID++
	}
	m.items[dept.ID] = *dept
	return nil
}

func (m *memDepartments) Remove(ctx context.Context, dept domain.Department) error {
	m.removes++
	if m.referenced[dept.ID] {
		return fmt.Errorf("%w: department %q is referenced by 1 seller(s)", domain.ErrIntegrity, dept.Name)
	}
	if _, ok := m.items[dept.ID]; !ok {
		return fmt.Errorf("%w: %w", domain.ErrDatabase, domain.ErrDepartmentNotFound)
	}
	delete(m.items, dept.ID)
	return nil
}

func (m *memDepartments) Options(ctx context.Context) ([]crud.Option, error) {
	departments, err := m.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]crud.Option, len(departments))
	for i, d := range departments {
		options[i] = crud.Option{ID: d.ID, Label: d.Name}
	}
	return options, nil
}

type memSellers struct {
	items  map[int64]domain.Seller
	nextID int64
	saves  int
}

func newMemSellers() *memSellers {
	return &memSellers{items: make(map[int64]domain.Seller), nextID: 1}
}

func (m *memSellers) FindAll(ctx context.Context) ([]domain.Seller, error) {
	result := make([]domain.Seller, 0, len(m.items))
	for _, s := range m.items {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *memSellers) SaveOrUpdate(ctx context.Context, seller *domain.Seller) error {
	m.saves++
	if !seller.HasID() {
		seller.ID = m.nextID
		m.nextID++
	}
	m.items[seller.ID] = *seller
	return nil
}

func (m *memSellers) Remove(ctx context.Context, seller domain.Seller) error {
	delete(m.items, seller.ID)
	return nil
}

type counter struct {
	n      int
	events *events
}

func (c *counter) OnDataChanged(ctx context.Context) {
	c.n++
	if c.events != nil {
		c.events.add("notify")
	}
}
