package crud_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workshop-registry/internal/crud"
	"github.com/workshop-registry/internal/domain"
	"github.com/workshop-registry/internal/handler"
)

type departmentList struct {
	list  *crud.ListController[domain.Department]
	store *memDepartments
	ui    *fakeUI
	host  *fakeHost
	view  *fakeListView
}

func newDepartmentList(t *testing.T, store *memDepartments) departmentList {
	t.Helper()
	ui := &fakeUI{answer: crud.ChoiceYes}
	host := &fakeHost{}
	kind := handler.NewDepartmentHandler(testValidator(t)).Kind()
	launcher := crud.NewLauncher(kind, host, ui, testLogger())

	list := crud.NewListController(kind, ui, launcher, testLogger())
	list.SetService(store)
	view := &fakeListView{}
	list.AttachView(view)

	return departmentList{list: list, store: store, ui: ui, host: host, view: view}
}

func (l departmentList) action(t *testing.T, row int, label string) crud.Action {
	t.Helper()
	rows := l.list.Rows()
	require.Less(t, row, len(rows))
	for _, a := range rows[row].Actions {
		if a.Label == label {
			return a
		}
	}
	t.Fatalf("row %d has no %q action", row, label)
	return crud.Action{}
}

func TestListController_RefreshWithoutService(t *testing.T) {
	kind := handler.NewDepartmentHandler(testValidator(t)).Kind()
	list := crud.NewListController(kind, &fakeUI{}, nil, testLogger())

	err := list.Refresh(context.Background())

	assert.ErrorIs(t, err, crud.ErrIllegalState)
	assert.ErrorIs(t, list.New(context.Background()), crud.ErrIllegalState)
	assert.ErrorIs(t, list.Remove(context.Background(), domain.Department{ID: 1}), crud.ErrIllegalState)
}

func TestListController_Initialize(t *testing.T) {
	l := newDepartmentList(t, newMemDepartments("Books"))

	assert.Equal(t, []string{"Id", "Name"}, l.list.Columns())
	assert.Equal(t, "Departments", l.list.Title())
	assert.Empty(t, l.list.Items())
	assert.Zero(t, l.view.calls)
}

func TestListController_Refresh(t *testing.T) {
	l := newDepartmentList(t, newMemDepartments("Books", "Sales"))

	require.NoError(t, l.list.Refresh(context.Background()))

	assert.Len(t, l.list.Items(), 2)
	require.Len(t, l.view.rows, 2)
	assert.Equal(t, []string{"1", "Books"}, l.view.rows[0].Cells)
	assert.Equal(t, []string{"2", "Sales"}, l.view.rows[1].Cells)
	for _, row := range l.view.rows {
		require.Len(t, row.Actions, 2)
		assert.Equal(t, "Edit", row.Actions[0].Label)
		assert.Equal(t, "Remove", row.Actions[1].Label)
	}
}

func TestListController_RefreshIsIdempotent(t *testing.T) {
	l := newDepartmentList(t, newMemDepartments("Books", "Sales", "Toys"))

	require.NoError(t, l.list.Refresh(context.Background()))
	firstItems := l.list.Items()
	firstCells := cells(l.list.Rows())

	require.NoError(t, l.list.Refresh(context.Background()))

	assert.Equal(t, firstItems, l.list.Items())
	assert.Equal(t, firstCells, cells(l.list.Rows()))
	assert.Equal(t, 2, l.view.calls)
}

func TestListController_RefreshFailureKeepsCollection(t *testing.T) {
	l := newDepartmentList(t, newMemDepartments("Books"))
	require.NoError(t, l.list.Refresh(context.Background()))

	l.store.findErr = errConnection
	err := l.list.Refresh(context.Background())

	assert.ErrorIs(t, err, errConnection)
	assert.Len(t, l.list.Items(), 1)
	require.Len(t, l.ui.alerts, 1)
	assert.Equal(t, crud.SeverityError, l.ui.alerts[0].Severity)
}

func TestListController_RemoveUnreferenced(t *testing.T) {
	l := newDepartmentList(t, newMemDepartments("Books", "Sales"))
	require.NoError(t, l.list.Refresh(context.Background()))

	err := l.action(t, 0, "Remove").Handler(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, l.ui.confirms)
	assert.Equal(t, 1, l.store.removes)
	assert.Equal(t, []domain.Department{{ID: 2, Name: "Sales"}}, l.list.Items())
	assert.Empty(t, l.ui.alerts)
}

func TestListController_RemoveReferenced(t *testing.T) {
	l := newDepartmentList(t, newMemDepartments("Books", "Sales"))
	l.store.referenced[1] = true
	require.NoError(t, l.list.Refresh(context.Background()))

	err := l.action(t, 0, "Remove").Handler(context.Background())

	require.NoError(t, err)
	assert.Len(t, l.list.Items(), 2)
	assert.Equal(t, domain.Department{ID: 1, Name: "Books"}, l.list.Items()[0])
	require.Len(t, l.ui.alerts, 1)
	assert.Equal(t, "Error removing department", l.ui.alerts[0].Title)
	assert.Equal(t, "The record is referenced by other records", l.ui.alerts[0].Header)
	assert.Contains(t, l.ui.alerts[0].Body, "Books")
}

func TestListController_RemoveDatabaseError(t *testing.T) {
	l := newDepartmentList(t, newMemDepartments("Books"))
	require.NoError(t, l.list.Refresh(context.Background()))
	delete(l.store.items, 1)

	err := l.list.Remove(context.Background(), domain.Department{ID: 1, Name: "Books"})

	require.NoError(t, err)
	require.Len(t, l.ui.alerts, 1)
	assert.Equal(t, "Database error", l.ui.alerts[0].Header)
	assert.Len(t, l.list.Items(), 1)
}

func TestListController_RemoveNotConfirmed(t *testing.T) {
	for _, choice := range []crud.Choice{crud.ChoiceNo, crud.ChoiceNone} {
		l := newDepartmentList(t, newMemDepartments("Books"))
		l.ui.answer = choice
		require.NoError(t, l.list.Refresh(context.Background()))

		require.NoError(t, l.action(t, 0, "Remove").Handler(context.Background()))

		assert.Equal(t, 1, l.ui.confirms)
		assert.Zero(t, l.store.removes)
		assert.Len(t, l.list.Items(), 1)
		assert.Empty(t, l.ui.alerts)
	}
}

func TestListController_EditRefreshesAfterSave(t *testing.T) {
	l := newDepartmentList(t, newMemDepartments("Books", "Sales"))
	l.host.onShow = func(form crud.FormModel) {
		assert.Equal(t, "Sales", form.Value("name"))
		form.SetValue("name", "Marketing")
		outcome, err := form.Save(context.Background())
		require.NoError(t, err)
		assert.Equal(t, crud.OutcomeSaved, outcome)
	}
	require.NoError(t, l.list.Refresh(context.Background()))

	require.NoError(t, l.action(t, 1, "Edit").Handler(context.Background()))

	assert.Equal(t, []string{"Department registration"}, l.host.titles)
	assert.Equal(t, domain.Department{ID: 2, Name: "Marketing"}, l.list.Items()[1])
	assert.Equal(t, 2, l.view.calls)
}

func TestListController_NewOpensBlankForm(t *testing.T) {
	l := newDepartmentList(t, newMemDepartments("Books"))
	l.host.onShow = func(form crud.FormModel) {
		assert.Equal(t, "", form.Value("id"))
		assert.Equal(t, "", form.Value("name"))
		form.SetValue("name", "Toys")
		_, err := form.Save(context.Background())
		require.NoError(t, err)
	}
	require.NoError(t, l.list.Refresh(context.Background()))

	require.NoError(t, l.list.New(context.Background()))

	require.Len(t, l.list.Items(), 2)
	assert.Equal(t, "Toys", l.list.Items()[1].Name)
}

func TestListController_CancelledDialogDoesNotRefresh(t *testing.T) {
	l := newDepartmentList(t, newMemDepartments("Books"))
	l.host.onShow = func(form crud.FormModel) {
		form.SetValue("name", "Toys")
		form.Cancel()
	}
	require.NoError(t, l.list.Refresh(context.Background()))

	require.NoError(t, l.list.New(context.Background()))

	assert.Len(t, l.list.Items(), 1)
	assert.Equal(t, 1, l.view.calls)
	assert.Zero(t, l.store.saves)
}

func cells(rows []crud.Row) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = r.Cells
	}
	return out
}
