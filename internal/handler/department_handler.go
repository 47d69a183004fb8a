package handler

import (
	"strconv"
	"strings"

	"github.com/workshop-registry/internal/crud"
	"github.com/workshop-registry/internal/domain"
	"github.com/workshop-registry/internal/dto"
)

// DepartmentHandler описывает отдел для списка и формы
type DepartmentHandler struct {
	validator *FormValidator
}

func NewDepartmentHandler(validator *FormValidator) *DepartmentHandler {
	return &DepartmentHandler{validator: validator}
}

// Kind возвращает описание вида сущности "отдел"
func (h *DepartmentHandler) Kind() *crud.Kind[domain.Department] {
	return &crud.Kind[domain.Department]{
		Name:   "department",
		Plural: "Departments",
		Title:  "Department registration",
		Columns: []crud.Column[domain.Department]{
			{Title: "Id", Value: func(d domain.Department) string { return strconv.FormatInt(d.ID, 10) }},
			{Title: "Name", Value: func(d domain.Department) string { return d.Name }},
		},
		Fields: []crud.Field{
			{Key: "id", Label: "Id", Type: crud.FieldInteger, ReadOnly: true},
			{Key: "name", Label: "Name", Type: crud.FieldText, MaxLength: 30},
		},
		New:    func() domain.Department { return domain.Department{} },
		HasID:  domain.Department.HasID,
		Format: h.format,
		Parse:  h.parse,
	}
}

func (h *DepartmentHandler) format(d domain.Department) crud.Values {
	return crud.Values{
		"id":   crud.FormatID(d.ID),
		"name": d.Name,
	}
}

func (h *DepartmentHandler) parse(data crud.FormData) (domain.Department, error) {
	form := dto.DepartmentForm{
		ID:   data.Text("id"),
		Name: strings.TrimSpace(data.Text("name")),
	}

	if err := h.validator.Validate(&form); err != nil {
		return domain.Department{}, err
	}

	return domain.Department{
		ID:   crud.ParseID(form.ID),
		Name: form.Name,
	}, nil
}
