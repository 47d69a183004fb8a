package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/workshop-registry/internal/crud"
	"github.com/workshop-registry/internal/domain"
	"github.com/workshop-registry/internal/dto"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SellerHandler описывает продавца для списка и формы
type SellerHandler struct {
	validator *FormValidator
	printer   *message.Printer
}

func NewSellerHandler(validator *FormValidator) *SellerHandler {
	return &SellerHandler{
		validator: validator,
		printer:   message.NewPrinter(language.English),
	}
}

// Kind возвращает описание вида сущности "продавец"
func (h *SellerHandler) Kind() *crud.Kind[domain.Seller] {
	return &crud.Kind[domain.Seller]{
		Name:   "seller",
		Plural: "Sellers",
		Title:  "Seller registration",
		Columns: []crud.Column[domain.Seller]{
			{Title: "Id", Value: func(s domain.Seller) string { return strconv.FormatInt(s.ID, 10) }},
			{Title: "Name", Value: func(s domain.Seller) string { return s.Name }},
			{Title: "Email", Value: func(s domain.Seller) string { return s.Email }},
			{Title: "Birth date", Value: func(s domain.Seller) string { return formatDate(s.BirthDate) }},
			{Title: "Base salary", Value: h.salaryCell},
			{Title: "Department", Value: departmentName},
		},
		Fields: []crud.Field{
			{Key: "id", Label: "Id", Type: crud.FieldInteger, ReadOnly: true},
			{Key: "name", Label: "Name", Type: crud.FieldText, MaxLength: 70},
			{Key: "email", Label: "Email", Type: crud.FieldText, MaxLength: 60},
			{Key: "birthDate", Label: "Birth date", Type: crud.FieldDate},
			{Key: "baseSalary", Label: "Base salary", Type: crud.FieldDecimal},
			{Key: "department", Label: "Department", Type: crud.FieldChoice},
		},
		New:    func() domain.Seller { return domain.Seller{} },
		HasID:  domain.Seller.HasID,
		Format: h.format,
		Parse:  h.parse,
	}
}

func (h *SellerHandler) salaryCell(s domain.Seller) string {
	return h.printer.Sprintf("%.2f", s.BaseSalary)
}

func (h *SellerHandler) format(s domain.Seller) crud.Values {
	values := crud.Values{
		"id":         crud.FormatID(s.ID),
		"name":       s.Name,
		"email":      s.Email,
		"birthDate":  formatDate(s.BirthDate),
		"baseSalary": "",
		"department": "",
	}
	if s.HasID() {
		values["baseSalary"] = fmt.Sprintf("%.2f", s.BaseSalary)
	}
	if s.DepartmentID != nil {
		values["department"] = strconv.FormatInt(*s.DepartmentID, 10)
	}
	return values
}

// parse собирает нового продавца из формы. Отдел не проверяется:
// пустой выбор означает продавца без отдела.
func (h *SellerHandler) parse(data crud.FormData) (domain.Seller, error) {
	form := dto.SellerForm{
		ID:           data.Text("id"),
		Name:         strings.TrimSpace(data.Text("name")),
		Email:        strings.TrimSpace(data.Text("email")),
		BirthDate:    strings.TrimSpace(data.Text("birthDate")),
		BaseSalary:   strings.TrimSpace(data.Text("baseSalary")),
		DepartmentID: data.Text("department"),
	}

	if err := h.validator.Validate(&form); err != nil {
		return domain.Seller{}, err
	}

	birthDate, err := time.ParseInLocation(dto.DateLayout, form.BirthDate, time.UTC)
	if err != nil {
		return domain.Seller{}, invalidField("birthDate", "Invalid date, use dd/mm/yyyy")
	}
	salary, err := strconv.ParseFloat(form.BaseSalary, 64)
	if err != nil {
		return domain.Seller{}, invalidField("baseSalary", "Invalid number")
	}

	seller := domain.Seller{
		ID:         crud.ParseID(form.ID),
		Name:       form.Name,
		Email:      form.Email,
		BirthDate:  &birthDate,
		BaseSalary: salary,
	}
	if opt, ok := data.Choice("department"); ok {
		seller.SetDepartment(&domain.Department{ID: opt.ID, Name: opt.Label})
	}
	return seller, nil
}

func invalidField(field, msg string) error {
	verr := crud.NewValidationError("validation error")
	verr.Add(field, msg)
	return verr
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(dto.DateLayout)
}

func departmentName(s domain.Seller) string {
	if s.Department == nil {
		return ""
	}
	return s.Department.Name
}
