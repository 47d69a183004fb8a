package dto

// DateLayout - формат даты в полях формы (dd/MM/yyyy)
const DateLayout = "02/01/2006"

// DepartmentForm - данные формы отдела в том виде, в каком их ввёл пользователь
type DepartmentForm struct {
	ID   string `form:"id"`
	Name string `form:"name" validate:"required,max=30"`
}

// SellerForm - данные формы продавца
type SellerForm struct {
	ID           string `form:"id"`
	Name         string `form:"name" validate:"required,max=70"`
	Email        string `form:"email" validate:"required,email,max=60"`
	BirthDate    string `form:"birthDate" validate:"required,datetime=02/01/2006"`
	BaseSalary   string `form:"baseSalary" validate:"required,numeric"`
	DepartmentID string `form:"department"`
}
