package domain

import (
	"time"
)

// NoID - значение идентификатора для ещё не сохранённой сущности
const NoID int64 = 0

// Department представляет отдел
type Department struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(60);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// HasID сообщает, сохранён ли отдел в БД
func (d Department) HasID() bool {
	return d.ID != NoID
}

// Seller представляет продавца, закреплённого за отделом
type Seller struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Name         string     `gorm:"type:varchar(70);not null"`
	Email        string     `gorm:"type:varchar(60);not null"`
	BirthDate    *time.Time `gorm:"type:date"`
	BaseSalary   float64    `gorm:"not null"`
	DepartmentID *int64     `gorm:"index"`

	Department *Department `gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Seller) TableName() string {
	return "sellers"
}

// HasID сообщает, сохранён ли продавец в БД
func (s Seller) HasID() bool {
	return s.ID != NoID
}

// SetDepartment привязывает продавца к отделу (nil снимает привязку)
func (s *Seller) SetDepartment(dept *Department) {
	if dept == nil {
		s.Department = nil
		s.DepartmentID = nil
		return
	}
	d := *dept
	id := d.ID
	s.Department = &d
	s.DepartmentID = &id
}
