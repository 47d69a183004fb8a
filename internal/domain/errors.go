package domain

import "errors"

// Определение ошибок слоя хранения
var (
	ErrDatabase           = errors.New("database error")
	ErrIntegrity          = errors.New("integrity violation")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrSellerNotFound     = errors.New("seller not found")
)
