package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/workshop-registry/internal/crud"
	"github.com/workshop-registry/internal/domain"
	"github.com/workshop-registry/internal/repository"
)

// DepartmentService определяет операции хранения отделов для контроллеров
type DepartmentService interface {
	crud.Service[domain.Department]
	crud.OptionSource
}

type departmentService struct {
	deptRepo   repository.DepartmentRepository
	sellerRepo repository.SellerRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository, sellerRepo repository.SellerRepository) DepartmentService {
	return &departmentService{
		deptRepo:   deptRepo,
		sellerRepo: sellerRepo,
	}
}

func (s *departmentService) FindAll(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.deptRepo.FindAll(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	return departments, nil
}

// SaveOrUpdate вставляет отдел без id и обновляет существующий
func (s *departmentService) SaveOrUpdate(ctx context.Context, dept *domain.Department) error {
	dept.Name = strings.TrimSpace(dept.Name)

	if !dept.HasID() {
		if err := s.deptRepo.Create(ctx, dept); err != nil {
			return dbError(err)
		}
		return nil
	}

	// Проверяем существование отдела
	if _, err := s.deptRepo.GetByID(ctx, dept.ID); err != nil {
		return dbError(err)
	}

	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return dbError(err)
	}
	return nil
}

// Remove удаляет отдел, если на него не ссылается ни один продавец
func (s *departmentService) Remove(ctx context.Context, dept domain.Department) error {
	if !dept.HasID() {
		return dbError(domain.ErrDepartmentNotFound)
	}

	count, err := s.sellerRepo.CountByDepartmentID(ctx, dept.ID)
	if err != nil {
		return dbError(err)
	}
	if count > 0 {
		return fmt.Errorf("%w: department %q is referenced by %d seller(s)", domain.ErrIntegrity, dept.Name, count)
	}

	if err := s.deptRepo.Delete(ctx, dept.ID); err != nil {
		return dbError(err)
	}
	return nil
}

// Options возвращает отделы как варианты выбора для формы продавца
func (s *departmentService) Options(ctx context.Context) ([]crud.Option, error) {
	departments, err := s.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]crud.Option, len(departments))
	for i, d := range departments {
		options[i] = crud.Option{ID: d.ID, Label: d.Name}
	}
	return options, nil
}
