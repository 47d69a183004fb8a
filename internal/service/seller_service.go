package service

import (
	"context"
	"strings"

	"github.com/workshop-registry/internal/crud"
	"github.com/workshop-registry/internal/domain"
	"github.com/workshop-registry/internal/repository"
)

// SellerService определяет операции хранения продавцов
type SellerService interface {
	crud.Service[domain.Seller]
}

type sellerService struct {
	sellerRepo repository.SellerRepository
	deptRepo   repository.DepartmentRepository
}

// NewSellerService создаёт новый экземпляр сервиса
func NewSellerService(sellerRepo repository.SellerRepository, deptRepo repository.DepartmentRepository) SellerService {
	return &sellerService{
		sellerRepo: sellerRepo,
		deptRepo:   deptRepo,
	}
}

func (s *sellerService) FindAll(ctx context.Context) ([]domain.Seller, error) {
	sellers, err := s.sellerRepo.FindAll(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	return sellers, nil
}

func (s *sellerService) SaveOrUpdate(ctx context.Context, seller *domain.Seller) error {
	seller.Name = strings.TrimSpace(seller.Name)
	seller.Email = strings.TrimSpace(seller.Email)

	// Проверяем существование отдела, если он указан
	if seller.DepartmentID != nil {
		dept, err := s.deptRepo.GetByID(ctx, *seller.DepartmentID)
		if err != nil {
			return dbError(err)
		}
		seller.SetDepartment(dept)
	}

	if !seller.HasID() {
		if err := s.sellerRepo.Create(ctx, seller); err != nil {
			return dbError(err)
		}
		return nil
	}

	if _, err := s.sellerRepo.GetByID(ctx, seller.ID); err != nil {
		return dbError(err)
	}

	if err := s.sellerRepo.Update(ctx, seller); err != nil {
		return dbError(err)
	}
	return nil
}

func (s *sellerService) Remove(ctx context.Context, seller domain.Seller) error {
	if !seller.HasID() {
		return dbError(domain.ErrSellerNotFound)
	}
	if err := s.sellerRepo.Delete(ctx, seller.ID); err != nil {
		return dbError(err)
	}
	return nil
}
