package repository

import (
	"context"
	"errors"

	"github.com/workshop-registry/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SellerRepository определяет интерфейс для работы с продавцами
type SellerRepository interface {
	FindAll(ctx context.Context) ([]domain.Seller, error)
	GetByID(ctx context.Context, id int64) (*domain.Seller, error)
	Create(ctx context.Context, seller *domain.Seller) error
	Update(ctx context.Context, seller *domain.Seller) error
	Delete(ctx context.Context, id int64) error
	CountByDepartmentID(ctx context.Context, departmentID int64) (int64, error)
}

type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository создаёт новый экземпляр репозитория
func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) FindAll(ctx context.Context) ([]domain.Seller, error) {
	var sellers []domain.Seller
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("name ASC").
		Order("id ASC").
		Find(&sellers).Error
	return sellers, err
}

func (r *sellerRepository) GetByID(ctx context.Context, id int64) (*domain.Seller, error) {
	var seller domain.Seller
	err := r.db.WithContext(ctx).Preload("Department").First(&seller, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSellerNotFound
		}
		return nil, err
	}
	return &seller, nil
}

// Create и Update не трогают связанный отдел: продавец ссылается на него только по id
func (r *sellerRepository) Create(ctx context.Context, seller *domain.Seller) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(seller).Error
}

func (r *sellerRepository) Update(ctx context.Context, seller *domain.Seller) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(seller).Error
}

func (r *sellerRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Seller{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSellerNotFound
	}
	return nil
}

func (r *sellerRepository) CountByDepartmentID(ctx context.Context, departmentID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Seller{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}
