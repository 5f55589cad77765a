package catalogservice

//go:generate mockgen -source=catalogservice.go -destination=mocks.go -package=catalogservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"teleshop/internal/domain"
)

type Repo interface {
	FindProductByID(ctx context.Context, productID int) (*domain.Product, error)
	FindProductByName(ctx context.Context, name string, categoryID int, subcategoryID *int) (*domain.Product, error)
	FindProducts(ctx context.Context, categoryID, subcategoryID *int) ([]domain.Product, error)
	SaveProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, productID int) error
	FindCategoryByID(ctx context.Context, categoryID int) (*domain.Category, error)
	FindCategories(ctx context.Context, parentID *int) ([]domain.Category, error)
	SaveCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	DeleteCategoryIfEmpty(ctx context.Context, categoryID int) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrProductExists    = errors.New("product already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryNotEmpty = errors.New("category still has products")
	ErrInvalidPrice     = errors.New("price must not be negative")
)

func (s *Service) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context, categoryID, subcategoryID *int) ([]domain.Product, error) {
	return s.repo.FindProducts(ctx, categoryID, subcategoryID)
}

func (s *Service) ListCategories(ctx context.Context, parentID *int) ([]domain.Category, error) {
	return s.repo.FindCategories(ctx, parentID)
}

func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Price < 0 {
		return nil, ErrInvalidPrice
	}

	category, err := s.repo.FindCategoryByID(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	if product.SubcategoryID != nil {
		subcategory, err := s.repo.FindCategoryByID(ctx, *product.SubcategoryID)
		if err != nil {
			return nil, err
		}
		if subcategory == nil {
			return nil, ErrCategoryNotFound
		}
	}

	existing, err := s.repo.FindProductByName(ctx, product.Name, product.CategoryID, product.SubcategoryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("duplicate product rejected", zap.String("name", product.Name))
		return nil, ErrProductExists
	}

	return s.repo.SaveProduct(ctx, product)
}

// UpdateProduct applies the changed fields onto the stored record; callers
// pass only what they want modified.
func (s *Service) UpdateProduct(ctx context.Context, productID int, apply func(*domain.Product)) (*domain.Product, error) {
	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	apply(product)
	if product.Price < 0 {
		return nil, ErrInvalidPrice
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, productID int) error {
	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.repo.DeleteProduct(ctx, productID)
}

func (s *Service) CreateCategory(ctx context.Context, name string, parentID *int) (*domain.Category, error) {
	if parentID != nil {
		parent, err := s.repo.FindCategoryByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrCategoryNotFound
		}
	}
	return s.repo.SaveCategory(ctx, &domain.Category{Name: name, ParentID: parentID})
}

func (s *Service) DeleteCategory(ctx context.Context, categoryID int) error {
	deleted, err := s.repo.DeleteCategoryIfEmpty(ctx, categoryID)
	if err != nil {
		return err
	}
	if deleted {
		return nil
	}

	category, err := s.repo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return ErrCategoryNotEmpty
}
