package product

import (
	"context"
	"errors"
	"fmt"
	"myMiloStore/domain"
	"myMiloStore/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type productService struct {
	productRepo ProductRepository
}

func NewProductService(productRepo ProductRepository) *productService {
	return &productService{
		productRepo: productRepo,
	}
}

// seedProducts are inserted once, on first startup against an empty catalog.
var seedProducts = []domain.Product{
	{Name: "Milo 1kg", Description: "Serbuk cokelat bergizi", Price: 95000, Image: "milo 1kg.png"},
	{Name: "Milo Cereal 330gr", Description: "Cereal cokelat renyah", Price: 45000, Image: "milo cereal.png"},
	{Name: "Milo Cube 100gr", Description: "Cokelat kubus praktis", Price: 30000, Image: "milo cube.jpeg"},
}

// EnsureSeeded inserts the example catalog when the products table is empty.
// Idempotence rests on the zero-count check, not on any uniqueness constraint.
func (s *productService) EnsureSeeded(ctx context.Context) error {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		logger.Error("Failed to count products", err)
		return err
	}

	if count > 0 {
		return nil
	}

	for _, p := range seedProducts {
		seed := p
		if err := s.productRepo.Create(ctx, &seed); err != nil {
			logger.Error("Failed to seed product", err)
			return fmt.Errorf("failed to seed product: %w", err)
		}
	}

	logger.Info("Catalog seeded", "products", len(seedProducts))

	return nil
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uint) (domain.Product, error) {
	if id == 0 {
		logger.Error("invalid product id")
		return domain.Product{}, errors.New("invalid product id")
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", err)
		return domain.Product{}, err
	}

	return product, nil
}

// CreateProduct stores a new catalog entry. Price is accepted as-is, zero and
// negative included, and names are not unique.
func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", err)
		return nil, err
	}

	logger.Info("product created", "product_id", product.ID)

	return product, nil
}

// UpdateProduct overwrites all mutable fields. A missing product is a silent
// no-op, the same answer the update gives when the row exists.
func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if product.ID == 0 {
		logger.Error("invalid product id")
		return errors.New("invalid product id")
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			logger.Warn("Update for missing product", "product_id", product.ID)
			return nil
		}
		logger.Error("failed to update product", err)
		return err
	}

	return nil
}

// DeleteProduct removes the product even while existing orders reference it;
// the order listing tolerates the dangling reference. Deleting a product that
// is already gone is a silent no-op.
func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	if id == 0 {
		logger.Error("invalid product id")
		return errors.New("invalid product id")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			logger.Warn("Delete for missing product", "product_id", id)
			return nil
		}
		logger.Error("failed to delete product", err)
		return err
	}

	return nil
}
