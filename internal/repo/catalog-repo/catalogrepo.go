package catalogrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"teleshop/internal/domain"
	"teleshop/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindProductByID(ctx context.Context, productID int) (*domain.Product, error) {
	query := `
        SELECT id, name, description, price, category_id, subcategory_id, delivery_payload, media_handle
        FROM products
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, productID)

	var product domain.Product
	err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.CategoryID, &product.SubcategoryID, &product.DeliveryPayload, &product.MediaHandle)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}
	return &product, nil
}

func (r *Repository) FindProductByName(ctx context.Context, name string, categoryID int, subcategoryID *int) (*domain.Product, error) {
	query := `
        SELECT id, name, description, price, category_id, subcategory_id, delivery_payload, media_handle
        FROM products
        WHERE name = $1 AND category_id = $2 AND subcategory_id IS NOT DISTINCT FROM $3
    `
	row := r.db.QueryRow(ctx, query, name, categoryID, subcategoryID)

	var product domain.Product
	err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.CategoryID, &product.SubcategoryID, &product.DeliveryPayload, &product.MediaHandle)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product by name", zap.Error(err))
		return nil, err
	}
	return &product, nil
}

func (r *Repository) FindProducts(ctx context.Context, categoryID, subcategoryID *int) ([]domain.Product, error) {
	query := `
        SELECT id, name, description, price, category_id, subcategory_id, delivery_payload, media_handle
        FROM products
        WHERE ($1::int IS NULL OR category_id = $1)
          AND ($2::int IS NULL OR subcategory_id = $2)
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, categoryID, subcategoryID)
	if err != nil {
		zap.L().Error("can't get products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.CategoryID, &product.SubcategoryID, &product.DeliveryPayload, &product.MediaHandle)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *Repository) SaveProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (name, description, price, category_id, subcategory_id, delivery_payload, media_handle)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, product.Name, product.Description, product.Price, product.CategoryID, product.SubcategoryID, product.DeliveryPayload, product.MediaHandle).Scan(&product.ID)
	if err != nil {
		zap.L().Error("can't save product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	query := `
        UPDATE products
        SET name = $1, description = $2, price = $3, category_id = $4, subcategory_id = $5, delivery_payload = $6, media_handle = $7
        WHERE id = $8
    `
	_, err := r.db.Exec(ctx, query, product.Name, product.Description, product.Price, product.CategoryID, product.SubcategoryID, product.DeliveryPayload, product.MediaHandle, product.ID)
	if err != nil {
		zap.L().Error("can't update product", zap.Error(err))
		return err
	}
	return nil
}

// DeleteProduct removes the product together with every cart row and order
// row that still references it, in one transaction.
func (r *Repository) DeleteProduct(ctx context.Context, productID int) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `DELETE FROM cart WHERE product_id = $1`, productID); err != nil {
			zap.L().Error("can't delete cart rows for product", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, `DELETE FROM orders WHERE product_id = $1`, productID); err != nil {
			zap.L().Error("can't delete order rows for product", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID); err != nil {
			zap.L().Error("can't delete product", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) FindCategoryByID(ctx context.Context, categoryID int) (*domain.Category, error) {
	query := `
        SELECT id, name, parent_id
        FROM categories
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, categoryID)

	var category domain.Category
	err := row.Scan(&category.ID, &category.Name, &category.ParentID)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find category", zap.Error(err))
		return nil, err
	}
	return &category, nil
}

func (r *Repository) FindCategories(ctx context.Context, parentID *int) ([]domain.Category, error) {
	query := `
        SELECT id, name, parent_id
        FROM categories
        WHERE parent_id IS NOT DISTINCT FROM $1
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query, parentID)
	if err != nil {
		zap.L().Error("can't get categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(&category.ID, &category.Name, &category.ParentID)
		if err != nil {
			zap.L().Error("can't scan category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *Repository) SaveCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
        INSERT INTO categories (name, parent_id)
        VALUES ($1, $2)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, category.Name, category.ParentID).Scan(&category.ID)
	if err != nil {
		zap.L().Error("can't save category", zap.Error(err))
		return nil, err
	}
	return category, nil
}

// DeleteCategoryIfEmpty deletes the category only while no product references
// it as category or subcategory. Returns true when a row was deleted, so the
// caller can tell "still referenced" apart from "gone".
func (r *Repository) DeleteCategoryIfEmpty(ctx context.Context, categoryID int) (bool, error) {
	query := `
        DELETE FROM categories
        WHERE id = $1
          AND NOT EXISTS (
              SELECT 1 FROM products
              WHERE category_id = $1 OR subcategory_id = $1
          )
    `
	tag, err := r.db.Exec(ctx, query, categoryID)
	if err != nil {
		zap.L().Error("can't delete category", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
