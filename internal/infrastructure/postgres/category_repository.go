package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/entity"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implements the CategoryRepository port on PostgreSQL.
// Collection order is insertion order: position is assigned from a sequence
// on first insert and kept on replace.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository builds the persistence adapter for categories.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

const categoryColumns = `id, name_en, name_ar, desc_en, desc_ar, parent_id,
	pricing_method, sales_strategy, inactive, images, created_at, updated_at`

// List returns all categories in collection order.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY position`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID returns the category or (nil, nil) when missing.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// Upsert inserts the category or replaces the row with the same id.
func (r *CategoryRepo) Upsert(category *entity.Category) error {
	return r.upsert(context.Background(), r.pool, category)
}

// UpsertMany applies the whole batch inside one transaction so the save
// cascade is atomic for every reader.
func (r *CategoryRepo) UpsertMany(categories []*entity.Category) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, c := range categories {
		if err := r.upsert(ctx, tx, c); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Remove deletes the given ids in one statement (atomic subtree delete).
func (r *CategoryRepo) Remove(ids ...string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM categories WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("delete categories: %w", err)
	}
	return nil
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx, so the same upsert
// serves the single save and the transactional cascade batch.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func (r *CategoryRepo) upsert(ctx context.Context, q execer, category *entity.Category) error {
	images, err := json.Marshal(imagesOrEmpty(category.Images))
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}
	query := `
		INSERT INTO categories (id, name_en, name_ar, desc_en, desc_ar, parent_id,
			pricing_method, sales_strategy, inactive, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name_en = EXCLUDED.name_en,
			name_ar = EXCLUDED.name_ar,
			desc_en = EXCLUDED.desc_en,
			desc_ar = EXCLUDED.desc_ar,
			parent_id = EXCLUDED.parent_id,
			pricing_method = EXCLUDED.pricing_method,
			sales_strategy = EXCLUDED.sales_strategy,
			inactive = EXCLUDED.inactive,
			images = EXCLUDED.images,
			updated_at = EXCLUDED.updated_at`
	_, err = q.Exec(ctx, query,
		category.ID, category.NameEn, category.NameAr, category.DescEn, category.DescAr,
		category.ParentID, category.PricingMethod, category.SalesStrategy,
		category.Inactive, images, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}
	return nil
}

func imagesOrEmpty(images []entity.CategoryImage) []entity.CategoryImage {
	if images == nil {
		return []entity.CategoryImage{}
	}
	return images
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var (
		c        entity.Category
		parentID *string
		images   []byte
	)
	err := row.Scan(&c.ID, &c.NameEn, &c.NameAr, &c.DescEn, &c.DescAr, &parentID,
		&c.PricingMethod, &c.SalesStrategy, &c.Inactive, &images, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if parentID != nil {
		c.ParentID = *parentID
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &c.Images); err != nil {
			return nil, fmt.Errorf("unmarshal images: %w", err)
		}
	}
	return &c, nil
}
