package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `p.id, p.name, p.description, p.price_varejo, p.price_revenda,
	       p.image_url, p.sku, p.is_featured, p.category_id, p.created_at, p.updated_at`

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	err := scan(&p.ID, &p.Name, &p.Description, &p.PriceRetail, &p.PriceReseller,
		&p.ImageURL, &p.SKU, &p.IsFeatured, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func collectProducts(rows *sql.Rows) ([]*Product, error) {
	defer rows.Close()
	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) ListEnriched(ctx context.Context, f Filter) ([]*Product, error) {
	query := `SELECT ` + productColumns + `, c.name, c.slug
	          FROM products p
	          INNER JOIN categories c ON c.id = p.category_id
	          WHERE 1=1`
	args := []interface{}{}
	n := 1
	if f.HasCategory() {
		query += fmt.Sprintf(` AND c.slug=$%d`, n)
		args = append(args, f.CategorySlug)
		n++
	}
	if f.HasSearch() {
		query += fmt.Sprintf(` AND p.name ILIKE $%d`, n)
		args = append(args, "%"+f.Normalized().Search+"%")
		n++
	}
	query += ` ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{Category: &CategoryRef{}}
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceRetail, &p.PriceReseller,
			&p.ImageURL, &p.SKU, &p.IsFeatured, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
			&p.Category.Name, &p.Category.Slug)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products p ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *postgresRepo) ListFeatured(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products p
		WHERE p.is_featured=true ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *postgresRepo) ListAny(ctx context.Context, limit int) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products p ORDER BY p.created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`, c.name, c.slug
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id=$1`, uid)

	p := &Product{}
	var catName, catSlug sql.NullString
	err = row.Scan(&p.ID, &p.Name, &p.Description, &p.PriceRetail, &p.PriceReseller,
		&p.ImageURL, &p.SKU, &p.IsFeatured, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
		&catName, &catSlug)
	if err != nil {
		return nil, err
	}
	if catName.Valid {
		p.Category = &CategoryRef{Name: catName.String, Slug: catSlug.String}
	}
	return p, nil
}

func (r *postgresRepo) ListCategories(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, slug, description, created_at
		FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, name, description, price_varejo, price_revenda, image_url, sku, is_featured, category_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		p.ID, p.Name, p.Description, p.PriceRetail, p.PriceReseller,
		p.ImageURL, p.SKU, p.IsFeatured, p.CategoryID)
	return err
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name=$1, description=$2, price_varejo=$3, price_revenda=$4,
		    image_url=$5, sku=$6, is_featured=$7, category_id=$8, updated_at=NOW()
		WHERE id=$9`,
		p.Name, p.Description, p.PriceRetail, p.PriceReseller,
		p.ImageURL, p.SKU, p.IsFeatured, p.CategoryID, p.ID)
	return err
}
