package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"appstore-finder/models"
)

// Run represents one finder run stored in the database
type Run struct {
	ID            int64
	StartedAt     time.Time
	LinksCount    int
	ProductsCount int
}

// SaveRun stores a run with its products and their links in one transaction
// and returns the run ID
func (db *DB) SaveRun(ctx context.Context, products []models.Product, linksCount int) (int64, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var runID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO runs (links_count, products_count)
		VALUES ($1, $2)
		RETURNING id
	`, linksCount, len(products)).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}

	productStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (run_id, name, position)
		VALUES ($1, $2, $3)
		RETURNING id
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare product insert: %w", err)
	}
	defer productStmt.Close()

	linkStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO product_links (product_id, position, url)
		VALUES ($1, $2, $3)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare link insert: %w", err)
	}
	defer linkStmt.Close()

	for i, p := range products {
		var productID int64
		if err := productStmt.QueryRowContext(ctx, runID, p.Name, i+1).Scan(&productID); err != nil {
			return 0, fmt.Errorf("failed to save product %q: %w", p.Name, err)
		}
		for j, url := range p.Links {
			if _, err := linkStmt.ExecContext(ctx, productID, j+1, url); err != nil {
				return 0, fmt.Errorf("failed to save link %s: %w", url, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// GetRun retrieves a run by ID
func (db *DB) GetRun(ctx context.Context, runID int64) (*Run, error) {
	var run Run
	err := db.conn.QueryRowContext(ctx, `
		SELECT id, started_at, links_count, products_count
		FROM runs
		WHERE id = $1
	`, runID).Scan(&run.ID, &run.StartedAt, &run.LinksCount, &run.ProductsCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// GetRunProducts retrieves a run's products in their stored order
func (db *DB) GetRunProducts(ctx context.Context, runID int64) ([]models.Product, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT p.id, p.name, l.url
		FROM products p
		LEFT JOIN product_links l ON l.product_id = p.id
		WHERE p.run_id = $1
		ORDER BY p.position, l.position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	lastID := int64(-1)
	for rows.Next() {
		var id int64
		var name string
		var url sql.NullString
		if err := rows.Scan(&id, &name, &url); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		if id != lastID {
			products = append(products, models.Product{Name: name})
			lastID = id
		}
		if url.Valid {
			last := &products[len(products)-1]
			last.Extend(url.String)
		}
	}

	return products, rows.Err()
}
