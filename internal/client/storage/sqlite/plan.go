package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/models"
)

// SavePricingPlan inserts or replaces a pricing plan by version.
// Вложенные планы сериализуются в JSON и хранятся одной колонкой.
func (s *Storage) SavePricingPlan(ctx context.Context, plan *models.SystemPricingPlan) error {
	data, err := json.Marshal(plan.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal plan data: %w", err)
	}

	query := `INSERT OR REPLACE INTO pricing_plans (version, last_updated, ttl, data) VALUES (?, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, query, plan.Version, plan.LastUpdated, plan.TTL, data); err != nil {
		return fmt.Errorf("failed to save pricing plan: %w", err)
	}

	return nil
}

// GetPricingPlan retrieves a pricing plan by version
func (s *Storage) GetPricingPlan(ctx context.Context, version string) (*models.SystemPricingPlan, error) {
	query := `SELECT version, last_updated, ttl, data FROM pricing_plans WHERE version = ?`

	plan, err := scanPlan(s.db.QueryRowContext(ctx, query, version))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get pricing plan: %w", err)
	}

	return plan, nil
}

// GetAllPricingPlans retrieves all pricing plans ordered by version
func (s *Storage) GetAllPricingPlans(ctx context.Context) ([]*models.SystemPricingPlan, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT version, last_updated, ttl, data FROM pricing_plans ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing plans: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	plans := make([]*models.SystemPricingPlan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pricing plan: %w", err)
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return plans, nil
}

// DeletePricingPlan removes a pricing plan by version
func (s *Storage) DeletePricingPlan(ctx context.Context, plan *models.SystemPricingPlan) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM pricing_plans WHERE version = ?`, plan.Version)
	if err != nil {
		return fmt.Errorf("failed to delete pricing plan: %w", err)
	}

	return checkAffected(result, storage.ErrPlanNotFound)
}

func scanPlan(row rowScanner) (*models.SystemPricingPlan, error) {
	plan := &models.SystemPricingPlan{}
	var data []byte

	if err := row.Scan(&plan.Version, &plan.LastUpdated, &plan.TTL, &data); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &plan.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan data: %w", err)
	}

	return plan, nil
}
