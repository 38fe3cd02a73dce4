package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/models"
)

const bikeColumns = `uuid, name, bike_type_uuid, bike_type_name, bike_type_type, creation_date,
	last_maintenance_date, in_maintenance, is_active, is_deleted, battery_level, meters, is_rented`

// SaveBike inserts or replaces a bike
func (s *Storage) SaveBike(ctx context.Context, bike *models.Bike) error {
	query := `INSERT OR REPLACE INTO bikes (` + bikeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		bike.ID,
		bike.Name,
		bike.BikeType.UUID,
		bike.BikeType.Name,
		bike.BikeType.Type,
		bike.CreationDate,
		bike.LastMaintenanceDate,
		bike.InMaintenance,
		bike.IsActive,
		bike.IsDeleted,
		bike.BatteryLevel,
		bike.Meters,
		bike.IsRented,
	)
	if err != nil {
		return fmt.Errorf("failed to save bike: %w", err)
	}

	return nil
}

// GetBike retrieves a bike by ID
func (s *Storage) GetBike(ctx context.Context, id string) (*models.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes WHERE uuid = ?`

	bike, err := scanBike(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBikeNotFound
		}
		return nil, fmt.Errorf("failed to get bike: %w", err)
	}

	return bike, nil
}

// GetAllBikes retrieves all bikes
func (s *Storage) GetAllBikes(ctx context.Context) ([]*models.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes ORDER BY uuid`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bikes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	bikes := make([]*models.Bike, 0)
	for rows.Next() {
		bike, err := scanBike(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bike: %w", err)
		}
		bikes = append(bikes, bike)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return bikes, nil
}

// DeleteBike removes a bike by its ID
func (s *Storage) DeleteBike(ctx context.Context, bike *models.Bike) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM bikes WHERE uuid = ?`, bike.ID)
	if err != nil {
		return fmt.Errorf("failed to delete bike: %w", err)
	}

	return checkAffected(result, storage.ErrBikeNotFound)
}

// UpdateBikeActive обновляет только флаг is_active
func (s *Storage) UpdateBikeActive(ctx context.Context, id string, active bool) error {
	result, err := s.db.ExecContext(ctx, `UPDATE bikes SET is_active = ? WHERE uuid = ?`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update bike active flag: %w", err)
	}

	return checkAffected(result, storage.ErrBikeNotFound)
}

// UpdateBikeRented обновляет только флаг is_rented
func (s *Storage) UpdateBikeRented(ctx context.Context, id string, rented bool) error {
	result, err := s.db.ExecContext(ctx, `UPDATE bikes SET is_rented = ? WHERE uuid = ?`, rented, id)
	if err != nil {
		return fmt.Errorf("failed to update bike rented flag: %w", err)
	}

	return checkAffected(result, storage.ErrBikeNotFound)
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBike(row rowScanner) (*models.Bike, error) {
	bike := &models.Bike{}
	var lastMaintenance sql.NullString

	err := row.Scan(
		&bike.ID,
		&bike.Name,
		&bike.BikeType.UUID,
		&bike.BikeType.Name,
		&bike.BikeType.Type,
		&bike.CreationDate,
		&lastMaintenance,
		&bike.InMaintenance,
		&bike.IsActive,
		&bike.IsDeleted,
		&bike.BatteryLevel,
		&bike.Meters,
		&bike.IsRented,
	)
	if err != nil {
		return nil, err
	}

	if lastMaintenance.Valid {
		bike.LastMaintenanceDate = &lastMaintenance.String
	}

	return bike, nil
}

// checkAffected возвращает notFound, если запрос не затронул ни одной строки
func checkAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return notFound
	}

	return nil
}
