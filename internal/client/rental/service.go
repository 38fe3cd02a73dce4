package rental

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/iudanet/patinfly/internal/client/repository"
	"github.com/iudanet/patinfly/internal/models"
)

var (
	ErrBikeNotFound    = errors.New("bike not found")
	ErrBikeUnavailable = errors.New("bike is not available")
	ErrAlreadyRented   = errors.New("bike is already rented")
	ErrNotRented       = errors.New("bike is not rented")
	ErrNoCurrentUser   = errors.New("no current user")
	ErrPlanNotFound    = errors.New("pricing plan not found")
	ErrUpdateFailed    = errors.New("failed to save bike")
)

// Profile данные экрана профиля
type Profile struct {
	User    *models.User
	History []*models.Bike
}

type service struct {
	bikes  repository.BikeRepository
	users  repository.UserRepository
	plans  repository.PricingPlanRepository
	logger *slog.Logger
}

// NewService создает сервис проката
func NewService(
	bikes repository.BikeRepository,
	users repository.UserRepository,
	plans repository.PricingPlanRepository,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		bikes:  bikes,
		users:  users,
		plans:  plans,
		logger: logger,
	}
}

func (s *service) ListBikes(ctx context.Context, category string) []*models.Bike {
	category = strings.TrimSpace(category)
	if category == "" {
		return s.bikes.GetAll(ctx)
	}
	return s.bikes.BikesByCategory(ctx, category)
}

func (s *service) GetBike(ctx context.Context, id string) (*models.Bike, error) {
	bike := s.bikes.GetBike(ctx, id)
	if bike == nil {
		return nil, ErrBikeNotFound
	}
	return bike, nil
}

func (s *service) Reserve(ctx context.Context, id string) (*models.Bike, error) {
	bike, err := s.GetBike(ctx, id)
	if err != nil {
		return nil, err
	}
	if !bike.IsActive || bike.IsRented || bike.InMaintenance || bike.IsDeleted {
		return nil, ErrBikeUnavailable
	}

	if !s.bikes.SetBikeActive(ctx, id, false) {
		return nil, ErrUpdateFailed
	}
	bike.IsActive = false

	s.logger.Info("bike reserved", slog.String("id", id))
	return bike, nil
}

func (s *service) Rent(ctx context.Context, id string) (*models.Bike, error) {
	bike, err := s.GetBike(ctx, id)
	if err != nil {
		return nil, err
	}
	if bike.IsRented {
		return nil, ErrAlreadyRented
	}
	// зарезервированный (неактивный) велосипед можно взять в аренду
	if bike.InMaintenance || bike.IsDeleted {
		return nil, ErrBikeUnavailable
	}

	bike.IsRented = true
	if !s.bikes.UpdateBikeRentStatus(ctx, bike) {
		return nil, ErrUpdateFailed
	}

	s.logger.Info("bike rented", slog.String("id", id))
	return bike, nil
}

func (s *service) Release(ctx context.Context, id string) (*models.Bike, error) {
	bike, err := s.GetBike(ctx, id)
	if err != nil {
		return nil, err
	}
	if !bike.IsRented {
		return nil, ErrNotRented
	}

	bike.IsRented = false
	bike.IsActive = true
	if !s.bikes.UpdateBikeRentStatus(ctx, bike) {
		return nil, ErrUpdateFailed
	}

	s.logger.Info("bike released", slog.String("id", id))
	return bike, nil
}

func (s *service) Profile(ctx context.Context) (*Profile, error) {
	user := s.users.CurrentUser(ctx)
	if user == nil {
		return nil, ErrNoCurrentUser
	}
	return &Profile{
		User:    user,
		History: s.bikes.ActiveBikes(ctx),
	}, nil
}

func (s *service) Categories(ctx context.Context) []string {
	var names []string
	for _, b := range s.bikes.BikesByCategory(ctx, "") {
		name := b.BikeType.Name
		if name == "" || slices.ContainsFunc(names, func(n string) bool { return strings.EqualFold(n, name) }) {
			continue
		}
		names = append(names, name)
	}
	return names
}

func (s *service) PricingPlan(ctx context.Context, version string) (*models.SystemPricingPlan, error) {
	var plan *models.SystemPricingPlan
	if version == "" {
		plan = s.plans.CurrentPlan(ctx)
	} else {
		plan = s.plans.GetPricingPlan(ctx, version)
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *service) ServerStatus(ctx context.Context) models.ServerStatus {
	return s.bikes.Status(ctx)
}

// RemoveFromHistory возвращает history без велосипеда id.
// Хранилище не меняется, исходный слайс тоже.
func RemoveFromHistory(history []*models.Bike, id string) []*models.Bike {
	out := make([]*models.Bike, 0, len(history))
	for _, b := range history {
		if b != nil && b.ID != id {
			out = append(out, b)
		}
	}
	return out
}
