package fixtures

import (
	"io/fs"
	"log/slog"
	"sync"

	"github.com/iudanet/patinfly/internal/models"
)

// PlanStore in-memory хранилище тарифов из system_pricing_plans.json.
//
// Документ разбивается на записи по одному плану: каждая запись это копия
// SystemPricingPlan с единственным планом в Data.Plans. Ключ записи - PlanID
// первого (и единственного) плана, а не Version.
type PlanStore struct {
	loader *loader
	index  *orderedIndex[models.SystemPricingPlan]
	mu     sync.RWMutex
}

// NewPlanStore создает хранилище; документ читается при первом обращении
func NewPlanStore(fsys fs.FS, logger *slog.Logger) *PlanStore {
	return &PlanStore{
		loader: newLoader(fsys, PlansFile, logger),
		index:  newOrderedIndex[models.SystemPricingPlan](),
	}
}

func (s *PlanStore) ensureLoaded() {
	var doc models.SystemPricingPlan
	s.loader.do(&doc, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, p := range doc.Data.Plans {
			entry := doc
			entry.Data = models.DataPlan{Plans: []models.Plan{p}}
			s.index.put(p.PlanID, entry)
		}
	})
}

// First возвращает первую запись или nil
func (s *PlanStore) First() *models.SystemPricingPlan {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.index.first()
	if !ok {
		return nil
	}
	return &p
}

// Get возвращает запись по PlanID или nil
func (s *PlanStore) Get(planID string) *models.SystemPricingPlan {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.index.get(planID)
	if !ok {
		return nil
	}
	return &p
}

// GetAll возвращает все записи в порядке загрузки
func (s *PlanStore) GetAll() []*models.SystemPricingPlan {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.SystemPricingPlan, 0, s.index.len())
	for _, p := range s.index.values() {
		out = append(out, &p)
	}
	return out
}

// Insert добавляет запись; false, если план с таким PlanID уже есть или планов нет
func (s *PlanStore) Insert(plan *models.SystemPricingPlan) bool {
	key := plan.FirstPlanID()
	if key == "" {
		return false
	}

	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index.has(key) {
		return false
	}
	s.index.put(key, *plan)
	return true
}

// InsertOrUpdate добавляет или заменяет запись; false, если планов нет
func (s *PlanStore) InsertOrUpdate(plan *models.SystemPricingPlan) bool {
	key := plan.FirstPlanID()
	if key == "" {
		return false
	}

	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index.put(key, *plan)
	return true
}

// Update заменяет существующую запись; false, если ее нет
func (s *PlanStore) Update(plan *models.SystemPricingPlan) bool {
	key := plan.FirstPlanID()

	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.index.has(key) {
		return false
	}
	s.index.put(key, *plan)
	return true
}

// DeleteFirst удаляет и возвращает первую запись
func (s *PlanStore) DeleteFirst() *models.SystemPricingPlan {
	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.index.first()
	if !ok {
		return nil
	}
	s.index.remove(p.FirstPlanID())
	return &p
}
