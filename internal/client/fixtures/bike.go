package fixtures

import (
	"io/fs"
	"log/slog"
	"sync"

	"github.com/iudanet/patinfly/internal/models"
)

type bikesDocument struct {
	Bikes []models.Bike `json:"bike"`
}

// BikeStore in-memory хранилище велосипедов из bikes.json
type BikeStore struct {
	loader *loader
	index  *orderedIndex[models.Bike]
	mu     sync.RWMutex
}

// NewBikeStore создает хранилище; документ читается при первом обращении
func NewBikeStore(fsys fs.FS, logger *slog.Logger) *BikeStore {
	return &BikeStore{
		loader: newLoader(fsys, BikesFile, logger),
		index:  newOrderedIndex[models.Bike](),
	}
}

func (s *BikeStore) ensureLoaded() {
	var doc bikesDocument
	s.loader.do(&doc, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, b := range doc.Bikes {
			s.index.put(b.ID, b)
		}
		s.loader.logger.Debug("bike fixtures loaded", slog.Int("count", s.index.len()))
	})
}

// First возвращает первый велосипед в порядке загрузки или nil
func (s *BikeStore) First() *models.Bike {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.index.first()
	if !ok {
		return nil
	}
	return &b
}

// Get возвращает велосипед по id или nil
func (s *BikeStore) Get(id string) *models.Bike {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.index.get(id)
	if !ok {
		return nil
	}
	return &b
}

// GetAll возвращает все велосипеды в порядке загрузки
func (s *BikeStore) GetAll() []*models.Bike {
	return s.filter(func(models.Bike) bool { return true })
}

// ByCategory возвращает велосипеды, у которых имя типа совпадает с category без учета регистра.
// Пустая категория означает все велосипеды.
func (s *BikeStore) ByCategory(category string) []*models.Bike {
	if category == "" {
		return s.GetAll()
	}
	return s.filter(func(b models.Bike) bool { return b.HasCategory(category) })
}

func (s *BikeStore) filter(keep func(models.Bike) bool) []*models.Bike {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Bike, 0, s.index.len())
	for _, b := range s.index.values() {
		if keep(b) {
			out = append(out, &b)
		}
	}
	return out
}

// Insert добавляет велосипед; возвращает false, если id уже есть
func (s *BikeStore) Insert(bike *models.Bike) bool {
	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index.has(bike.ID) {
		return false
	}
	s.index.put(bike.ID, *bike)
	return true
}

// InsertOrUpdate добавляет или заменяет велосипед
func (s *BikeStore) InsertOrUpdate(bike *models.Bike) {
	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index.put(bike.ID, *bike)
}

// Update заменяет существующий велосипед; false, если его нет
func (s *BikeStore) Update(bike *models.Bike) bool {
	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.index.has(bike.ID) {
		return false
	}
	s.index.put(bike.ID, *bike)
	return true
}

// DeleteFirst удаляет и возвращает первый велосипед
func (s *BikeStore) DeleteFirst() *models.Bike {
	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.index.first()
	if !ok {
		return nil
	}
	s.index.remove(b.ID)
	return &b
}

// Len количество велосипедов
func (s *BikeStore) Len() int {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.len()
}
