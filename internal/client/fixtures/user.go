package fixtures

import (
	"io/fs"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/iudanet/patinfly/internal/models"
)

// UserStore in-memory хранилище пользователей из user.json.
// Два индекса: по UUID и по нормализованному email; обновляются вместе.
type UserStore struct {
	loader  *loader
	byID    *orderedIndex[models.User]
	byEmail map[string]string // normalized email -> uuid
	mu      sync.RWMutex
}

// NewUserStore создает хранилище; документ читается при первом обращении
func NewUserStore(fsys fs.FS, logger *slog.Logger) *UserStore {
	return &UserStore{
		loader:  newLoader(fsys, UserFile, logger),
		byID:    newOrderedIndex[models.User](),
		byEmail: make(map[string]string),
	}
}

func (s *UserStore) ensureLoaded() {
	var user models.User
	s.loader.do(&user, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.save(user)
	})
}

// save пишет в оба индекса; вызывать под s.mu
func (s *UserStore) save(user models.User) {
	id := user.UUID.String()
	if prev, ok := s.byID.get(id); ok {
		delete(s.byEmail, models.NormalizeEmail(prev.Email))
	}
	s.byID.put(id, user)
	s.byEmail[models.NormalizeEmail(user.Email)] = id
}

// First возвращает первого пользователя или nil
func (s *UserStore) First() *models.User {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID.first()
	if !ok {
		return nil
	}
	return &u
}

// Get возвращает пользователя по UUID или nil
func (s *UserStore) Get(id uuid.UUID) *models.User {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID.get(id.String())
	if !ok {
		return nil
	}
	return &u
}

// GetByEmail ищет пользователя по email без учета регистра и пробелов по краям
func (s *UserStore) GetByEmail(email string) *models.User {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[models.NormalizeEmail(email)]
	if !ok {
		return nil
	}
	u, ok := s.byID.get(id)
	if !ok {
		return nil
	}
	return &u
}

// GetAll возвращает всех пользователей в порядке загрузки
func (s *UserStore) GetAll() []*models.User {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, 0, s.byID.len())
	for _, u := range s.byID.values() {
		out = append(out, &u)
	}
	return out
}

// Insert добавляет пользователя; false, если UUID уже есть
func (s *UserStore) Insert(user *models.User) bool {
	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byID.has(user.UUID.String()) {
		return false
	}
	s.save(*user)
	return true
}

// InsertOrUpdate добавляет или заменяет пользователя
func (s *UserStore) InsertOrUpdate(user *models.User) {
	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.save(*user)
}

// Update заменяет существующего пользователя; false, если его нет
func (s *UserStore) Update(user *models.User) bool {
	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.byID.has(user.UUID.String()) {
		return false
	}
	s.save(*user)
	return true
}

// DeleteFirst удаляет и возвращает первого пользователя
func (s *UserStore) DeleteFirst() *models.User {
	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID.first()
	if !ok {
		return nil
	}
	s.byID.remove(u.UUID.String())
	delete(s.byEmail, models.NormalizeEmail(u.Email))
	return &u
}
