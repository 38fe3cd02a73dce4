package models

import (
	"strings"

	"github.com/google/uuid"
)

// User представляет пользователя сервиса проката
type User struct {
	UUID           uuid.UUID `json:"uuid"`            // UUID идентификатор пользователя
	Name           string    `json:"name"`            // Name имя пользователя
	Email          string    `json:"email"`           // Email вторичный уникальный ключ поиска
	HashedPassword string    `json:"hashed_password"` // HashedPassword пароль или bcrypt хеш
	CreationDate   string    `json:"creation_date"`   // CreationDate дата регистрации
	LastConnection string    `json:"last_connection"` // LastConnection дата последнего входа
	DeviceID       string    `json:"device_id"`       // DeviceID идентификатор устройства
}

// NormalizeEmail приводит email к каноническому виду: без пробелов по краям и в нижнем регистре
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
