package models

import "strings"

// BikeType описывает тип велосипеда (категорию)
type BikeType struct {
	UUID string `json:"uuid"` // UUID идентификатор типа (может быть пустым для данных с сервера)
	Name string `json:"name"` // Name отображаемое имя категории, по нему идет фильтрация
	Type string `json:"type"` // Type код категории (например, "URBAN", "ELECTRIC")
}

// Bike представляет велосипед в системе проката.
// Изменяемые поля: IsActive и IsRented, остальные после создания не меняются.
type Bike struct {
	LastMaintenanceDate *string  `json:"last_maintenance_date"` // LastMaintenanceDate дата последнего обслуживания, nil если не было
	ID                  string   `json:"uuid"`                  // ID уникальный идентификатор велосипеда
	Name                string   `json:"name"`                  // Name отображаемое имя
	CreationDate        string   `json:"creation_date"`         // CreationDate дата создания (ISO 8601)
	BikeType            BikeType `json:"bike_type"`             // BikeType тип велосипеда
	BatteryLevel        int      `json:"battery_level"`         // BatteryLevel уровень заряда 0-100, не валидируется
	Meters              int      `json:"meters"`                // Meters пробег в метрах
	InMaintenance       bool     `json:"in_maintenance"`        // InMaintenance находится на обслуживании
	IsActive            bool     `json:"is_active"`             // IsActive доступен для аренды
	IsDeleted           bool     `json:"is_deleted"`            // IsDeleted помечен как удаленный
	IsRented            bool     `json:"is_rented"`             // IsRented сейчас в аренде
}

// HasCategory сообщает, совпадает ли имя типа велосипеда с category без учета регистра
func (b Bike) HasCategory(category string) bool {
	return strings.EqualFold(b.BikeType.Name, category)
}
