// Package repository собирает локальный кэш, удаленный сервис и встроенные
// фикстуры за одним интерфейсом на каждую сущность.
//
// Методы репозиториев не возвращают ошибок: отсутствие данных это nil,
// пустой результат это пустой (не nil) слайс, неудачная запись это false или nil.
// Причина любой неудачи пишется в лог.
package repository

import "github.com/iudanet/patinfly/internal/models"

// BikeFixtures встроенный источник велосипедов
type BikeFixtures interface {
	First() *models.Bike
	GetAll() []*models.Bike
	ByCategory(category string) []*models.Bike
}

// UserFixtures встроенный источник пользователей
type UserFixtures interface {
	First() *models.User
	// GetByEmail ищет по нормализованному email
	GetByEmail(email string) *models.User
}

// PlanFixtures встроенный источник тарифных планов
type PlanFixtures interface {
	First() *models.SystemPricingPlan
}
