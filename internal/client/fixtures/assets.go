// Package fixtures provides in-memory stores seeded once from packaged JSON documents.
//
// Each store loads its document lazily on first access and never again for the
// lifetime of the store. Decode errors are logged and leave the store empty.
// "First" always means first in load (insertion) order; callers must not rely on
// it being a stable notion of the current entity.
package fixtures

import (
	"embed"
	"io/fs"
)

// Имена файлов с тестовыми данными
const (
	BikesFile = "bikes.json"
	UserFile  = "user.json"
	PlansFile = "system_pricing_plans.json"
)

//go:embed assets/*.json
var embedAssets embed.FS

// Assets возвращает встроенные JSON документы
func Assets() fs.FS {
	sub, err := fs.Sub(embedAssets, "assets")
	if err != nil {
		// путь задан константой, ошибка невозможна
		panic(err)
	}
	return sub
}
