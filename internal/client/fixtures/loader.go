package fixtures

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
)

// loader загружает JSON документ ровно один раз
type loader struct {
	fsys   fs.FS
	logger *slog.Logger
	name   string
	once   sync.Once
}

func newLoader(fsys fs.FS, name string, logger *slog.Logger) *loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &loader{fsys: fsys, name: name, logger: logger}
}

// do выполняет decode при первом вызове; ошибки только логируются
func (l *loader) do(v any, seed func()) {
	l.once.Do(func() {
		if err := decodeFile(l.fsys, l.name, v); err != nil {
			l.logger.Error("failed to load fixture", slog.String("file", l.name), slog.Any("error", err))
			return
		}
		seed()
	})
}

func decodeFile(fsys fs.FS, name string, v any) error {
	if fsys == nil {
		return fmt.Errorf("fixture filesystem is nil")
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}

	return nil
}
