package client

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"credman/internal/app/client/config"
	"credman/internal/domain/command"
	"credman/internal/domain/vault"
	"credman/internal/storage"
)

// App - фасад клиентского приложения. Собирается один раз на старте
// процесса; все слои интерфейса держат ссылку на него и не лезут в
// персистентное хранилище напрямую.
type App struct {
	config *config.Config
	log    *slog.Logger
	kv     storage.KV
	vault  *vault.Service
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	// Инициализируем локальное хранилище (используем SQLite)
	var kv storage.KV
	sqliteKV, err := storage.NewSQLiteKV(cfg.DataPath)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		kv = storage.NewMemoryKV()
	} else {
		kv = sqliteKV
	}

	app := &App{
		config: cfg,
		log:    log,
		kv:     kv,
		vault:  vault.NewService(kv, log),
	}

	// Гидратация: сначала канонический список, потом резолвинг выбранного
	// домена по имени.
	app.vault.Hydrate()

	return app, nil
}

// Vault возвращает сервис хранилища доменов и учетных записей.
func (a *App) Vault() *vault.Service {
	return a.vault
}

// Close закрывает персистентное хранилище.
func (a *App) Close() error {
	return a.kv.Close()
}

// GenerateCommands собирает готовые команды для выбранной учетной записи.
// Цель и поисковый запрос подставляются как есть; пустой результат означает
// "нет доступных команд" и отдается вызывающему без ошибки.
func (a *App) GenerateCommands(targetHost, searchTerm string) ([]command.Rendered, error) {
	dom := a.vault.SelectedDomain()
	if dom == nil {
		return nil, vault.ErrNoDomainSelected
	}
	acc := a.vault.SelectedAccount()
	if acc == nil {
		return nil, vault.ErrNoAccountSelected
	}
	return command.Generate(*acc, dom.Name, targetHost, searchTerm), nil
}

// ExportDomain выгружает выбранный домен в JSON-файл <имя>.json.
func (a *App) ExportDomain(dir string) (string, error) {
	dom := a.vault.SelectedDomain()
	if dom == nil {
		return "", vault.ErrNoDomainSelected
	}

	data, err := vault.ExportJSON(*dom)
	if err != nil {
		return "", fmt.Errorf("ошибка экспорта домена: %w", err)
	}

	path := filepath.Join(dir, vault.ExportFileName(*dom))
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("ошибка записи файла: %w", err)
	}

	a.log.Info("домен экспортирован", "name", dom.Name, "path", path)
	return path, nil
}

// ExportUsernames выгружает имена пользователей выбранного домена в
// текстовый файл <имя>_users.txt, по одному на строку.
func (a *App) ExportUsernames(dir string) (string, error) {
	dom := a.vault.SelectedDomain()
	if dom == nil {
		return "", vault.ErrNoDomainSelected
	}

	path := filepath.Join(dir, vault.UsernamesFileName(*dom))
	if err := os.WriteFile(path, vault.ExportUsernames(*dom), 0600); err != nil {
		return "", fmt.Errorf("ошибка записи файла: %w", err)
	}

	a.log.Info("имена пользователей экспортированы", "name", dom.Name, "path", path)
	return path, nil
}

// ImportDomainFile читает JSON-файл и добавляет домен в хранилище.
// При ошибке разбора или конфликте имен состояние не меняется.
func (a *App) ImportDomainFile(path string) (vault.Domain, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return vault.Domain{}, fmt.Errorf("ошибка чтения файла: %w", err)
	}
	return a.vault.ImportDomain(contents)
}
