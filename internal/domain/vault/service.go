package vault

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"

	"credman/internal/storage"
)

// StateKey - ключ, под которым каноническое состояние лежит в хранилище.
const StateKey = "passwordManagerData"

// Service defines the business logic for domain and account operations.
//
// Service оборачивает Store границей: валидация на входе, запись состояния
// в персистентное хранилище после каждой успешной мутации. Сбой записи
// логируется и не откатывает состояние в памяти - UI продолжает отражать
// правду из памяти.
type Service struct {
	store *Store
	kv    storage.KV
	log   *slog.Logger
}

// NewService creates a new vault service.
func NewService(kv storage.KV, log *slog.Logger) *Service {
	return &Service{
		store: NewStore(),
		kv:    kv,
		log:   log.With("component", "vault_service"),
	}
}

// persistedState - персистентная раскладка: канонический список плюс имя
// выбранного домена. Имя, а не объект: при загрузке оно заново резолвится
// в список, чтобы проекция не расходилась с каноном.
type persistedState struct {
	Domains        []json.RawMessage `json:"domains"`
	SelectedDomain string            `json:"selectedDomain,omitempty"`
}

// Hydrate loads the persisted state. Порядок строгий: сначала канонический
// список, затем резолвинг ранее выбранного домена по имени. Поврежденное
// или структурно невалидное состояние трактуется как неудачный импорт:
// откат к пустому состоянию, только лог.
func (s *Service) Hydrate() {
	var raw persistedState
	if !storage.LoadJSON(s.kv, s.log, StateKey, &raw) {
		return
	}

	domains := make([]Domain, 0, len(raw.Domains))
	for i, rawDomain := range raw.Domains {
		if err := validateDomainShape(rawDomain); err != nil {
			s.log.Warn("сохраненное состояние не прошло валидацию, откат к пустому",
				"index", i, "error", err)
			return
		}
		var d Domain
		if err := json.Unmarshal(rawDomain, &d); err != nil {
			s.log.Warn("сохраненное состояние не прошло валидацию, откат к пустому",
				"index", i, "error", err)
			return
		}
		domains = append(domains, d)
	}

	s.store.Reset(domains)

	if raw.SelectedDomain != "" {
		if err := s.store.SelectDomain(raw.SelectedDomain); err != nil {
			s.log.Debug("сохраненный выбранный домен не найден", "name", raw.SelectedDomain)
		}
	}

	s.log.Debug("состояние загружено", "domains", len(domains))
}

// Domains returns a snapshot of the canonical domain list.
func (s *Service) Domains() []Domain {
	return s.store.Domains()
}

// SelectedDomain returns the selected domain, or nil.
func (s *Service) SelectedDomain() *Domain {
	return s.store.SelectedDomain()
}

// SelectedAccount returns the selected account, or nil.
func (s *Service) SelectedAccount() *Account {
	return s.store.SelectedAccount()
}

// FindDomain resolves a domain by name.
func (s *Service) FindDomain(name string) (*Domain, bool) {
	return s.store.FindDomain(name)
}

// AddDomain validates and appends a new empty-or-populated domain.
func (s *Service) AddDomain(d Domain) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := s.store.AddDomain(d); err != nil {
		return fmt.Errorf("add domain %q: %w", d.Name, err)
	}
	s.persist()
	s.log.Info("домен добавлен", "name", d.Name)
	return nil
}

// DeleteDomain removes a domain by name.
func (s *Service) DeleteDomain(name string) {
	s.store.DeleteDomain(name)
	s.persist()
	s.log.Info("домен удален", "name", name)
}

// SelectDomain selects a domain by name.
func (s *Service) SelectDomain(name string) error {
	if err := s.store.SelectDomain(name); err != nil {
		return fmt.Errorf("select domain %q: %w", name, err)
	}
	s.persist()
	return nil
}

// ClearDomainSelection drops the domain selection.
func (s *Service) ClearDomainSelection() {
	s.store.ClearDomainSelection()
	s.persist()
}

// SelectAccount selects an account of the selected domain.
func (s *Service) SelectAccount(username string) error {
	if err := s.store.SelectAccount(username); err != nil {
		return fmt.Errorf("select account %q: %w", username, err)
	}
	return nil
}

// ClearAccountSelection drops the account selection.
func (s *Service) ClearAccountSelection() {
	s.store.ClearAccountSelection()
}

// AddAccount validates and appends an account to the selected domain.
func (s *Service) AddAccount(a Account) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if sel := s.store.SelectedDomain(); sel != nil {
		if _, exists := sel.FindAccount(a.Username); exists {
			return fmt.Errorf("add account %q: %w", a.Username, ErrDuplicateName)
		}
	}
	if err := s.store.AddAccount(a); err != nil {
		return fmt.Errorf("add account %q: %w", a.Username, err)
	}
	s.persist()
	s.log.Info("учетная запись добавлена", "username", a.Username, "type", a.Type)
	return nil
}

// DeleteAccount removes an account of the selected domain by username.
func (s *Service) DeleteAccount(username string) error {
	if err := s.store.DeleteAccount(username); err != nil {
		return fmt.Errorf("delete account %q: %w", username, err)
	}
	s.persist()
	s.log.Info("учетная запись удалена", "username", username)
	return nil
}

// UpdateAccount replaces the account matched by its old username.
func (s *Service) UpdateAccount(username string, updated Account) error {
	if err := updated.Validate(); err != nil {
		return err
	}
	if err := s.store.UpdateAccount(username, updated); err != nil {
		return fmt.Errorf("update account %q: %w", username, err)
	}
	s.persist()
	s.log.Info("учетная запись обновлена", "username", updated.Username)
	return nil
}

// AddTagToAccount appends a tag to an account of the selected domain.
func (s *Service) AddTagToAccount(username, tag string) error {
	if err := s.store.AddTagToAccount(username, tag); err != nil {
		return fmt.Errorf("tag account %q: %w", username, err)
	}
	s.persist()
	return nil
}

// RemoveTagFromAccount filters a tag out of an account of the selected domain.
func (s *Service) RemoveTagFromAccount(username, tag string) error {
	if err := s.store.RemoveTagFromAccount(username, tag); err != nil {
		return fmt.Errorf("untag account %q: %w", username, err)
	}
	s.persist()
	return nil
}

// ImportDomain is the file-import path: parse, validate, append, select.
// Конфликт имен отклоняется без изменения состояния.
func (s *Service) ImportDomain(contents []byte) (Domain, error) {
	d, err := ParseDomain(contents)
	if err != nil {
		return Domain{}, err
	}
	if err := s.store.LoadDomainData(d); err != nil {
		return Domain{}, fmt.Errorf("import domain %q: %w", d.Name, err)
	}
	s.persist()
	s.log.Info("домен импортирован", "name", d.Name, "accounts", len(d.Accounts))
	return d, nil
}

// persist пишет полное каноническое состояние плюс имя выбранного домена.
// Запись write-through: последняя успешная мутация всегда побеждает.
func (s *Service) persist() {
	state := Data{
		Domains: s.store.Domains(),
	}
	if sel := s.store.SelectedDomain(); sel != nil {
		state.SelectedDomain = sel.Name
	}
	storage.SaveJSON(s.kv, s.log, StateKey, state)
}
