package vault

// Store - единственный владелец канонического списка доменов.
//
// selectedDomain и selectedAccount хранятся как проекции (копии) и всегда
// резолвятся обратно в канонический список по имени. Все переходы состояния
// синхронные и детерминированные: старое состояние + операция = новое
// состояние, без точек приостановки внутри перехода.
type Store struct {
	domains         []Domain
	selectedDomain  *Domain
	selectedAccount *Account
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Domains returns a snapshot of the canonical domain list.
func (s *Store) Domains() []Domain {
	out := make([]Domain, len(s.domains))
	for i := range s.domains {
		out[i] = cloneDomain(s.domains[i])
	}
	return out
}

// SelectedDomain returns a copy of the selected domain, or nil.
func (s *Store) SelectedDomain() *Domain {
	if s.selectedDomain == nil {
		return nil
	}
	d := cloneDomain(*s.selectedDomain)
	return &d
}

// SelectedAccount returns a copy of the selected account, or nil.
func (s *Store) SelectedAccount() *Account {
	if s.selectedAccount == nil {
		return nil
	}
	a := cloneAccount(*s.selectedAccount)
	return &a
}

// FindDomain resolves a domain by name against the canonical list.
func (s *Store) FindDomain(name string) (*Domain, bool) {
	for i := range s.domains {
		if s.domains[i].Name == name {
			d := cloneDomain(s.domains[i])
			return &d, true
		}
	}
	return nil, false
}

// AddDomain appends a domain to the canonical list.
// Проверка уникальности имени централизована здесь, а не в вызывающем коде.
func (s *Store) AddDomain(d Domain) error {
	if s.hasDomain(d.Name) {
		return ErrDuplicateName
	}
	s.domains = append(s.domains, cloneDomain(d))
	return nil
}

// DeleteDomain removes the domain with the given name. Removing the
// selected domain clears both selections. Unknown names are a no-op.
func (s *Store) DeleteDomain(name string) {
	if !s.hasDomain(name) {
		return
	}
	kept := s.domains[:0]
	for _, d := range s.domains {
		if d.Name != name {
			kept = append(kept, d)
		}
	}
	s.domains = kept
	if s.selectedDomain != nil && s.selectedDomain.Name == name {
		s.selectedDomain = nil
		s.selectedAccount = nil
	}
}

// SelectDomain selects a domain by name. The account selection is cleared
// whenever the selected domain's identity changes; re-selecting the same
// domain only refreshes the projection.
func (s *Store) SelectDomain(name string) error {
	idx := s.indexOf(name)
	if idx < 0 {
		return ErrNotFound
	}
	changed := s.selectedDomain == nil || s.selectedDomain.Name != name
	d := cloneDomain(s.domains[idx])
	s.selectedDomain = &d
	if changed {
		s.selectedAccount = nil
	}
	return nil
}

// ClearDomainSelection drops the domain selection (and with it the account).
func (s *Store) ClearDomainSelection() {
	s.selectedDomain = nil
	s.selectedAccount = nil
}

// SelectAccount selects an account of the selected domain by username.
// Ссылка, которую нельзя разрешить в текущем домене, схлопывается в "ничего
// не выбрано" - отдельного состояния "не найдено" нет.
func (s *Store) SelectAccount(username string) error {
	if s.selectedDomain == nil {
		return ErrNoDomainSelected
	}
	acc, ok := s.selectedDomain.FindAccount(username)
	if !ok {
		return ErrNotFound
	}
	a := cloneAccount(*acc)
	s.selectedAccount = &a
	return nil
}

// ClearAccountSelection drops the account selection.
func (s *Store) ClearAccountSelection() {
	s.selectedAccount = nil
}

// AddAccount appends an account to the selected domain and selects it.
func (s *Store) AddAccount(a Account) error {
	if s.selectedDomain == nil {
		return ErrNoDomainSelected
	}
	acc := cloneAccount(a)
	s.mutateSelected(func(d *Domain) {
		d.Accounts = append(d.Accounts, cloneAccount(acc))
	})
	s.selectedAccount = &acc
	return nil
}

// DeleteAccount removes the matching account from the selected domain.
//
// Выбор учетной записи сбрасывается безусловно, даже когда удаляется не
// выбранная запись - это сохраненный контракт исходного поведения, см.
// store_test.go.
func (s *Store) DeleteAccount(username string) error {
	if s.selectedDomain == nil {
		return ErrNoDomainSelected
	}
	s.mutateSelected(func(d *Domain) {
		kept := d.Accounts[:0]
		for _, a := range d.Accounts {
			if a.Username != username {
				kept = append(kept, a)
			}
		}
		d.Accounts = kept
	})
	s.selectedAccount = nil
	return nil
}

// UpdateAccount replaces the account matched by its old username with the
// updated record. Сопоставление идет по старому имени, поэтому операция
// позволяет переименовать учетную запись. Обновленная запись становится
// выбранной.
func (s *Store) UpdateAccount(username string, updated Account) error {
	if s.selectedDomain == nil {
		return ErrNoDomainSelected
	}
	if _, ok := s.selectedDomain.FindAccount(username); !ok {
		return ErrNotFound
	}
	upd := cloneAccount(updated)
	s.mutateSelected(func(d *Domain) {
		for i := range d.Accounts {
			if d.Accounts[i].Username == username {
				d.Accounts[i] = cloneAccount(upd)
			}
		}
	})
	s.selectedAccount = &upd
	return nil
}

// AddTagToAccount appends a tag to the matching account. Duplicate tags are
// permitted. Unknown usernames are a no-op.
func (s *Store) AddTagToAccount(username, tag string) error {
	if s.selectedDomain == nil {
		return ErrNoDomainSelected
	}
	s.mutateSelected(func(d *Domain) {
		if a, ok := d.FindAccount(username); ok {
			a.Tags = append(a.Tags, tag)
		}
	})
	s.refreshSelectedAccount(username)
	return nil
}

// RemoveTagFromAccount filters a tag out of the matching account. Removing a
// tag from an account without tags is a no-op, not an error.
func (s *Store) RemoveTagFromAccount(username, tag string) error {
	if s.selectedDomain == nil {
		return ErrNoDomainSelected
	}
	s.mutateSelected(func(d *Domain) {
		a, ok := d.FindAccount(username)
		if !ok || len(a.Tags) == 0 {
			return
		}
		kept := a.Tags[:0]
		for _, t := range a.Tags {
			if t != tag {
				kept = append(kept, t)
			}
		}
		a.Tags = kept
	})
	s.refreshSelectedAccount(username)
	return nil
}

// LoadDomainData is the import path: the domain is appended and selected,
// unless one with the same name already exists.
func (s *Store) LoadDomainData(d Domain) error {
	if s.hasDomain(d.Name) {
		return ErrDuplicateName
	}
	s.domains = append(s.domains, cloneDomain(d))
	sel := cloneDomain(d)
	s.selectedDomain = &sel
	s.selectedAccount = nil
	return nil
}

// Reset replaces the entire canonical list and clears both selections.
// Используется при первичной гидратации из персистентного хранилища.
func (s *Store) Reset(domains []Domain) {
	s.domains = make([]Domain, len(domains))
	for i := range domains {
		s.domains[i] = cloneDomain(domains[i])
	}
	s.selectedDomain = nil
	s.selectedAccount = nil
}

// mutateSelected applies fn to the selected domain in both the canonical
// list and the cached projection, keeping them in lockstep.
func (s *Store) mutateSelected(fn func(*Domain)) {
	idx := s.indexOf(s.selectedDomain.Name)
	if idx >= 0 {
		fn(&s.domains[idx])
	}
	fn(s.selectedDomain)
}

// refreshSelectedAccount re-resolves the selected account projection after a
// tag mutation so it does not go stale.
func (s *Store) refreshSelectedAccount(username string) {
	if s.selectedAccount == nil || s.selectedAccount.Username != username {
		return
	}
	if a, ok := s.selectedDomain.FindAccount(username); ok {
		acc := cloneAccount(*a)
		s.selectedAccount = &acc
	}
}

func (s *Store) hasDomain(name string) bool {
	return s.indexOf(name) >= 0
}

func (s *Store) indexOf(name string) int {
	for i := range s.domains {
		if s.domains[i].Name == name {
			return i
		}
	}
	return -1
}

// cloneDomain материализует пустой список учетных записей: домен без
// записей сериализуется как "accounts": [], а не null, и проходит ту же
// структурную валидацию, что и импортируемый файл.
func cloneDomain(d Domain) Domain {
	out := Domain{Name: d.Name, Accounts: make([]Account, len(d.Accounts))}
	for i := range d.Accounts {
		out.Accounts[i] = cloneAccount(d.Accounts[i])
	}
	return out
}

func cloneAccount(a Account) Account {
	out := a
	if a.Tags != nil {
		out.Tags = append([]string(nil), a.Tags...)
	}
	return out
}
