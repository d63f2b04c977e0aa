package vault

import (
	"fmt"
	"strings"
)

type AccountType string

const (
	AccountTypeLocal  AccountType = "local"
	AccountTypeDomain AccountType = "domain"
)

// Validate проверяет допустимость типа учетной записи.
func (t AccountType) Validate() error {
	switch t {
	case AccountTypeLocal, AccountTypeDomain:
		return nil
	}
	return fmt.Errorf("неверный тип учетной записи: %s", t)
}

// String возвращает строковое представление типа.
func (t AccountType) String() string {
	return string(t)
}

// DisplayName возвращает человекочитаемое название типа.
func (t AccountType) DisplayName() string {
	switch t {
	case AccountTypeLocal:
		return "Локальная"
	case AccountTypeDomain:
		return "Доменная"
	default:
		return "Неизвестный тип"
	}
}

// Account - учетная запись с секретами (пароль и/или NTLM-хеш)
type Account struct {
	Username string      `json:"username"`
	Password string      `json:"password,omitempty"`
	NTLMHash string      `json:"ntlmHash,omitempty"`
	Tags     []string    `json:"tags,omitempty"`
	Type     AccountType `json:"type"`
	Host     string      `json:"host,omitempty"`
}

// Validate проверяет учетную запись перед сохранением.
// Запись должна содержать хотя бы один секрет: пароль или NTLM-хеш.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if err := a.Type.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if a.Password == "" && a.NTLMHash == "" {
		return fmt.Errorf("%w: account needs a password or an NTLM hash", ErrValidation)
	}
	return nil
}

// HasPassword сообщает, задан ли пароль.
func (a *Account) HasPassword() bool {
	return a.Password != ""
}

// HasNTLMHash сообщает, задан ли NTLM-хеш.
func (a *Account) HasNTLMHash() bool {
	return a.NTLMHash != ""
}

// Domain - именованная коллекция учетных записей
type Domain struct {
	Name     string    `json:"name"`
	Accounts []Account `json:"accounts"`
}

// Validate проверяет домен перед сохранением.
func (d *Domain) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: domain name is required", ErrValidation)
	}
	return nil
}

// FindAccount возвращает учетную запись по имени пользователя.
// Сравнение точное, с учетом регистра.
func (d *Domain) FindAccount(username string) (*Account, bool) {
	for i := range d.Accounts {
		if d.Accounts[i].Username == username {
			return &d.Accounts[i], true
		}
	}
	return nil, false
}

// Data - корневая персистентная коллекция
type Data struct {
	Domains []Domain `json:"domains"`
	// Имя выбранного домена, не сам объект: при загрузке имя заново
	// резолвится в канонический список.
	SelectedDomain string `json:"selectedDomain,omitempty"`
}
