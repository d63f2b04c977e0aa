package vault

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExportJSON serializes the full domain as pretty-printed JSON, secrets
// included. Секреты выгружаются открытым текстом - это сохраненное свойство
// формата, а не упущение.
func ExportJSON(d Domain) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal domain: %w", err)
	}
	return data, nil
}

// ExportFileName returns the download name for a domain export.
func ExportFileName(d Domain) string {
	return d.Name + ".json"
}

// ExportUsernames serializes the domain's usernames one per line, in account
// order, without trailing metadata.
func ExportUsernames(d Domain) []byte {
	names := make([]string, len(d.Accounts))
	for i, a := range d.Accounts {
		names[i] = a.Username
	}
	return []byte(strings.Join(names, "\n"))
}

// UsernamesFileName returns the download name for a username export.
func UsernamesFileName(d Domain) string {
	return d.Name + "_users.txt"
}

// ParseDomain decodes and structurally validates an uploaded domain file.
// Невалидный JSON дает ошибку ErrParse; синтаксически корректный JSON с
// неверной структурой - ErrValidation.
func ParseDomain(data []byte) (Domain, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Domain{}, fmt.Errorf("%w: %s", ErrParse, err)
	}

	var d Domain
	if err := json.Unmarshal(raw, &d); err != nil {
		// JSON корректен, но форма не совпадает с Domain
		return Domain{}, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	if err := validateDomainShape(raw); err != nil {
		return Domain{}, err
	}

	return d, nil
}

// validateDomainShape checks the decoded JSON against the domain contract:
// name must be a string, accounts must be a list, and every account must
// carry a string username and a type of "domain" or "local".
func validateDomainShape(data []byte) error {
	var shape struct {
		Name     json.RawMessage   `json:"name"`
		Accounts []json.RawMessage `json:"accounts"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}

	var name string
	if shape.Name == nil || string(shape.Name) == "null" || json.Unmarshal(shape.Name, &name) != nil {
		return fmt.Errorf("%w: name must be a string", ErrValidation)
	}
	if shape.Accounts == nil {
		return fmt.Errorf("%w: accounts must be a list", ErrValidation)
	}

	for i, rawAcc := range shape.Accounts {
		var acc struct {
			Username json.RawMessage `json:"username"`
			Type     string          `json:"type"`
		}
		if err := json.Unmarshal(rawAcc, &acc); err != nil {
			return fmt.Errorf("%w: account %d is malformed", ErrValidation, i)
		}
		var username string
		if acc.Username == nil || string(acc.Username) == "null" || json.Unmarshal(acc.Username, &username) != nil {
			return fmt.Errorf("%w: account %d: username must be a string", ErrValidation, i)
		}
		if t := AccountType(acc.Type); t != AccountTypeDomain && t != AccountTypeLocal {
			return fmt.Errorf("%w: account %d: unknown type %q", ErrValidation, i, acc.Type)
		}
	}

	return nil
}
