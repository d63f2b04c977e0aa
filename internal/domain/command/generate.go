package command

import (
	"strings"

	"credman/internal/domain/vault"
)

// Generate фильтрует применимые шаблоны и подставляет в них данные учетной
// записи.
//
// Применимость: шаблон остается, только если учетная запись владеет секретом
// его authType. Шаблоны без нужного секрета молча отбрасываются. Поисковый
// фильтр сравнивает сырую строку шаблона без учета регистра; пустой запрос
// пропускает все. Порядок вывода - порядок каталога.
//
// {targetHost} подставляется буквально, включая пустую строку. Плейсхолдеры
// вне пяти известных имен не трогаются и проходят насквозь.
func Generate(acc vault.Account, domainName, targetHost, searchTerm string) []Rendered {
	catalog := CatalogFor(acc.Type == vault.AccountTypeLocal)
	search := strings.ToLower(searchTerm)

	var out []Rendered
	for _, cmd := range catalog {
		switch cmd.AuthType {
		case AuthTypePassword:
			if !acc.HasPassword() {
				continue
			}
		case AuthTypeNTLMHash:
			if !acc.HasNTLMHash() {
				continue
			}
		default:
			continue
		}

		if search != "" && !strings.Contains(strings.ToLower(cmd.Template), search) {
			continue
		}

		out = append(out, Rendered{
			Command: cmd,
			Text:    render(cmd.Template, acc, domainName, targetHost),
		})
	}

	return out
}

func render(template string, acc vault.Account, domainName, targetHost string) string {
	replacer := strings.NewReplacer(
		"{username}", escapeShell(acc.Username),
		"{password}", escapeShell(acc.Password),
		"{ntlmHash}", escapeShell(acc.NTLMHash),
		"{domain}", escapeShell(domainName),
		"{targetHost}", escapeShell(targetHost),
	)
	return replacer.Replace(template)
}

// escapeShell экранирует одинарные кавычки POSIX-разрывом кавычки:
// ' -> '"'"'. Подставленное значение остается безопасным внутри
// одинарных кавычек аргумента. Применяется единообразно ко всем полям.
func escapeShell(value string) string {
	return strings.ReplaceAll(value, "'", `'"'"'`)
}
