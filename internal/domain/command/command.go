// Package command - каталог шаблонов команд и движок их генерации.
//
// Шаблон - строка с плейсхолдерами {username}, {password}, {ntlmHash},
// {domain}, {targetHost}. Движок подставляет в них данные выбранной учетной
// записи с экранированием для shell и возвращает готовые к копированию
// строки. Сгенерированные команды нигде не исполняются.
package command

type AuthType string

const (
	AuthTypePassword AuthType = "password"
	AuthTypeNTLMHash AuthType = "ntlmHash"
)

// Command - статический шаблон команды.
type Command struct {
	Name     string   `json:"name"`
	Template string   `json:"template"`
	AuthType AuthType `json:"authType"`
}

// Rendered - шаблон вместе с готовым текстом команды.
type Rendered struct {
	Command Command `json:"command"`
	Text    string  `json:"text"`
}
