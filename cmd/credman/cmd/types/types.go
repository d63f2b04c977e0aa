package types

// ContextKey - тип ключей контекста команд.
type ContextKey string

// ClientAppKey - ключ, под которым фасад приложения лежит в контексте.
const ClientAppKey ContextKey = "app"
