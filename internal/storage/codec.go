package storage

import (
	"encoding/json"

	"golang.org/x/exp/slog"
)

// LoadJSON читает и декодирует значение по ключу. Отсутствие ключа или
// ошибка декодирования не поднимаются наверх: вызывающий остается со своим
// значением по умолчанию, сбой только логируется.
func LoadJSON(kv KV, log *slog.Logger, key string, dst any) bool {
	raw, ok, err := kv.Get(key)
	if err != nil {
		log.Warn("не удалось прочитать значение из хранилища", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Warn("поврежденное значение в хранилище, используем значение по умолчанию", "key", key, "error", err)
		return false
	}
	return true
}

// SaveJSON кодирует и записывает значение. Ошибка записи логируется и не
// поднимается: сбой персистентности не должен ронять хранилище состояния.
func SaveJSON(kv KV, log *slog.Logger, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Error("не удалось сериализовать значение", "key", key, "error", err)
		return
	}
	if err := kv.Set(key, string(raw)); err != nil {
		log.Error("не удалось сохранить значение", "key", key, "error", err)
	}
}
