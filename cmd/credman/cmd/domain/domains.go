// cmd/credman/cmd/domain/domains.go
package domain

import (
	"github.com/spf13/cobra"
)

var DomainCmd = &cobra.Command{
	Use:   "domain",
	Short: "Работа с доменами",
	Long: `Управление доменами: создание, выбор, удаление,
импорт и экспорт.`,
}
