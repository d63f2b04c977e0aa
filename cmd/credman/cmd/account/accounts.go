// cmd/credman/cmd/account/accounts.go
package account

import (
	"github.com/spf13/cobra"
)

var AccountCmd = &cobra.Command{
	Use:   "account",
	Short: "Работа с учетными записями",
	Long: `Управление учетными записями выбранного домена: создание,
выбор, изменение, удаление и теги.`,
}
