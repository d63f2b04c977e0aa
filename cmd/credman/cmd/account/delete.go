// cmd/credman/cmd/account/delete.go
package account

import (
	"errors"
	"fmt"

	"credman/cmd/credman/cmd/types"
	"credman/internal/app/client"
	"credman/internal/domain/vault"

	"github.com/spf13/cobra"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <имя пользователя>",
	Short: "Удалить учетную запись",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		err := app.Vault().DeleteAccount(args[0])
		if errors.Is(err, vault.ErrNoDomainSelected) {
			return fmt.Errorf("сначала выберите домен: credman domain select <имя>")
		}
		if err != nil {
			return fmt.Errorf("ошибка удаления учетной записи: %w", err)
		}

		fmt.Printf("✓ Учетная запись %q удалена\n", args[0])
		return nil
	},
}
