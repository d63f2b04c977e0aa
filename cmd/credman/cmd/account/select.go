// cmd/credman/cmd/account/select.go
package account

import (
	"errors"
	"fmt"

	"credman/cmd/credman/cmd/types"
	"credman/internal/app/client"
	"credman/internal/domain/vault"

	"github.com/spf13/cobra"
)

var selectNone bool

var SelectCmd = &cobra.Command{
	Use:   "select [имя пользователя]",
	Short: "Выбрать текущую учетную запись",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if selectNone {
			app.Vault().ClearAccountSelection()
			fmt.Println("✓ Выбор учетной записи сброшен")
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("укажите имя пользователя или флаг --none")
		}

		username := args[0]
		err := app.Vault().SelectAccount(username)
		switch {
		case errors.Is(err, vault.ErrNoDomainSelected):
			return fmt.Errorf("сначала выберите домен: credman domain select <имя>")
		case errors.Is(err, vault.ErrNotFound):
			return fmt.Errorf("учетная запись %q не найдена в текущем домене", username)
		case err != nil:
			return fmt.Errorf("ошибка выбора учетной записи: %w", err)
		}

		fmt.Printf("✓ Текущая учетная запись: %s\n", username)
		return nil
	},
}

func init() {
	SelectCmd.Flags().BoolVar(&selectNone, "none", false, "сбросить выбор учетной записи")
}
