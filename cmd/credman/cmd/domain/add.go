// cmd/credman/cmd/domain/add.go
package domain

import (
	"errors"
	"fmt"

	"credman/cmd/credman/cmd/types"
	"credman/internal/app/client"
	"credman/internal/domain/vault"

	"github.com/spf13/cobra"
)

var selectAfterAdd bool

var AddCmd = &cobra.Command{
	Use:   "add <имя>",
	Short: "Создать новый домен",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		name := args[0]
		err := app.Vault().AddDomain(vault.Domain{Name: name, Accounts: []vault.Account{}})
		if errors.Is(err, vault.ErrDuplicateName) {
			return fmt.Errorf("домен %q уже существует", name)
		}
		if err != nil {
			return fmt.Errorf("ошибка создания домена: %w", err)
		}

		if selectAfterAdd {
			if err := app.Vault().SelectDomain(name); err != nil {
				return fmt.Errorf("ошибка выбора домена: %w", err)
			}
		}

		fmt.Printf("✓ Домен %q создан\n", name)
		return nil
	},
}

func init() {
	AddCmd.Flags().BoolVar(&selectAfterAdd, "select", true, "сделать новый домен выбранным")
}
