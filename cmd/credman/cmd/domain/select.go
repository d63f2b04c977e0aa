// cmd/credman/cmd/domain/select.go
package domain

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
	Use:   "select [имя]",
	Short: "Выбрать текущий домен",
	Long: `Делает домен текущим. Выбор учетной записи при смене домена
сбрасывается.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if selectNone {
			app.Vault().ClearDomainSelection()
			fmt.Println("✓ Выбор домена сброшен")
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("укажите имя домена или флаг --none")
		}

		name := args[0]
		if err := app.Vault().SelectDomain(name); err != nil {
			if errors.Is(err, vault.ErrNotFound) {
				return fmt.Errorf("домен %q не найден", name)
			}
			return fmt.Errorf("ошибка выбора домена: %w", err)
		}

		fmt.Printf("✓ Текущий домен: %s\n", name)
		return nil
	},
}

func init() {
	SelectCmd.Flags().BoolVar(&selectNone, "none", false, "сбросить выбор домена")
}
