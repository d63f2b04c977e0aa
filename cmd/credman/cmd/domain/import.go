// cmd/credman/cmd/domain/import.go
package domain

import (
	"errors"
	"fmt"

	"credman/cmd/credman/cmd/types"
	"credman/internal/app/client"
	"credman/internal/domain/vault"

	"github.com/spf13/cobra"
)

var ImportCmd = &cobra.Command{
	Use:   "import <файл.json>",
	Short: "Импортировать домен из JSON-файла",
	Long: `Читает JSON-файл, проверяет структуру и добавляет домен в
хранилище. Импортированный домен становится выбранным. При конфликте имен
или невалидном файле состояние не меняется.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		d, err := app.ImportDomainFile(args[0])
		switch {
		case errors.Is(err, vault.ErrParse):
			return fmt.Errorf("файл не является корректным JSON: %w", err)
		case errors.Is(err, vault.ErrValidation):
			return fmt.Errorf("файл не похож на выгрузку домена: %w", err)
		case errors.Is(err, vault.ErrDuplicateName):
			return fmt.Errorf("домен с таким именем уже существует, импорт отменен")
		case err != nil:
			return err
		}

		fmt.Printf("✓ Домен %q импортирован (%d учетных записей) и выбран\n",
			d.Name, len(d.Accounts))
		return nil
	},
}
