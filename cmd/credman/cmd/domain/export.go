// cmd/credman/cmd/domain/export.go
package domain

import (
	"errors"
	"fmt"

	"credman/cmd/credman/cmd/types"
	"credman/internal/app/client"
	"credman/internal/domain/vault"

	"github.com/spf13/cobra"
)

var (
	exportDir   string
	exportUsers bool
)

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Экспортировать выбранный домен",
	Long: `Выгружает выбранный домен в файл <имя>.json. Секреты выгружаются
открытым текстом.

С флагом --users дополнительно выгружается файл <имя>_users.txt с именами
пользователей, по одному на строку - удобно скармливать спреерам паролей.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		path, err := app.ExportDomain(exportDir)
		if errors.Is(err, vault.ErrNoDomainSelected) {
			return fmt.Errorf("сначала выберите домен: credman domain select <имя>")
		}
		if err != nil {
			return err
		}
		fmt.Printf("✓ Домен выгружен: %s\n", path)

		if exportUsers {
			usersPath, err := app.ExportUsernames(exportDir)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Имена пользователей выгружены: %s\n", usersPath)
		}

		return nil
	},
}

func init() {
	ExportCmd.Flags().StringVar(&exportDir, "dir", ".", "директория для файлов экспорта")
	ExportCmd.Flags().BoolVar(&exportUsers, "users", false, "также выгрузить список имен пользователей")
}
