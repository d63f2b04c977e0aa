// cmd/credman/cmd/domain/delete.go
package domain

import (
	"fmt"
	"strings"

	"credman/cmd/credman/cmd/types"
	"credman/internal/app/client"

	"github.com/spf13/cobra"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <имя>",
	Short: "Удалить домен",
	Long: `Удаляет домен вместе со всеми его учетными записями. Если домен
был выбран, выбор сбрасывается.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		name := args[0]
		if _, ok := app.Vault().FindDomain(name); !ok {
			return fmt.Errorf("домен %q не найден", name)
		}

		if !deleteYes {
			fmt.Printf("Удалить домен %q со всеми учетными записями? [y/N]: ", name)
			var answer string
			_, _ = fmt.Scanln(&answer)
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Отменено")
				return nil
			}
		}

		app.Vault().DeleteDomain(name)
		fmt.Printf("✓ Домен %q удален\n", name)
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "удалить без подтверждения")
}
