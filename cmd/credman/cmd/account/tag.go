// cmd/credman/cmd/account/tag.go
package account

import (
	"errors"
	"fmt"

	"credman/cmd/credman/cmd/types"
	"credman/internal/app/client"
	"credman/internal/domain/vault"

	"github.com/spf13/cobra"
)

var TagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Теги учетных записей",
	Long: `Свободные текстовые метки на учетных записях: "DA", "kerberoasted",
"reused" и тому подобное. Дубликаты тегов допускаются.`,
}

var tagAddCmd = &cobra.Command{
	Use:   "add <имя пользователя> <тег>",
	Short: "Добавить тег",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		err := app.Vault().AddTagToAccount(args[0], args[1])
		if errors.Is(err, vault.ErrNoDomainSelected) {
			return fmt.Errorf("сначала выберите домен: credman domain select <имя>")
		}
		if err != nil {
			return fmt.Errorf("ошибка добавления тега: %w", err)
		}

		fmt.Printf("✓ Тег %q добавлен к %q\n", args[1], args[0])
		return nil
	},
}

var tagRemoveCmd = &cobra.Command{
	Use:   "remove <имя пользователя> <тег>",
	Short: "Убрать тег",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		err := app.Vault().RemoveTagFromAccount(args[0], args[1])
		if errors.Is(err, vault.ErrNoDomainSelected) {
			return fmt.Errorf("сначала выберите домен: credman domain select <имя>")
		}
		if err != nil {
			return fmt.Errorf("ошибка удаления тега: %w", err)
		}

		fmt.Printf("✓ Тег %q убран с %q\n", args[1], args[0])
		return nil
	},
}

func init() {
	TagCmd.AddCommand(tagAddCmd)
	TagCmd.AddCommand(tagRemoveCmd)
}
