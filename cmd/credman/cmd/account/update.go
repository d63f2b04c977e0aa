// cmd/credman/cmd/account/update.go
package account

import (
	"errors"
	"fmt"

	"credman/cmd/credman/cmd/types"
	"credman/internal/app/client"
	"credman/internal/domain/vault"

	"github.com/spf13/cobra"
)

var (
	updUsername string
	updPassword string
	updNTLMHash string
	updType     string
	updHost     string
)

var UpdateCmd = &cobra.Command{
	Use:   "update <имя пользователя>",
	Short: "Изменить учетную запись",
	Long: `Заменяет учетную запись, найденную по старому имени пользователя.
Флаг --username позволяет переименовать запись. Не указанные флаги
сохраняют прежние значения. Обновленная запись становится выбранной.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		dom := app.Vault().SelectedDomain()
		if dom == nil {
			return fmt.Errorf("сначала выберите домен: credman domain select <имя>")
		}

		oldUsername := args[0]
		current, ok := dom.FindAccount(oldUsername)
		if !ok {
			return fmt.Errorf("учетная запись %q не найдена в текущем домене", oldUsername)
		}

		updated := *current
		if cmd.Flags().Changed("username") {
			updated.Username = updUsername
		}
		if cmd.Flags().Changed("password") {
			updated.Password = updPassword
		}
		if cmd.Flags().Changed("ntlm-hash") {
			updated.NTLMHash = updNTLMHash
		}
		if cmd.Flags().Changed("type") {
			updated.Type = vault.AccountType(updType)
		}
		if cmd.Flags().Changed("host") {
			updated.Host = updHost
		}

		err := app.Vault().UpdateAccount(oldUsername, updated)
		switch {
		case errors.Is(err, vault.ErrValidation):
			return fmt.Errorf("запись не прошла проверку: %w", err)
		case err != nil:
			return fmt.Errorf("ошибка обновления учетной записи: %w", err)
		}

		fmt.Printf("✓ Учетная запись %q обновлена\n", updated.Username)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updUsername, "username", "u", "", "новое имя пользователя")
	UpdateCmd.Flags().StringVarP(&updPassword, "password", "p", "", "новый пароль")
	UpdateCmd.Flags().StringVar(&updNTLMHash, "ntlm-hash", "", "новый NTLM-хеш")
	UpdateCmd.Flags().StringVarP(&updType, "type", "t", "", "тип учетной записи (domain, local)")
	UpdateCmd.Flags().StringVar(&updHost, "host", "", "хост локальной учетной записи")
}
