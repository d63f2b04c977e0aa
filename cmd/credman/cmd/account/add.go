// cmd/credman/cmd/account/add.go
package account

import (
	"errors"
	"fmt"
	"os"

	"credman/cmd/credman/cmd/types"
	"credman/internal/app/client"
	"credman/internal/domain/vault"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	addUsername string
	addPassword string
	addNTLMHash string
	addType     string
	addHost     string
	addTags     []string
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить учетную запись",
	Long: `Добавляет учетную запись в выбранный домен.

Запись должна содержать хотя бы один секрет: пароль или NTLM-хеш. Если не
передан ни флаг --password, ни --ntlm-hash, пароль будет запрошен скрыто.

Тип local означает локальную учетную запись хоста (укажите --host),
тип domain - доменную.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if app.Vault().SelectedDomain() == nil {
			return fmt.Errorf("сначала выберите домен: credman domain select <имя>")
		}

		// Запрашиваем пароль скрыто, если секрет не передан флагами
		if addPassword == "" && addNTLMHash == "" {
			fmt.Print("Пароль: ")
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			if err != nil {
				return fmt.Errorf("ошибка чтения пароля: %w", err)
			}
			fmt.Println()
			addPassword = string(password)
		}

		acc := vault.Account{
			Username: addUsername,
			Password: addPassword,
			NTLMHash: addNTLMHash,
			Tags:     addTags,
			Type:     vault.AccountType(addType),
			Host:     addHost,
		}

		err := app.Vault().AddAccount(acc)
		switch {
		case errors.Is(err, vault.ErrDuplicateName):
			return fmt.Errorf("учетная запись %q уже существует в этом домене", addUsername)
		case errors.Is(err, vault.ErrValidation):
			return fmt.Errorf("запись не прошла проверку: %w", err)
		case err != nil:
			return fmt.Errorf("ошибка добавления учетной записи: %w", err)
		}

		fmt.Printf("✓ Учетная запись %q добавлена и выбрана\n", addUsername)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addUsername, "username", "u", "", "имя пользователя (обязательно)")
	AddCmd.Flags().StringVarP(&addPassword, "password", "p", "", "пароль")
	AddCmd.Flags().StringVar(&addNTLMHash, "ntlm-hash", "", "NTLM-хеш (NT-часть)")
	AddCmd.Flags().StringVarP(&addType, "type", "t", "domain", "тип учетной записи (domain, local)")
	AddCmd.Flags().StringVar(&addHost, "host", "", "хост локальной учетной записи")
	AddCmd.Flags().StringSliceVar(&addTags, "tag", nil, "тег (можно повторять)")
	_ = AddCmd.MarkFlagRequired("username")
}
