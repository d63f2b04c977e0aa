// cmd/credman/cmd/init.go
package cmd

import (
	"fmt"

	"credman/cmd/credman/cmd/account"
	"credman/cmd/credman/cmd/commands"
	"credman/cmd/credman/cmd/domain"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Инициализировать клиент credman",
	Long: `Команда init выполняет первоначальную настройку клиента:
	1. Создает директорию для хранения данных
	2. Создает локальную базу данных

Секреты хранятся открытым текстом. Держите базу на зашифрованном диске
и не копируйте ее на целевые хосты.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("=== Инициализация credman ===")
		fmt.Println()
		fmt.Printf("Директория данных: %s\n", cfg.ConfigDir)
		fmt.Printf("База данных:       %s\n", cfg.DataPath)
		fmt.Println()
		fmt.Println("✅ Инициализация успешно завершена!")
		fmt.Println()
		fmt.Println("Что дальше:")
		fmt.Println("1. Создайте домен: credman domain add corp.local")
		fmt.Println("2. Добавьте учетную запись: credman account add -u alice")
		fmt.Println("3. Сгенерируйте команды: credman commands --target 10.0.0.5")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	// Добавляем команды работы с доменами
	rootCmd.AddCommand(domain.DomainCmd)
	domain.DomainCmd.AddCommand(domain.AddCmd)
	domain.DomainCmd.AddCommand(domain.ListCmd)
	domain.DomainCmd.AddCommand(domain.SelectCmd)
	domain.DomainCmd.AddCommand(domain.DeleteCmd)
	domain.DomainCmd.AddCommand(domain.ExportCmd)
	domain.DomainCmd.AddCommand(domain.ImportCmd)

	// Добавляем команды работы с учетными записями
	rootCmd.AddCommand(account.AccountCmd)
	account.AccountCmd.AddCommand(account.AddCmd)
	account.AccountCmd.AddCommand(account.ListCmd)
	account.AccountCmd.AddCommand(account.SelectCmd)
	account.AccountCmd.AddCommand(account.UpdateCmd)
	account.AccountCmd.AddCommand(account.DeleteCmd)
	account.AccountCmd.AddCommand(account.TagCmd)

	// Генерация команд
	rootCmd.AddCommand(commands.CommandsCmd)
}
