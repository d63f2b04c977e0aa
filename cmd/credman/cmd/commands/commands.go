// cmd/credman/cmd/commands/commands.go
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"credman/cmd/credman/cmd/types"
	"credman/internal/app/client"
	"credman/internal/domain/vault"
)

var (
	targetHost string
	searchTerm string
	copyName   string
	outFormat  string
)

var CommandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Сгенерировать команды для выбранной учетной записи",
	Long: `Подставляет данные выбранной учетной записи в каталог шаблонов
(impacket, evil-winrm, xfreerdp и другие) и печатает готовые к копированию
команды. Показываются только шаблоны, для которых у записи есть нужный
секрет: парольные - при заданном пароле, NTLM - при заданном хеше.

Команды только генерируются, но никогда не исполняются.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		rendered, err := app.GenerateCommands(targetHost, searchTerm)
		switch {
		case errors.Is(err, vault.ErrNoDomainSelected):
			return fmt.Errorf("сначала выберите домен: credman domain select <имя>")
		case errors.Is(err, vault.ErrNoAccountSelected):
			return fmt.Errorf("сначала выберите учетную запись: credman account select <имя>")
		case err != nil:
			return err
		}

		if copyName != "" {
			for _, r := range rendered {
				if r.Command.Name == copyName {
					if err := clipboard.WriteAll(r.Text); err != nil {
						return fmt.Errorf("ошибка копирования в буфер обмена: %w", err)
					}
					fmt.Printf("✓ Команда %q скопирована в буфер обмена\n", copyName)
					return nil
				}
			}
			return fmt.Errorf("команда %q не найдена среди доступных", copyName)
		}

		if len(rendered) == 0 {
			fmt.Println("Нет доступных команд: у записи нет подходящего секрета " +
				"или поиск не дал совпадений")
			return nil
		}

		if outFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rendered)
		}

		name := color.New(color.FgGreen, color.Bold)
		for _, r := range rendered {
			name.Printf("# %s\n", r.Command.Name)
			fmt.Println(r.Text)
			fmt.Println()
		}

		return nil
	},
}

func init() {
	CommandsCmd.Flags().StringVar(&targetHost, "target", "", "целевой хост (IP или имя)")
	CommandsCmd.Flags().StringVar(&searchTerm, "search", "", "фильтр по тексту шаблона")
	CommandsCmd.Flags().StringVar(&copyName, "copy", "", "скопировать команду с этим именем в буфер обмена")
	CommandsCmd.Flags().StringVar(&outFormat, "format", "text", "формат вывода (text, json)")
}
