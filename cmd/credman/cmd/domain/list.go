// cmd/credman/cmd/domain/list.go
package domain

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"credman/cmd/credman/cmd/types"
	"credman/internal/app/client"

	"github.com/spf13/cobra"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список доменов",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		domains := app.Vault().Domains()
		if len(domains) == 0 {
			fmt.Println("Доменов пока нет. Создайте первый: credman domain add <имя>")
			return nil
		}

		selected := ""
		if sel := app.Vault().SelectedDomain(); sel != nil {
			selected = sel.Name
		}

		if listFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(domains)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "\tИМЯ\tУЧЕТНЫХ ЗАПИСЕЙ")
		for _, d := range domains {
			marker := " "
			if d.Name == selected {
				marker = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\n", marker, d.Name, len(d.Accounts))
		}
		return w.Flush()
	},
}

func init() {
	ListCmd.Flags().StringVar(&listFormat, "format", "table", "формат вывода (table, json)")
}
