// cmd/credman/cmd/account/list.go
package account

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"credman/cmd/credman/cmd/types"
	"credman/internal/app/client"
	"credman/internal/domain/vault"

	"github.com/spf13/cobra"
)

var (
	listFormat  string
	showSecrets bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список учетных записей выбранного домена",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		dom := app.Vault().SelectedDomain()
		if dom == nil {
			return fmt.Errorf("сначала выберите домен: credman domain select <имя>")
		}

		if len(dom.Accounts) == 0 {
			fmt.Printf("В домене %q пока нет учетных записей\n", dom.Name)
			return nil
		}

		selected := ""
		if sel := app.Vault().SelectedAccount(); sel != nil {
			selected = sel.Username
		}

		switch listFormat {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(dom.Accounts)
		default:
			return printAccountsTable(dom.Accounts, selected)
		}
	},
}

func printAccountsTable(accounts []vault.Account, selected string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tПОЛЬЗОВАТЕЛЬ\tТИП\tСЕКРЕТЫ\tТЕГИ\tХОСТ")
	for _, a := range accounts {
		marker := " "
		if a.Username == selected {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			marker, a.Username, a.Type, secretSummary(a),
			strings.Join(a.Tags, ","), a.Host)
	}
	return w.Flush()
}

func secretSummary(a vault.Account) string {
	var parts []string
	if a.HasPassword() {
		if showSecrets {
			parts = append(parts, "pass="+a.Password)
		} else {
			parts = append(parts, "pass")
		}
	}
	if a.HasNTLMHash() {
		if showSecrets {
			parts = append(parts, "ntlm="+a.NTLMHash)
		} else {
			parts = append(parts, "ntlm")
		}
	}
	return strings.Join(parts, "+")
}

func init() {
	ListCmd.Flags().StringVar(&listFormat, "format", "table", "формат вывода (table, json)")
	ListCmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "показывать секреты в таблице")
}
