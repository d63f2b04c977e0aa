package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credman/internal/domain/vault"
)

// parseShellTokens - минимальный разбор строки на shell-токены: одинарные
// и двойные кавычки, конкатенация примыкающих кусков. Достаточно, чтобы
// проверить, что экранированный секрет восстанавливается без потерь.
func parseShellTokens(t *testing.T, s string) []string {
	t.Helper()
	var tokens []string
	var cur strings.Builder
	inToken := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'':
			inToken = true
			end := strings.IndexByte(s[i+1:], '\'')
			require.GreaterOrEqual(t, end, 0, "незакрытая одинарная кавычка в %q", s)
			cur.WriteString(s[i+1 : i+1+end])
			i += end + 1
		case c == '"':
			inToken = true
			end := strings.IndexByte(s[i+1:], '"')
			require.GreaterOrEqual(t, end, 0, "незакрытая двойная кавычка в %q", s)
			cur.WriteString(s[i+1 : i+1+end])
			i += end + 1
		case c == ' ':
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			inToken = true
			cur.WriteByte(c)
		}
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

func TestGenerate_Scenario(t *testing.T) {
	// Домен corp.local, запись alice с паролем, цель 10.0.0.5, пустой поиск
	acc := vault.Account{
		Username: "alice",
		Password: "Summer2024!",
		Type:     vault.AccountTypeDomain,
	}

	rendered := Generate(acc, "corp.local", "10.0.0.5", "")

	// Все парольные шаблоны доменного каталога, ни одного NTLM
	var wantCount int
	for _, c := range DomainCommands {
		if c.AuthType == AuthTypePassword {
			wantCount++
		}
	}
	require.Len(t, rendered, wantCount)

	for _, r := range rendered {
		assert.Equal(t, AuthTypePassword, r.Command.AuthType)
		assert.Contains(t, r.Text, "alice")
		assert.Contains(t, r.Text, "10.0.0.5")
		assert.NotContains(t, r.Text, "{username}")
		assert.NotContains(t, r.Text, "{password}")
		assert.NotContains(t, r.Text, "{domain}")
		assert.NotContains(t, r.Text, "{targetHost}")
		assert.NotContains(t, r.Text, "{ntlmHash}")
	}

	assert.Equal(t,
		"impacket-wmiexec 'corp.local'/'alice':'Summer2024!'@'10.0.0.5'",
		rendered[0].Text)
}

func TestGenerate_PasswordOnlyAccount(t *testing.T) {
	acc := vault.Account{
		Username: "alice",
		Password: "P",
		Type:     vault.AccountTypeDomain,
	}

	rendered := Generate(acc, "corp.local", "", "")
	require.NotEmpty(t, rendered)

	// Шаблоны без нужного секрета молча отбрасываются, а не показываются
	// отключенными
	for _, r := range rendered {
		assert.Equal(t, AuthTypePassword, r.Command.AuthType)
		assert.NotContains(t, r.Text, "{ntlmHash}")
	}
}

func TestGenerate_HashOnlyAccount(t *testing.T) {
	acc := vault.Account{
		Username: "svc_backup",
		NTLMHash: "8846f7eaee8fb117ad06bdd830b7586c",
		Type:     vault.AccountTypeDomain,
	}

	rendered := Generate(acc, "corp.local", "10.0.0.5", "")
	require.NotEmpty(t, rendered)
	for _, r := range rendered {
		assert.Equal(t, AuthTypeNTLMHash, r.Command.AuthType)
		assert.Contains(t, r.Text, "8846f7eaee8fb117ad06bdd830b7586c")
	}
}

func TestGenerate_NoSecrets(t *testing.T) {
	acc := vault.Account{Username: "alice", Type: vault.AccountTypeDomain}
	assert.Empty(t, Generate(acc, "corp.local", "10.0.0.5", ""))
}

func TestGenerate_LocalCatalog(t *testing.T) {
	acc := vault.Account{
		Username: "administrator",
		Password: "P@ssw0rd",
		Type:     vault.AccountTypeLocal,
		Host:     "ws01",
	}

	rendered := Generate(acc, "corp.local", "10.0.0.5", "")
	require.NotEmpty(t, rendered)

	// Локальный каталог не содержит {domain} и не подставляет имя домена
	for _, r := range rendered {
		assert.True(t, strings.HasPrefix(r.Command.Name, "local-"))
		assert.NotContains(t, r.Text, "corp.local")
	}
}

func TestGenerate_SearchFilter(t *testing.T) {
	acc := vault.Account{
		Username: "alice",
		Password: "P",
		NTLMHash: "8846f7eaee8fb117ad06bdd830b7586c",
		Type:     vault.AccountTypeDomain,
	}

	tests := []struct {
		name   string
		search string
		want   int
	}{
		{name: "empty search matches everything", search: "", want: len(DomainCommands)},
		{name: "case-insensitive match on raw template", search: "WMIEXEC", want: 2},
		{name: "no matches", search: "mimikatz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Generate(acc, "corp.local", "", tt.search), tt.want)
		})
	}
}

func TestGenerate_PreservesCatalogOrder(t *testing.T) {
	acc := vault.Account{
		Username: "alice",
		Password: "P",
		NTLMHash: "8846f7eaee8fb117ad06bdd830b7586c",
		Type:     vault.AccountTypeDomain,
	}

	rendered := Generate(acc, "corp.local", "", "")
	require.Len(t, rendered, len(DomainCommands))
	for i, r := range rendered {
		assert.Equal(t, DomainCommands[i].Name, r.Command.Name)
	}
}

// Секрет с одинарной кавычкой не должен разрывать однокавычечный аргумент:
// после разбора строки как shell-токенов исходный секрет восстанавливается.
func TestGenerate_ShellEscapingRoundTrip(t *testing.T) {
	secrets := []string{
		"p'wd",
		"'leading",
		"trailing'",
		"mul'ti'ple",
		"it's a 'test'",
	}

	for _, secret := range secrets {
		t.Run(secret, func(t *testing.T) {
			acc := vault.Account{
				Username: "alice",
				Password: secret,
				Type:     vault.AccountTypeDomain,
			}

			rendered := Generate(acc, "corp.local", "10.0.0.5", "evil-winrm")
			require.Len(t, rendered, 1)

			tokens := parseShellTokens(t, rendered[0].Text)
			// evil-winrm -u 'alice' -p '<секрет>' -i '10.0.0.5'
			require.Len(t, tokens, 7)
			assert.Equal(t, secret, tokens[4])
		})
	}
}

func TestGenerate_EscapesEveryField(t *testing.T) {
	acc := vault.Account{
		Username: "o'brien",
		Password: "p'wd",
		Type:     vault.AccountTypeDomain,
	}

	rendered := Generate(acc, "corp's", "10.0.0.5's", "evil-winrm")
	require.Len(t, rendered, 1)

	tokens := parseShellTokens(t, rendered[0].Text)
	require.Len(t, tokens, 7)
	assert.Equal(t, "o'brien", tokens[2])
	assert.Equal(t, "p'wd", tokens[4])
	assert.Equal(t, "10.0.0.5's", tokens[6])
}

func TestGenerate_UnknownPlaceholderPassesThrough(t *testing.T) {
	acc := vault.Account{
		Username: "alice",
		Password: "P",
		Type:     vault.AccountTypeDomain,
	}

	// Плейсхолдеры вне пяти известных имен проходят насквозь буквально
	text := render("tool --user '{username}' --opt '{unknownToken}'", acc, "corp.local", "")
	assert.Equal(t, "tool --user 'alice' --opt '{unknownToken}'", text)
}

func TestGenerate_EmptyTargetHost(t *testing.T) {
	acc := vault.Account{
		Username: "alice",
		Password: "P",
		Type:     vault.AccountTypeDomain,
	}

	rendered := Generate(acc, "corp.local", "", "evil-winrm")
	require.Len(t, rendered, 1)
	// {targetHost} подставляется буквально, включая пустую строку
	assert.Equal(t, "evil-winrm -u 'alice' -p 'P' -i ''", rendered[0].Text)
}
