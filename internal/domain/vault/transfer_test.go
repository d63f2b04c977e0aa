package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportJSON_RoundTrip(t *testing.T) {
	original := Domain{
		Name: "corp.local",
		Accounts: []Account{
			{
				Username: "alice",
				Password: "Summer2024!",
				Tags:     []string{"DA", "DA", "reused"},
				Type:     AccountTypeDomain,
			},
			{
				Username: "svc_backup",
				NTLMHash: "aad3b435b51404eeaad3b435b51404ee",
				Type:     AccountTypeDomain,
			},
			{
				Username: "administrator",
				Password: "p'wd\"with$pecials",
				Type:     AccountTypeLocal,
				Host:     "ws01.corp.local",
			},
		},
	}

	data, err := ExportJSON(original)
	require.NoError(t, err)

	parsed, err := ParseDomain(data)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestExportJSON_PrettyPrinted(t *testing.T) {
	data, err := ExportJSON(Domain{Name: "corp.local", Accounts: []Account{}})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"corp.local\",\n  \"accounts\": []\n}", string(data))
}

func TestExportFileNames(t *testing.T) {
	d := Domain{Name: "corp.local"}
	assert.Equal(t, "corp.local.json", ExportFileName(d))
	assert.Equal(t, "corp.local_users.txt", UsernamesFileName(d))
}

func TestExportUsernames(t *testing.T) {
	d := Domain{
		Name: "corp.local",
		Accounts: []Account{
			{Username: "alice", Type: AccountTypeDomain},
			{Username: "bob", Type: AccountTypeDomain},
			{Username: "svc_backup", Type: AccountTypeDomain},
		},
	}

	// По одному имени на строку, в порядке списка, без хвостовых метаданных
	assert.Equal(t, "alice\nbob\nsvc_backup", string(ExportUsernames(d)))
	assert.Equal(t, "", string(ExportUsernames(Domain{Name: "empty"})))
}

func TestParseDomain(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "valid domain",
			input: `{"name":"corp.local","accounts":[{"username":"alice","type":"domain","password":"x"}]}`,
		},
		{
			name:  "valid empty accounts",
			input: `{"name":"corp.local","accounts":[]}`,
		},
		{
			name:    "not json at all",
			input:   `{"name": "corp`,
			wantErr: ErrParse,
		},
		{
			name:    "name is not a string",
			input:   `{"name":42,"accounts":[]}`,
			wantErr: ErrValidation,
		},
		{
			name:    "name is null",
			input:   `{"name":null,"accounts":[]}`,
			wantErr: ErrValidation,
		},
		{
			name:    "missing accounts",
			input:   `{"name":"corp.local"}`,
			wantErr: ErrValidation,
		},
		{
			name:    "accounts is not a list",
			input:   `{"name":"corp.local","accounts":{"alice":{}}}`,
			wantErr: ErrValidation,
		},
		{
			name:    "account without username",
			input:   `{"name":"corp.local","accounts":[{"type":"domain"}]}`,
			wantErr: ErrValidation,
		},
		{
			name:    "account with numeric username",
			input:   `{"name":"corp.local","accounts":[{"username":7,"type":"domain"}]}`,
			wantErr: ErrValidation,
		},
		{
			name:    "account with unknown type",
			input:   `{"name":"corp.local","accounts":[{"username":"alice","type":"cloud"}]}`,
			wantErr: ErrValidation,
		},
		{
			name:    "top level is an array",
			input:   `[1,2,3]`,
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDomain([]byte(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "corp.local", d.Name)
		})
	}
}
