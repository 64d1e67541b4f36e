package djangoapp

// Command help
const (
	MsgRootUse   = "djangoapp-ynh [flags] <path>"
	MsgRootShort = "Package a Django project as a YunoHost application"
	MsgRootLong  = `djangoapp-ynh packages a working Django project into a YunoHost
application bundle.

It copies the bundle template (manifest, lifecycle scripts, web server
configuration) into the destination, then walks the project to collect its
custom settings, URL configuration, embedded applications and requirements.
Questions are asked on the terminal whenever something cannot be found.

Configuration is read from $XDG_CONFIG_HOME/djangoapp-ynh/config.toml and
DJANGOAPP_YNH_* environment variables (use "__" between section and key,
e.g. DJANGOAPP_YNH_INTROSPECT__MODE=scan).`

	MsgManShort       = "Generate man pages"
	MsgGenConfigShort = "Print the default configuration"
	MsgGenConfigLong  = `Print the built-in configuration as TOML.

With --write the defaults are saved as the user config file, ready to edit.
An existing file is never overwritten.`
	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = `To load completions:

Bash:
  $ source <(djangoapp-ynh completion bash)

Zsh:
  $ djangoapp-ynh completion zsh > "${fpath[1]}/_djangoapp-ynh"

Fish:
  $ djangoapp-ynh completion fish | source

PowerShell:
  PS> djangoapp-ynh completion powershell | Out-String | Invoke-Expression
`
)

// Flag descriptions
const (
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDestination = "Build package into this folder (default: the executable's folder)"
	MsgFlagConfig      = "Use this config file instead of the user config"
	MsgFlagManDir      = "Directory the man pages are written to"
	MsgFlagWrite       = "Write the user config file instead of printing"
)

// Run messages
const (
	MsgFatalFormat   = "Error: %v"
	MsgManWritten    = "Man pages written to %s"
	MsgConfigWritten = "Configuration written to %s"
)
