package completion

import "io"

var zshTemplate = `#compdef ascfmt

# Zsh completion for ascfmt
# Install: source <(ascfmt --completion zsh)
# Or: ascfmt --completion zsh > "${fpath[1]}/_ascfmt"

_ascfmt() {
    _arguments -C \
        '--version[Show version information]' \
        '--help[Show help information]' \
        {-w,--write}'[Rewrite files in place]' \
        '--interactive[Ask before rewriting each file]' \
        '--check[List files that need formatting and fail if any do]' \
        '--edits[Print the planned edits instead of the formatted text]' \
        '--json[Print edits as JSON]' \
        '--debug[Log formatter decisions to stderr]' \
        '--mcp[Serve the formatter as MCP tools over stdio]' \
        '--config[Config file to use]:file:_files -g "*.(yaml|yml)"' \
        '--color[Control color output]:color:({{.ColorValues}})' \
        '--completion[Print a shell completion script]:shell:({{.ShellValues}})' \
        '*:recording:_files -g "*.cast"'
}

# Register completion function (works when sourced directly)
if [[ -n ${_comps+1} ]]; then
    compdef _ascfmt ascfmt
fi
`

// GenerateZsh writes the zsh completion script to the writer.
func GenerateZsh(w io.Writer) error {
	return execute(w, "zsh", zshTemplate)
}
