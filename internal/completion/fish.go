package completion

import "io"

var fishTemplate = `# Fish completion for ascfmt
# Install: ascfmt --completion fish | source
# Or: ascfmt --completion fish > ~/.config/fish/completions/ascfmt.fish

# Boolean flags
complete -c ascfmt -l version -d 'Show version information'
complete -c ascfmt -l help -d 'Show help information'
complete -c ascfmt -s w -l write -d 'Rewrite files in place'
complete -c ascfmt -l interactive -d 'Ask before rewriting each file'
complete -c ascfmt -l check -d 'List files that need formatting and fail if any do'
complete -c ascfmt -l edits -d 'Print the planned edits instead of the formatted text'
complete -c ascfmt -l json -d 'Print edits as JSON'
complete -c ascfmt -l debug -d 'Log formatter decisions to stderr'
complete -c ascfmt -l mcp -d 'Serve the formatter as MCP tools over stdio'

# Flags with values
complete -c ascfmt -l config -r -F -d 'Config file to use'
complete -c ascfmt -l color -r -f -a '{{.ColorValues}}' -d 'Control color output'
complete -c ascfmt -l completion -r -f -a '{{.ShellValues}}' -d 'Print a shell completion script'

# Recordings
complete -c ascfmt -k -a '(__fish_complete_suffix .cast)'
`

// GenerateFish writes the fish completion script to the writer.
func GenerateFish(w io.Writer) error {
	return execute(w, "fish", fishTemplate)
}
