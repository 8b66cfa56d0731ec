package completion

import "io"

var bashTemplate = `# Bash completion for ascfmt
# Install: source <(ascfmt --completion bash)
# Or: ascfmt --completion bash > /etc/bash_completion.d/ascfmt

_ascfmt_completions() {
    local cur prev words cword
    _init_completion || return

    local flags="--version --help -w --write --interactive --check --edits --json --debug --mcp --config --color --completion"

    case "${prev}" in
        --color)
            COMPREPLY=($(compgen -W "{{.ColorValues}}" -- "${cur}"))
            return 0
            ;;
        --completion)
            COMPREPLY=($(compgen -W "{{.ShellValues}}" -- "${cur}"))
            return 0
            ;;
        --config)
            _filedir '@(yaml|yml)'
            return 0
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=($(compgen -W "${flags}" -- "${cur}"))
        return 0
    fi

    # recordings and directories holding them
    _filedir cast
}

complete -F _ascfmt_completions ascfmt
`

// GenerateBash writes the bash completion script to the writer.
func GenerateBash(w io.Writer) error {
	return execute(w, "bash", bashTemplate)
}
