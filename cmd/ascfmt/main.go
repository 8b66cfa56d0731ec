package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/kamilmatejuk/ascfmt/internal/color"
	"github.com/kamilmatejuk/ascfmt/internal/completion"
	"github.com/kamilmatejuk/ascfmt/internal/config"
	"github.com/kamilmatejuk/ascfmt/internal/confirm"
	"github.com/kamilmatejuk/ascfmt/internal/discovery"
	"github.com/kamilmatejuk/ascfmt/internal/edit"
	"github.com/kamilmatejuk/ascfmt/internal/formatter"
	"github.com/kamilmatejuk/ascfmt/internal/mcpserver"
	"github.com/kamilmatejuk/ascfmt/internal/report"
)

const version = "0.1.0"

// Replaced in tests.
var (
	stdin       io.Reader = os.Stdin
	newPrompter           = func() confirm.Prompter { return confirm.FormPrompter{} }
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// boolFlags never take a value from the next argument.
var boolFlags = map[string]bool{
	"version":     true,
	"help":        true,
	"h":           true,
	"w":           true,
	"write":       true,
	"interactive": true,
	"check":       true,
	"edits":       true,
	"json":        true,
	"debug":       true,
	"mcp":         true,
}

// separateFlags separates flag arguments from positional arguments.
// This allows flags to appear anywhere in the argument list, not just before positional args.
// A lone "-" is positional (standard input) and everything after "--" is positional.
// Returns (flagArgs, positionalArgs).
func separateFlags(args []string) ([]string, []string) {
	var flagArgs []string
	var posArgs []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			posArgs = append(posArgs, args[i+1:]...)
			break
		}
		if arg == discovery.Stdin || !strings.HasPrefix(arg, "-") {
			posArgs = append(posArgs, arg)
			continue
		}

		flagArgs = append(flagArgs, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if !boolFlags[name] && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}

	return flagArgs, posArgs
}

type options struct {
	write       bool
	interactive bool
	check       bool
	edits       bool
	json        bool
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		opts        options
		showVersion = flags.Bool("version", false, "Show version information")
		showHelp    = flags.Bool("help", false, "Show help information")
		debug       = flags.Bool("debug", false, "Log formatter decisions to stderr")
		serveMCP    = flags.Bool("mcp", false, "Serve the formatter as MCP tools over stdio")
		configPath  = flags.String("config", "", "Config file (default: $XDG_CONFIG_HOME/ascfmt/config.yaml)")
		colorFlag   = flags.String("color", "", "Control color output (auto, always, never)")
		shell       = flags.String("completion", "", "Print a shell completion script (bash, zsh, fish)")
	)
	flags.BoolVar(&opts.write, "write", false, "Rewrite files in place")
	flags.BoolVar(&opts.write, "w", false, "Rewrite files in place")
	flags.BoolVar(&opts.interactive, "interactive", false, "Ask before rewriting each file (implies --write)")
	flags.BoolVar(&opts.check, "check", false, "List files that need formatting and fail if any do")
	flags.BoolVar(&opts.edits, "edits", false, "Print the planned edits instead of the formatted text")
	flags.BoolVar(&opts.json, "json", false, "Print edits as JSON (with --edits)")

	// Separate flags from positional arguments to support flags in any position
	flagArgs, posArgs := separateFlags(args[1:])

	if err := flags.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printHelp(stdout, color.Auto)
			return nil
		}
		return err
	}

	if *showVersion {
		_, _ = fmt.Fprintf(stdout, "ascfmt version %s\n", version)
		return nil
	}

	if *shell != "" {
		return completion.Generate(stdout, *shell)
	}

	cfg, err := loadConfig(*configPath, stderr)
	if err != nil {
		return err
	}

	mode := cfg.ColorMode()
	if *colorFlag != "" {
		if mode, err = color.ParseMode(*colorFlag); err != nil {
			return err
		}
	}
	mode.ConfigureColorProfile()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	form := formatter.New(
		formatter.WithDefaults(cfg.HeaderDefaults()),
		formatter.WithLogger(logger),
	)

	if *serveMCP {
		logger.Debug("serving MCP tools on stdio")
		return mcpserver.Run(form, version)
	}

	if *showHelp || len(posArgs) == 0 {
		printHelp(stdout, mode)
		return nil
	}

	if opts.interactive {
		opts.write = true
	}
	if opts.check && (opts.write || opts.edits) {
		return errors.New("--check cannot be combined with --write or --edits")
	}
	if opts.write && opts.edits {
		return errors.New("--write cannot be combined with --edits")
	}
	if opts.json && !opts.edits {
		return errors.New("--json requires --edits")
	}

	files, err := discovery.New().Expand(posArgs)
	if err != nil {
		return err
	}
	logger.Debug("expanded arguments", "files", len(files))

	return process(form, files, opts, mode, stdout, stderr)
}

// loadConfig reads the config file named by --config, or the default one
// when it exists. Warnings go to stderr.
func loadConfig(path string, stderr io.Writer) (config.Config, error) {
	var (
		result *config.LoadResult
		err    error
	)
	if path != "" {
		if _, statErr := os.Stat(path); statErr != nil {
			return config.Config{}, fmt.Errorf("cannot read config: %w", statErr)
		}
		result, err = config.LoadFrom(path)
	} else {
		result, err = config.Load()
	}
	if err != nil {
		return config.Config{}, err
	}
	for _, w := range result.Warnings {
		_, _ = fmt.Fprintf(stderr, "Warning: %s\n", w)
	}
	return result.Config, nil
}

// fileEdits is one entry of the --edits --json output
type fileEdits struct {
	Path    string           `json:"path"`
	Version int              `json:"version"`
	Edits   []edit.Operation `json:"edits"`
	Notice  string           `json:"notice,omitempty"`
}

func process(form *formatter.Formatter, files []discovery.File, opts options, mode color.Mode, stdout, stderr io.Writer) error {
	// Status lines share stdout only when stdout carries no file content.
	// Standard input is never rewritten in place, so -w prints it.
	readsStdin := slices.ContainsFunc(files, func(f discovery.File) bool { return f.Path == discovery.Stdin })
	statusOut := stderr
	if (opts.write && !readsStdin) || opts.check || (opts.edits && !opts.json) {
		statusOut = stdout
	}
	rep := report.New(report.Config{Output: statusOut, Color: mode})

	var session *confirm.Session
	if opts.interactive {
		session = confirm.NewSession(newPrompter())
	}

	var collected []fileEdits

	for _, file := range files {
		text, err := readFile(file.Path)
		if err != nil {
			return err
		}
		name := discovery.RelativePath(file.Path)

		res, formatted, err := form.Apply(text)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		switch {
		case opts.edits && opts.json:
			entry := fileEdits{Path: name, Version: res.Version, Edits: res.Edits}
			if entry.Edits == nil {
				entry.Edits = []edit.Operation{}
			}
			if res.Notice != nil {
				entry.Notice = res.Notice.Error()
			}
			collected = append(collected, entry)

		case res.Notice != nil:
			rep.Skipped(name, res.Notice)
			if !opts.write && !opts.check && !opts.edits {
				_, _ = io.WriteString(stdout, text)
			}

		case opts.edits:
			rep.Edits(name, res.Edits)

		case opts.check:
			if res.Changed() {
				rep.NeedsFormatting(name)
			} else {
				rep.Unchanged(name)
			}

		case opts.write && file.Path != discovery.Stdin:
			if !res.Changed() {
				rep.Unchanged(name)
				continue
			}
			if session != nil {
				ok, err := session.Approve(confirm.Question{Path: name, Edits: len(res.Edits)})
				if errors.Is(err, confirm.ErrQuit) {
					rep.Summary()
					return nil
				}
				if err != nil {
					return err
				}
				if !ok {
					rep.Skipped(name, nil)
					continue
				}
			}
			if err := writeFile(file.Path, formatted); err != nil {
				return err
			}
			rep.Formatted(name)

		default:
			_, _ = io.WriteString(stdout, formatted)
		}
	}

	if opts.edits && opts.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if collected == nil {
			collected = []fileEdits{}
		}
		return enc.Encode(collected)
	}

	if opts.write || opts.check {
		rep.Summary()
	}
	if opts.check && rep.Pending() > 0 {
		return fmt.Errorf("%d file(s) need formatting", rep.Pending())
	}
	return nil
}

func readFile(path string) (string, error) {
	if path == discovery.Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// writeFile replaces path's content, keeping its permissions.
func writeFile(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
