package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/minigrep/internal"
	"github.com/starford/minigrep/internal/search"
	pkgconfig "github.com/starford/minigrep/pkg/config"
)

var version = "dev"

const defaultConfigFile = "minigrep.yaml"

var errModeConflict = errors.New("--watch, --serve and --mcp are mutually exclusive")

const usageText = `Usage: minigrep [options] [--] <query> <file>

Print every line of <file> that contains <query>.

Options:
  -i, --case-insensitive  Ignore case when matching (overrides CASE_SENSITIVE)
  -w, --watch             Search again whenever the file changes
      --serve             Serve GET /api/search over HTTP instead of searching once
      --mcp               Serve the search_file MCP tool over stdio
      --config path       Path to config file (default: minigrep.yaml, env MINIGREP_CONFIG)
      --help              Show this help
      --version           Print the version

Use -- before a query that starts with "-".
`

func newCommand(stdin io.Reader, stdout, stderr io.Writer, lookup search.LookupFunc) *cli.Command {
	return &cli.Command{
		Name:      "minigrep",
		Usage:     "Print every line of a file that contains a query",
		ArgsUsage: "<query> <file>",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		// stdout carries matches only and a query may look like -h or -v,
		// so the built-in help and version flags are replaced below.
		HideHelp:    true,
		HideVersion: true,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return err
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "case-insensitive",
				Aliases: []string{"i"},
				Usage:   "Ignore case when matching (overrides CASE_SENSITIVE)",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Search again whenever the file changes",
			},
			&cli.BoolFlag{
				Name:  "serve",
				Usage: "Serve GET /api/search over HTTP instead of searching once",
			},
			&cli.BoolFlag{
				Name:  "mcp",
				Usage: "Serve the search_file MCP tool over stdio",
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "Path to config file",
				DefaultText: defaultConfigFile,
				Value:       defaultConfigFile,
				Sources:     cli.EnvVars("MINIGREP_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "help",
				Usage: "Show help",
			},
			&cli.BoolFlag{
				Name:  "version",
				Usage: "Print the version",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			switch {
			case cmd.Bool("help"):
				_, err := fmt.Fprint(stdout, usageText)
				return err
			case cmd.Bool("version"):
				_, err := fmt.Fprintf(stdout, "minigrep version %s\n", version)
				return err
			}
			return run(ctx, cmd, stdin, stdout, stderr, lookup)
		},
	}
}

func run(ctx context.Context, cmd *cli.Command, stdin io.Reader, stdout, stderr io.Writer, lookup search.LookupFunc) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if cmd.IsSet("config") {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	} else if _, err := pkgconfig.LoadIfExists(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	mode, err := modeFromFlags(cmd)
	if err != nil {
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithMode(mode),
		internal.WithArgs(cmd.Args().Slice(), cmd.Bool("case-insensitive")),
		internal.WithLookupEnv(lookup),
		internal.WithIO(stdin, stdout, stderr),
		internal.WithVersion(version),
	}

	// Errors pass through unwrapped: the message is what the user sees.
	return internal.Run(ctx, opts...)
}

func modeFromFlags(cmd *cli.Command) (internal.Mode, error) {
	mode := internal.ModeSearch
	set := 0
	if cmd.Bool("watch") {
		mode = internal.ModeWatch
		set++
	}
	if cmd.Bool("serve") {
		mode = internal.ModeServe
		set++
	}
	if cmd.Bool("mcp") {
		mode = internal.ModeMCP
		set++
	}
	if set > 1 {
		return 0, errModeConflict
	}
	return mode, nil
}

// execute runs the command and returns the process exit code. A failure
// is reported as a single line on stderr.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, lookup search.LookupFunc) int {
	cmd := newCommand(stdin, stdout, stderr, lookup)
	if err := cmd.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr, os.LookupEnv))
}
