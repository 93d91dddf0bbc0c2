package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/tartampluch/birthday-ics/internal/apperr"
	"github.com/tartampluch/birthday-ics/internal/config"
	"github.com/tartampluch/birthday-ics/internal/engine"
	"github.com/tartampluch/birthday-ics/internal/locale"
	"github.com/urfave/cli/v3"
)

// main is the application entry point.
// It delegates to runMain so that deferred calls run before os.Exit.
func main() {
	os.Exit(runMain(os.Args, os.Stderr))
}

// runMain runs the command and maps its outcome to an exit code.
// Any error is fatal and reported as a single line on stderr.
func runMain(args []string, stderr io.Writer) int {
	// Create a root context that cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := loadDotEnv(); err != nil {
		fmt.Fprintf(stderr, config.MsgFatal, config.AppName, err)
		return config.ExitCodeError
	}

	if err := newCommand(stderr).Run(ctx, args); err != nil {
		slog.Debug(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintf(stderr, config.MsgFatal, config.AppName, err)
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

// loadDotEnv seeds the environment from an optional .env file in the
// working directory. A missing file is not an error.
func loadDotEnv() error {
	err := godotenv.Load(config.DotEnvFile)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", apperr.ErrConfig, config.ErrDotEnvLoad, err)
}

// newCommand declares the CLI surface. Every value can also come from the
// environment, which is itself seeded from an optional .env file.
func newCommand(stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      config.AppName,
		Usage:     config.AppUsage,
		Version:   config.Version,
		ErrWriter: stderr,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(stderr, cmd.Bool(config.FlagDebug))
			logStartupInfo()
			return run(ctx, config.Settings{
				ProductID: cmd.String(config.FlagProductID),
				InFile:    cmd.String(config.FlagInFile),
				OutFile:   cmd.String(config.FlagOutFile),
				Mode:      cmd.String(config.FlagMode),
			})
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    config.FlagProductID,
				Aliases: []string{config.FlagAliasProductID},
				Usage:   config.FlagDescProductID,
				Sources: cli.EnvVars(config.EnvProductID),
			},
			&cli.StringFlag{
				Name:    config.FlagInFile,
				Aliases: []string{config.FlagAliasInFile},
				Usage:   config.FlagDescInFile,
				Sources: cli.EnvVars(config.EnvInFile),
			},
			&cli.StringFlag{
				Name:    config.FlagOutFile,
				Aliases: []string{config.FlagAliasOutFile},
				Usage:   config.FlagDescOutFile,
				Sources: cli.EnvVars(config.EnvOutFile),
			},
			&cli.StringFlag{
				Name:    config.FlagMode,
				Aliases: []string{config.FlagAliasMode},
				Usage:   config.FlagDescMode,
				Value:   config.DefaultMode,
				Sources: cli.EnvVars(config.EnvMode),
			},
			&cli.BoolFlag{
				Name:    config.FlagDebug,
				Usage:   config.FlagDescDebug,
				Sources: cli.EnvVars(config.EnvDebug),
			},
		},
	}
}

// run wires the generator with the localized summary formatter and executes it.
func run(ctx context.Context, settings config.Settings) error {
	// Configuration is checked before any file is touched.
	if err := settings.Validate(); err != nil {
		return err
	}

	translator, err := locale.New(config.DefaultLanguage)
	if err != nil {
		return err
	}
	slog.Debug(config.MsgTranslatorReady,
		config.LogKeyComponent, config.CompI18n,
		config.LogKeyLang, config.DefaultLanguage,
		config.LogKeyLangs, translator.Languages(),
	)

	gen := &engine.Generator{
		Clock: engine.SystemClock,
		FormatSummary: func(name string, age int, withAge bool) string {
			summary, err := translator.Summary(name, age, withAge, engine.OrdinalSuffix(age))
			if err != nil {
				return engine.DefaultSummary(name, age, withAge)
			}
			return summary
		},
	}

	if _, err := gen.Run(ctx, settings); err != nil {
		return err
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return nil
}

// logStartupInfo logs build details useful for debugging.
func logStartupInfo() {
	slog.Debug(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyDate, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
	)
}

// setupLogging configures the default slog logger.
// Output goes to stderr so that a successful run stays silent unless debugging.
func setupLogging(w io.Writer, debugMode bool) {
	level := slog.LevelWarn
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, opts)))
}
