// Command cookiesign signs, verifies and inspects cookies from the shell.
//
//	cookiesign sign -name session -value 42 -max-age 3600
//	cookiesign verify -name session -cookie "session=42.Zm9v..."
//	cookiesign parse -cookie "a=1; b=2"
//	cookiesign jar -id 6f1c... -set "theme=dark; Max-Age=60"
//
// Secrets and default attributes are read from COOKIE_* environment
// variables (and an optional .env file), the Redis jar from REDIS_*.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/cookiekit/pkg/config"
	"github.com/dmitrymomot/cookiekit/pkg/cookie"
	"github.com/dmitrymomot/cookiekit/pkg/logger"
	rdb "github.com/dmitrymomot/cookiekit/pkg/redis"
)

type cliConfig struct {
	Env       string `env:"APP_ENV" envDefault:"production"`
	LogFormat string `env:"LOG_FORMAT" envDefault:""`
	Debug     bool   `env:"DEBUG" envDefault:"false"`
}

// errInvalid marks a failed verification; it exits with status 1 without a log record.
var errInvalid = errors.New("cookiesign.invalid")

type app struct {
	cookies cookie.Config
	redis   rdb.Config
	log     *slog.Logger
	out     io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli cliConfig
	config.MustLoad(&cli)

	opts := []logger.Option{logger.WithEnvironment(cli.Env, "cookiesign")}
	if cli.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cli.LogFormat)))
	}
	if cli.Debug {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	log := logger.New(opts...)

	a := &app{log: log, out: os.Stdout}
	if err := config.Load(&a.cookies); err != nil {
		log.Error("failed to load cookie config", logger.Error(err))
		os.Exit(2)
	}
	if err := config.Load(&a.redis); err != nil {
		log.Error("failed to load redis config", logger.Error(err))
		os.Exit(2)
	}

	if err := a.run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, errInvalid) {
			log.Error("command failed", logger.Error(err))
		}
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "sign":
		return a.sign(rest)
	case "verify":
		return a.verify(rest)
	case "parse":
		return a.parse(rest)
	case "jar":
		return a.jar(ctx, rest)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

var errUsage = errors.New("usage: cookiesign <sign|verify|parse|jar> [flags]")
