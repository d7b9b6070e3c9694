package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"precip-viewer/config"
	"precip-viewer/internal/repositories"
	"precip-viewer/pkg/observe"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "precip-viewer",
	Short:        "Precipitation forecast viewer for a fixed region",
	SilenceUsage: true,
	RunE:         runView,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the YAML config file")
	rootCmd.AddCommand(viewCmd, printCmd, stubCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// env is what every command needs after bootstrap.
type env struct {
	cnf     *config.Config
	l       *observe.Logger
	closers []func()
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

// bootstrap loads config and builds the logger. The TUI and print commands own the terminal,
// so unless logToStdout is set their logs go to the configured log file.
func bootstrap(logToStdout bool) (*env, error) {
	cnf, err := config.NewConfig(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	e := &env{cnf: cnf}

	var writers []io.Writer
	switch {
	case logToStdout:
		writers = append(writers, os.Stdout)
	case cnf.Log.File != "":
		f, err := os.OpenFile(cnf.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "open log file %s", cnf.Log.File)
		}
		writers = append(writers, f)
		e.closers = append(e.closers, func() { _ = f.Close() })
	default:
		writers = append(writers, io.Discard)
	}

	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		if hook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.DSN, cnf.IsDevelopment()); err != nil {
			e.Close()
			return nil, err
		}
		writers = append(writers, hook)
	}

	e.l = observe.NewZapLogger(cnf.App.Name, cnf.App.Env, cnf.Log.Level, writers...)
	e.closers = append(e.closers, func() {
		if hook != nil {
			hook.Flush()
		}
		_ = e.l.Stop()
	})

	return e, nil
}

func (e *env) providerRepository() *repositories.ProviderRepository {
	client := &http.Client{Timeout: e.cnf.Provider.Timeout}
	return repositories.NewProviderRepository(e.cnf.Provider.BaseURL, e.l, client)
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
