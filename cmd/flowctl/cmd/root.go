// Package cmd implements the flowctl command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/maxflow/flow"
	"github.com/katalvlaran/maxflow/observe"
)

// Configuration keys. Each can come from a flag, a FLOWCTL_* environment
// variable (dots and dashes become underscores) or the config file.
const (
	keyLogLevel    = "log.level"
	keyLogFile     = "log.file"
	keyLogMaxSize  = "log.max-size"
	keyLogBackups  = "log.max-backups"
	keyTrace       = "trace"
	keyMetricsFile = "metrics.file"
	keyWorkers     = "batch.workers"
	keyMaxRounds   = "max-rounds"
)

// app carries the state shared by every command of one invocation.
type app struct {
	configFile string

	v       *viper.Viper
	log     *log.Logger
	logFile *lumberjack.Logger
	reg     *prometheus.Registry
	metrics *observe.Metrics
}

// Execute runs flowctl with os.Args and exits non-zero on failure.
// SIGINT and SIGTERM cancel the running computation.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: log.New()}

	root := &cobra.Command{
		Use:           "flowctl",
		Short:         "flowctl solves max-flow and bipartite matching problems",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "f", "", "config file (default is $HOME/.flowctl.yaml)")
	pf.String("log-level", "warn", "log level: trace, debug, info, warn, error")
	pf.String("log-file", "", "also write logs to this file, rotated by size")
	pf.Bool("trace", false, "log every augmentation round")
	pf.String("metrics-file", "", "write Prometheus metrics to this file on exit")
	pf.Int("max-rounds", 0, "abort after this many augmentation rounds (0 = no limit)")

	for key, name := range map[string]string{
		keyLogLevel:    "log-level",
		keyLogFile:     "log-file",
		keyTrace:       "trace",
		keyMetricsFile: "metrics-file",
		keyMaxRounds:   "max-rounds",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(name))
	}
	a.v.SetDefault(keyLogMaxSize, 100)
	a.v.SetDefault(keyLogBackups, 7)

	root.AddCommand(newMaxFlowCmd(a), newMatchCmd(a), newBatchCmd(a))

	return root
}

// init reads configuration, then sets up logging and metrics.
func (a *app) init(cmd *cobra.Command) error {
	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
	} else {
		a.v.SetConfigName(".flowctl")
		a.v.AddConfigPath("$HOME")
	}
	a.v.SetEnvPrefix("flowctl")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	level, err := log.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	a.log.SetLevel(level)
	if a.v.GetBool(keyTrace) && !a.log.IsLevelEnabled(log.InfoLevel) {
		a.log.SetLevel(log.InfoLevel)
	}
	a.log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	var out io.Writer = cmd.ErrOrStderr()
	if path := a.v.GetString(keyLogFile); path != "" {
		a.logFile = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    a.v.GetInt(keyLogMaxSize), // MB
			MaxBackups: a.v.GetInt(keyLogBackups),
			Compress:   true,
		}
		out = io.MultiWriter(out, a.logFile)
	}
	a.log.SetOutput(out)

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("file", used).Debug("read config")
	}

	a.reg = prometheus.NewRegistry()
	if a.metrics, err = observe.NewMetrics(a.reg); err != nil {
		return err
	}

	return nil
}

// runE wraps a command body so that close runs whether or not it fails.
func (a *app) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if cerr := a.close(); err == nil {
				err = cerr
			}
		}()

		return fn(cmd, args)
	}
}

// close writes the metrics file, if any, and releases the log file.
func (a *app) close() error {
	var err error
	if path := a.v.GetString(keyMetricsFile); path != "" && a.reg != nil {
		if err = prometheus.WriteToTextfile(path, a.reg); err != nil {
			a.log.WithFields(log.Fields{"file": path, "err": err}).Error("writing metrics")
		}
	}
	if a.logFile != nil {
		if cerr := a.logFile.Close(); err == nil {
			err = cerr
		}
	}

	return err
}

// flowOptions returns engine options for one problem: metrics always,
// plus a log observer when tracing.
func (a *app) flowOptions(name string) *flow.FlowOptions {
	var trace flow.Observer
	if a.v.GetBool(keyTrace) {
		trace = observe.NewLogObserver(a.log.WithField("problem", name)).AtLevel(log.InfoLevel)
	}

	return &flow.FlowOptions{
		Observer:  observe.Multi(a.metrics, trace),
		MaxRounds: a.v.GetInt(keyMaxRounds),
	}
}
