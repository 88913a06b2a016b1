// Package main provides the hookcfg CLI application.
package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/cicd-ai-toolkit/hookcfg/pkg/config"
	herrors "github.com/cicd-ai-toolkit/hookcfg/pkg/errors"
	"github.com/cicd-ai-toolkit/hookcfg/pkg/observability"
	"github.com/cicd-ai-toolkit/hookcfg/pkg/precommit"
	"github.com/cicd-ai-toolkit/hookcfg/pkg/version"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	ExitSuccess     = 0 // Document(s) valid
	ExitInvalid     = 1 // Document failed to parse or validate, or is not formatted
	ExitConfigError = 2 // Settings, flags or I/O error
)

// exitError carries a specific exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// rootFlags holds the persistent flags shared by every command
type rootFlags struct {
	configPath string
	root       string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "hookcfg",
		Short: "Pre-commit configuration checker",
		Long: `hookcfg - validate, inspect and normalize pre-commit configuration.

hookcfg reads .pre-commit-config.yaml documents, checks that every tool
entry pins a repository and revision and declares known hooks, and reports
problems with enough location to fix them before any hook runs.`,
		Version:       version.FullString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to hookcfg settings file (default: $HOME/.hookcfg/config.yaml, then ./.hookcfg.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.root, "root", "", "Project root used to resolve documents and manifests (default: nearest directory holding .pre-commit-config.yaml or .hookcfg.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newValidateCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newFmtCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func run(args []string) int {
	return execute(args, nil, nil)
}

// execute runs the CLI and returns the process exit code. Nil writers keep
// cobra's defaults.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	if stdout != nil {
		rootCmd.SetOut(stdout)
	}
	if stderr != nil {
		rootCmd.SetErr(stderr)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return exitCode(err)
	}
	return ExitSuccess
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// Untyped errors are cobra flag and usage errors.
	if !herrors.ShouldBlock(err) || herrors.IsType(err, herrors.ErrConfig) {
		return ExitConfigError
	}
	return ExitInvalid
}

// session is the resolved settings and logger for one command invocation.
type session struct {
	cfg  *config.Config
	log  observability.Logger
	root string
}

func (o *rootFlags) session(cmd *cobra.Command) (*session, error) {
	root := o.root
	if root == "" {
		detected, err := config.DetectProjectRoot()
		if err != nil {
			return nil, herrors.ConfigError("failed to detect project root", err)
		}
		root = detected
	}

	loader := config.NewLoader().WithProjectRoot(root)

	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = loader.LoadFromPath(o.configPath)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		return nil, herrors.ConfigError("failed to load settings", err)
	}

	level := cfg.Global.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}

	log := observability.NewLoggerWithWriter(cmd.ErrOrStderr(), level).
		With(observability.String("cmd", cmd.Name()))
	log.Debug("settings loaded",
		observability.String("root", root),
		observability.String("config_file", cfg.Check.ConfigFile),
		observability.Bool("strict_hook_ids", cfg.Check.Strict()),
	)
	for key, value := range config.GetEnvConfig() {
		log.Debug("environment override", observability.String("key", key), observability.String("value", value))
	}

	return &session{cfg: cfg, log: log, root: root}, nil
}

// documentPaths returns the documents named on the command line, or the
// configured default document under the project root.
func (s *session) documentPaths(args []string) []string {
	if len(args) > 0 {
		return args
	}
	path := s.cfg.Check.ConfigFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.root, path)
	}
	return []string{path}
}

// loadDocument parses one document, checking hook ids unless disabled.
func (s *session) loadDocument(path string, noStrict bool) (*precommit.Document, error) {
	var catalog precommit.Catalog
	if !noStrict {
		c, err := s.cfg.Catalog(s.root)
		if err != nil {
			return nil, herrors.ConfigError("failed to build hook catalog", err)
		}
		catalog = c
	}

	doc, err := precommit.Load(path, precommit.WithCatalog(catalog))
	if err != nil {
		s.log.Debug("document rejected", observability.String("path", path), observability.Err(err))
		return nil, err
	}

	s.log.Debug("document loaded",
		observability.String("path", path),
		observability.Int("entries", len(doc.Repos)),
		observability.Int("hooks", doc.HookCount()),
	)
	return doc, nil
}
