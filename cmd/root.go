package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/nulzo/factory-method/internal/adapters/factory"
	"github.com/nulzo/factory-method/internal/app"
	"github.com/nulzo/factory-method/internal/config"
	"github.com/nulzo/factory-method/internal/platform/logger"
	"github.com/nulzo/factory-method/internal/platform/otel"
	"github.com/nulzo/factory-method/internal/registry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	// Import creators to trigger init() registration
	_ "github.com/nulzo/factory-method/internal/adapters/creators"
)

// NewRootCommand builds the command tree. Demo output goes to the command's
// stdout; logs and trace exports go to stderr.
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "factorymethod",
		Short: "Factory Method pattern demo",
		Long: `factorymethod runs the client against each configured creator.

The client only sees the Creator interface; each concrete creator decides
which product its factory method builds.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			return runDemo(cmd, cfg)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is ./config.yaml)")

	root.AddCommand(newCreatorsCommand())
	root.AddCommand(newVersionCommand())

	return root
}

func runDemo(cmd *cobra.Command, cfg *config.Config) error {
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format

	log, err := logger.New(logCfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	log = log.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("env", cfg.App.Env),
	)

	ctx := cmd.Context()

	if cfg.Tracing.Enabled {
		tracerCfg := otel.TracerConfig{
			ServiceName: cfg.App.Name,
			Environment: cfg.App.Env,
			PrettyPrint: true,
		}
		if v, err := Version(); err == nil {
			tracerCfg.ServiceVersion = v.String()
		}
		shutdown, err := otel.InitTracer(tracerCfg, log, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Warn("tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	a := app.New(cmd.OutOrStdout(), factory.NewCreatorFactory(), log)
	return a.Run(ctx, cfg.Launch)
}

func newCreatorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "creators",
		Short: "List the registered creators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range registry.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
