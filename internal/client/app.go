package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-cred-pool/internal/adapter"
	"github.com/MKhiriev/go-cred-pool/internal/config"
	"github.com/MKhiriev/go-cred-pool/internal/logger"
	"github.com/MKhiriev/go-cred-pool/internal/validators"
	"github.com/MKhiriev/go-cred-pool/models"
)

// App is the cred-pool CLI. Every Run builds a fresh cobra command tree, so
// one App can execute several command lines.
type App struct {
	adapter  adapter.ServerAdapter
	items    validators.ItemValidator
	requests validators.Validator

	cfg   config.ClientConfig
	build models.AppBuildInfo

	apiKey string

	out    io.Writer
	errOut io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, errors.New("server adapter is required")
	}
	if cfg == nil {
		return nil, errors.New("client config is required")
	}

	return &App{
		adapter: serverAdapter,
		items:   validators.NewCredentialItemValidator(),
		// the server enforces its own batch size limit
		requests: validators.NewRequestValidator(0),
		cfg:      *cfg,
		build:    build,
		out:      os.Stdout,
		errOut:   os.Stderr,
		logger:   logger,
	}, nil
}

// SetOutput redirects the report and the error stream.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.out = out
	a.errOut = errOut
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.logger.Err(err).Strs("args", args).Msg("command failed")
	}
	return err
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "cred-pool",
		Short:         "Submit and inspect refresh-token credentials of a cred-pool server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.apiKey, "api-key", a.cfg.Adapter.APIKey, "admin API key (env ADAPTER_API_KEY)")

	root.AddCommand(
		a.batchAddCommand(),
		a.listCommand(),
		a.versionCommand(),
	)
	return root
}

type batchAddOptions struct {
	file         string
	priority     int
	region       string
	skipPrecheck bool
}

func (a *App) batchAddCommand() *cobra.Command {
	var opts batchAddOptions

	cmd := &cobra.Command{
		Use:   "batch-add -f <file.json>",
		Short: "Add a batch of credentials and print a per-line report",
		Long: `Add a batch of credentials and print a per-line report.
The file holds a JSON array of credentials, or an object with a
"credentials" array. Every line is checked locally first; any invalid line
aborts the submission unless --skip-precheck is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := readBatchFile(opts.file)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("priority") {
				req.Priority = opts.priority
			}
			if cmd.Flags().Changed("region") {
				req.Region = opts.region
			}
			return a.runBatchAdd(cmd.Context(), req, opts.skipPrecheck)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "path to the JSON batch file")
	cmd.Flags().IntVar(&opts.priority, "priority", 0, "priority applied to every credential of the batch")
	cmd.Flags().StringVar(&opts.region, "region", "", "region applied to every credential of the batch")
	cmd.Flags().BoolVar(&opts.skipPrecheck, "skip-precheck", false, "send the batch as is and let the server report invalid lines")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *App) runBatchAdd(ctx context.Context, req models.BatchAddRequest, skipPrecheck bool) error {
	if len(req.Items) == 0 {
		return validators.ErrEmptyBatch
	}

	if !skipPrecheck {
		if err := a.precheck(ctx, req); err != nil {
			var precheckErr *PrecheckError
			if errors.As(err, &precheckErr) {
				if renderErr := RenderPrecheck(a.out, precheckErr); renderErr != nil {
					return renderErr
				}
			}
			return err
		}
	}

	if err := a.login(ctx); err != nil {
		return err
	}

	a.logger.Info().Int("items", len(req.Items)).Int("priority", req.Priority).Msg("submitting batch")

	result, err := a.adapter.BatchAdd(ctx, req)
	if err != nil {
		return fmt.Errorf("submit batch: %w", err)
	}

	if err = RenderReport(a.out, result); err != nil {
		return err
	}
	if result.FailedCount > 0 {
		return fmt.Errorf("%w: %d of %d", ErrItemsFailed, result.FailedCount, result.Total)
	}
	return nil
}

// precheck applies the request-wide rules and then every item rule locally.
// All invalid lines are collected, not just the first one.
func (a *App) precheck(ctx context.Context, req models.BatchAddRequest) error {
	if err := a.requests.Validate(ctx, req); err != nil {
		return err
	}

	var failed []*validators.ItemError
	for i, raw := range req.Items {
		if _, err := a.items.ValidateItem(i, raw); err != nil {
			var itemErr *validators.ItemError
			if !errors.As(err, &itemErr) {
				return err
			}
			failed = append(failed, itemErr)
		}
	}

	if len(failed) > 0 {
		return &PrecheckError{Items: failed}
	}
	return nil
}

func (a *App) login(ctx context.Context) error {
	if a.adapter.Token() != "" {
		return nil
	}
	if a.apiKey == "" {
		return ErrMissingAPIKey
	}
	if err := a.adapter.Login(ctx, a.apiKey); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

func (a *App) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored credentials without their secrets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.login(ctx); err != nil {
				return err
			}

			status, err := a.adapter.ListCredentials(ctx)
			if err != nil {
				return fmt.Errorf("list credentials: %w", err)
			}
			return RenderCredentials(a.out, status)
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build info and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(a.out, "Build version: %s\n", orNA(a.build.BuildVersion()))
			fmt.Fprintf(a.out, "Build date: %s\n", orNA(a.build.BuildDate()))
			fmt.Fprintf(a.out, "Build commit: %s\n", orNA(a.build.BuildCommit()))

			serverVersion, err := a.adapter.GetServerVersion(cmd.Context())
			if err != nil {
				a.logger.Warn().Err(err).Msg("server version unavailable")
				serverVersion = "unavailable"
			}
			fmt.Fprintf(a.out, "Server version: %s\n", serverVersion)
			return nil
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
