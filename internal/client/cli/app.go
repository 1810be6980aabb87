package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dpbr/dpbr-client/internal/client/client"
	"github.com/dpbr/dpbr-client/internal/client/config"
	"github.com/dpbr/dpbr-client/internal/client/export"
	"github.com/dpbr/dpbr-client/internal/client/gateway"
	"github.com/dpbr/dpbr-client/internal/client/models"
	"github.com/dpbr/dpbr-client/internal/client/services"
	"github.com/dpbr/dpbr-client/internal/client/storage"
	"github.com/dpbr/dpbr-client/internal/common"
	"github.com/dpbr/dpbr-client/internal/logging"
)

type App struct {
	config   *config.Config
	auth     services.AuthService
	reader   services.ReaderService
	exporter *export.Exporter
	log      logging.Logger

	in  *bufio.Reader
	out io.Writer

	closers []func() error
}

// NewApp wires storage, the gateway and the services from c.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	st, closeStore, err := storage.Open(ctx, c.StorageOptions(), log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	tokens := services.NewStoredToken(st)
	gw, err := gateway.New(c, tokens, log)
	if err != nil {
		_ = closeStore()
		return nil, err
	}

	api := client.NewHTTPClient(gw)

	var authOpts []services.AuthOption
	if c.DebugToken != "" {
		authOpts = append(authOpts, services.WithDebugToken(c.DebugToken))
	}

	exporter, err := newExporter(ctx, c, log)
	if err != nil {
		_ = closeStore()
		return nil, err
	}

	return &App{
		config:   c,
		auth:     services.NewAuthService(api, st, log, authOpts...),
		reader:   services.NewReaderService(api, tokens, log, c.Location()),
		exporter: exporter,
		log:      log,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		closers:  []func() error{closeStore},
	}, nil
}

func newExporter(ctx context.Context, c *config.Config, log logging.Logger) (*export.Exporter, error) {
	var opts []export.RendererOption
	if c.ExportFont != "" {
		opts = append(opts, export.WithFontFile(c.ExportFont, 14))
	}
	r, err := export.NewRenderer(log, opts...)
	if err != nil {
		return nil, fmt.Errorf("export renderer: %w", err)
	}

	var sink export.Sink = export.FileSink{Dir: c.ExportDir}
	if c.S3Bucket != "" {
		s3sink, err := export.NewS3Sink(ctx, export.S3Config{
			Endpoint:  c.S3Endpoint,
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Prefix:    c.S3Prefix,
		})
		if err != nil {
			return nil, err
		}
		sink = s3sink
	}
	return export.NewExporter(r, sink, log), nil
}

// Run reconciles the stored session and serves the REPL until exit.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	a.auth.CheckAuth(ctx)

	unsubscribe := a.auth.Subscribe(a.sessionChanged())
	defer unsubscribe()

	fmt.Fprintf(a.out, "%s client (type 'help' for commands)\n", common.ClubName)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.in))
}

func (a *App) close(ctx context.Context) {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Warn(ctx, "close failed", "err", err)
		}
	}
}

// sessionChanged reports sign-in and sign-out transitions. The first call
// carries the current session and only records it.
func (a *App) sessionChanged() func(models.Session) {
	var (
		seen bool
		was  bool
	)
	return func(s models.Session) {
		if seen && s.IsAuthenticated != was {
			if s.IsAuthenticated && s.User != nil {
				fmt.Fprintf(a.out, "Signed in as %s\n", s.User.Name)
			} else if !s.IsAuthenticated {
				fmt.Fprintln(a.out, "Signed out")
			}
		}
		seen, was = true, s.IsAuthenticated
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.Snapshot().IsAuthenticated
}

func (a *App) getStatus() string {
	s := a.auth.Snapshot()
	switch {
	case s.IsAuthenticated && s.User != nil:
		return fmt.Sprintf("(%s)", s.User.Name)
	case s.RegisterToken != "":
		return "(signup pending)"
	}
	return ""
}
