package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashbox/hashbox/internal/api"
	"github.com/hashbox/hashbox/internal/config"
	"github.com/hashbox/hashbox/internal/log"
)

func CreateServeCommand() *ServeCommand {
	sc := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ExitOnError),
	}

	sc.fs.StringVar(&sc.bindAddr, "bind", "", "Address to bind the HTTP server (default from config)")

	return sc
}

// ServeCommand runs the REST API server until SIGINT or SIGTERM. The
// server goroutine is supervised and restarted with backoff if it crashes.
type ServeCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config
	ctx *AppContext

	bindAddr string

	server    *api.Server
	apiRunner *RestartableRunner
}

func (s *ServeCommand) Name() string {
	return s.fs.Name()
}

func (s *ServeCommand) Init(args []string, ctx *AppContext) error {
	s.ctx = ctx

	if err := s.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		s.cfg = cfg
	}

	// The -bind flag overrides the configured address.
	if s.bindAddr != "" {
		if s.cfg.API == nil {
			s.cfg.API = &config.APIConfig{}
		}
		s.cfg.API.BindAddress = s.bindAddr
	}

	return nil
}

func (s *ServeCommand) Run() error {
	st, err := openStoreIfConfigured(s.cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	log.Infof("Starting hashbox API server on %s", s.cfg.GetAPIBindAddress())
	if s.cfg.IsPrivateSubnetsOnly() {
		log.Infof("Access restricted to private subnets only:")
		log.Infof("  IPv4: 10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16, 127.0.0.0/8")
		log.Infof("  IPv6: fc00::/7, fe80::/10, ::1/128")
		log.Infof("Requests from public IPs will be rejected with 403 Forbidden")
	}

	s.server = api.NewServer(s.cfg, st, api.VersionInfo{
		Version: s.ctx.Version,
		Date:    s.ctx.Date,
		Commit:  s.ctx.Commit,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The runner restarts the listener with backoff if it fails, so a
	// transient bind problem doesn't kill the process.
	s.apiRunner = NewRestartableRunner(RunnerConfig{
		Name:           "API server",
		MaxRestarts:    0, // Unlimited restarts
		RestartBackoff: 2 * time.Second,
		MaxBackoff:     30 * time.Second,
	}, func(runCtx context.Context) error {
		return s.server.Start()
	})

	if err := s.apiRunner.Start(ctx); err != nil {
		return err
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	sig := <-shutdown
	log.Infof("Received signal %v, shutting down server...", sig)

	return s.stop()
}

// stop shuts the HTTP server down gracefully and waits for the runner.
func (s *ServeCommand) stop() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.server.Stop(shutdownCtx); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	if err := s.apiRunner.Stop(); err != nil {
		return err
	}

	log.Infof("Server stopped gracefully")
	return nil
}
