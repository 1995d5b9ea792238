package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashbox/hashbox/internal/config"
	apperrors "github.com/hashbox/hashbox/internal/errors"
	"github.com/hashbox/hashbox/internal/log"
	"github.com/hashbox/hashbox/internal/watcher"
)

func CreateWatchCommand() *WatchCommand {
	gc := &WatchCommand{
		fs: flag.NewFlagSet("watch", flag.ExitOnError),
	}
	return gc
}

// WatchCommand runs the filesystem watcher in the foreground until
// SIGINT or SIGTERM.
type WatchCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config
}

func (g *WatchCommand) Name() string {
	return g.fs.Name()
}

func (g *WatchCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	if len(g.cfg.Watches) == 0 {
		return apperrors.NewConfigError("no [[watch]] targets configured", nil)
	}

	return nil
}

func (g *WatchCommand) Run() error {
	st, err := openStoreIfConfigured(g.cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	w, err := watcher.New(g.cfg, st)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Infof("Received signal %v, shutting down...", sig)
		cancel()
	}()

	return w.Run(ctx)
}
