package commands

import (
	"flag"
	"fmt"

	"github.com/hashbox/hashbox/internal/config"
	apperrors "github.com/hashbox/hashbox/internal/errors"
	"github.com/hashbox/hashbox/internal/log"
)

func CreateConfigCommand() *ConfigCommand {
	gc := &ConfigCommand{
		fs: flag.NewFlagSet("config", flag.ExitOnError),
	}

	gc.fs.BoolVar(&gc.upgrade, "upgrade", false, "Migrate the configuration file to the current version and rewrite it")

	return gc
}

// ConfigCommand prints the effective configuration as TOML. With -upgrade
// it first migrates old config versions and rewrites the file.
type ConfigCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	upgrade bool
}

func (g *ConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *ConfigCommand) Init(args []string, ctx *AppContext) error {
	// The TOML goes to stdout so it can be redirected into a file.
	log.SetForceStdErr(true)

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.upgrade && ctx.ConfigPath == "" {
		return apperrors.NewInvalidInputError("-upgrade needs a configuration file (-config)", nil)
	}

	// Deliberately not validated: printing also works for configs that
	// fail validation, which helps debugging them.
	if cfg, err := loadConfigOrDefault(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *ConfigCommand) Run() error {
	if g.upgrade {
		upgraded, err := g.cfg.UpgradeConfig()
		if err != nil {
			return err
		}

		if upgraded {
			if err := g.cfg.WriteConfig(); err != nil {
				return err
			}
			log.Infof("Configuration upgraded and rewritten")
		} else {
			log.Infof("Configuration is already at the current version")
		}
	}

	buf, err := g.cfg.SerializeConfig()
	if err != nil {
		return err
	}

	fmt.Print(buf.String())
	return nil
}
