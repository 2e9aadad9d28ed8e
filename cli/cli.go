package cli

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v8"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ugent-library/sso-login/loginserver"

	_ "github.com/joho/godotenv/autoload"
)

const envPrefix = "SSO_LOGIN_"

var logger *zap.SugaredLogger
var config Config
var store *loginserver.Store
var rootCmd = &cobra.Command{
	Use:   "sso-login",
	Short: "single sign-on login page",
}

func loadConfig() (Config, error) {
	c := Config{}
	err := env.ParseWithOptions(&c, env.Options{Prefix: envPrefix})
	return c, err
}

func newLogger(production bool) (*zap.SugaredLogger, error) {
	var l *zap.Logger
	var err error
	if production {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// openStore loads the flows flushed by a previous run.
func openStore(c Config) (*loginserver.Store, error) {
	if c.StoreSize <= 0 {
		return nil, fmt.Errorf("store size must be positive, got %d", c.StoreSize)
	}
	return loginserver.NewStore(c.DataPath, c.StoreSize, c.ExpiresIn)
}

func initConfig() {
	c, err := loadConfig()
	cobra.CheckErr(err)
	config = c
}

func initLogger() {
	l, err := newLogger(config.Production)
	cobra.CheckErr(err)
	logger = l
}

func initStore() {
	s, err := openStore(config)
	cobra.CheckErr(err)
	store = s
}

func finalize() {
	if store != nil {
		if err := store.FlushToFile(); err != nil {
			fmt.Fprintf(os.Stderr, "unable to flush store: %s\n", err)
		} else if logger != nil && config.DataPath != "" {
			logger.Infof("flushed %d flows to %s", store.Len(), config.DataPath)
		}
	}
	if logger != nil {
		logger.Sync()
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger, initStore)
	cobra.OnFinalize(finalize)
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
