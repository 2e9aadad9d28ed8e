package cli

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/securecookie"
	"github.com/ory/graceful"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/ugent-library/zaphttp"
	"github.com/ugent-library/zaphttp/zapchi"

	"github.com/ugent-library/sso-login/loginserver"
	"github.com/ugent-library/sso-login/nls"
)

func loadBundle() (*nls.Bundle, error) {
	bundle := nls.New()
	if config.NLSPath != "" {
		if err := bundle.LoadYAML(config.NLSPath); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}

// sessionSecret returns the configured secret or a random 32 byte key.
// Without a configured secret, session cookies do not survive a restart,
// just like flows that were never flushed.
func sessionSecret() (string, error) {
	if config.SessionSecret != "" {
		return config.SessionSecret, nil
	}
	key := securecookie.GenerateRandomKey(32)
	if key == nil {
		return "", errors.New("unable to generate session secret")
	}
	return string(key), nil
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "start server",
	RunE: func(cmd *cobra.Command, args []string) error {
		providers, err := loadProviders()
		if err != nil {
			return err
		}

		bundle, err := loadBundle()
		if err != nil {
			return err
		}

		secret, err := sessionSecret()
		if err != nil {
			return err
		}

		srvConfig := loginserver.Config{
			SessionCookieName:  config.SessionCookieName,
			SessionSecret:      secret,
			URIBase:            config.URIBase,
			UpstreamURL:        config.UpstreamURL,
			ExpiresIn:          config.ExpiresIn,
			DefaultBrandingURL: config.DefaultBrandingURL,
			Logger:             logger,
			Bundle:             bundle,
			Store:              store,
			Source: &loginserver.MockScaffoldSource{
				AppLogo:    config.AppLogo,
				TenantLogo: config.TenantLogo,
				Providers:  providers,
			},
		}

		loginServer, err := loginserver.NewServer(srvConfig)
		if err != nil {
			return err
		}

		mux := chi.NewMux()
		mux.Use(middleware.RequestID)
		mux.Use(middleware.RealIP)
		mux.Use(zaphttp.SetLogger(logger.Desugar(), zapchi.RequestID))
		mux.Use(middleware.RequestLogger(zapchi.LogFormatter()))
		mux.Use(middleware.Recoverer)

		loginServer.Routes(mux)
		mux.Handle("/metrics", promhttp.Handler())

		addr := fmt.Sprintf("%s:%s", config.Host, config.Port)
		srv := graceful.WithDefaults(&http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		})

		logger.Infof("starting server at %s", addr)
		if err := graceful.Graceful(srv.ListenAndServe, srv.Shutdown); err != nil {
			return err
		}
		logger.Info("gracefully stopped server")
		return nil
	},
}
