package cli

import "time"

type Config struct {
	Production         bool   `env:"PRODUCTION"`
	SessionCookieName  string `env:"SESSION_COOKIE_NAME" envDefault:"SSO_LOGIN_SESSION"`
	SessionSecret      string `env:"SESSION_SECRET"`
	URIBase            string `env:"URI_BASE" envDefault:"http://localhost:3000"`
	UpstreamURL        string `env:"UPSTREAM_URL,required"`
	ExpiresIn          time.Duration `env:"EXPIRES_IN" envDefault:"1h"`
	Host               string `env:"HOST" envDefault:"0.0.0.0"`
	Port               string `env:"PORT" envDefault:"3000"`
	DataPath           string `env:"DATA_PATH" envDefault:".data/flows.jsonl"`
	StoreSize          int    `env:"STORE_SIZE" envDefault:"1000"`
	ProvidersPath      string `env:"PROVIDERS_PATH"`
	Providers          string `env:"PROVIDERS"`
	AppLogo            string `env:"APP_LOGO"`
	TenantLogo         string `env:"TENANT_LOGO"`
	DefaultBrandingURL string `env:"DEFAULT_BRANDING_URL"`
	NLSPath            string `env:"NLS_PATH"`
}
