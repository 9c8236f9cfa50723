package configs

import "time"

// DataForSEO configures the keyword research API. SeedAuth and SiteAuth
// are base64 encoded "login:password" credentials sent as HTTP Basic auth
// to the keywords_for_keywords and keywords_for_site endpoints.
type DataForSEO struct {
	BaseURL  string        `env:"BASE_URL" envDefault:"https://api.dataforseo.com"`
	SeedAuth string        `env:"SEED_AUTH"`
	SiteAuth string        `env:"SITE_AUTH"`
	Language string        `env:"LANGUAGE" envDefault:"English"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
