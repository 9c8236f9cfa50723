package configs

// Research tunes the planning pipeline. TopN bounds how many prioritised
// keywords are sent to the model. ConfigFile is the YAML request read by
// the search-from-config endpoint.
type Research struct {
	TopN       int    `env:"TOP_N" envDefault:"20"`
	ConfigFile string `env:"CONFIG_FILE" envDefault:"config.yaml"`
}
