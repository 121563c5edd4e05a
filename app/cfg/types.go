package cfg

type Cfg struct {
	// Database configuration
	DBPath string

	// Application configuration
	Port          string
	APIAccessKey  string
	SweepInterval int // seconds

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}

// FileCfg mirrors the optional YAML configuration file. File values act as
// defaults; environment variables and flags override them.
type FileCfg struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Server struct {
		Port         string `yaml:"port"`
		APIAccessKey string `yaml:"api_access_key"`
	} `yaml:"server"`
	Integrity struct {
		SweepInterval int `yaml:"sweep_interval"` // seconds
	} `yaml:"integrity"`
}
