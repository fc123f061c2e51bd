package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes configuration from an optional file, a .env file and
// PROFDEMO_-prefixed environment variables, and sets all defaults.
func Load(cfgFile string) {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("profdemo")
	}

	viper.SetEnvPrefix("PROFDEMO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("repetitions", 100)
	viper.SetDefault("top", 10)
	viper.SetDefault("export.dir", "profiles")
	viper.SetDefault("history.path", ".profdemo/history.db")

	// Per-benchmark default arguments; overridable via file or
	// PROFDEMO_BENCH_<NAME> environment variables.
	viper.SetDefault("bench.fib-recursive", 30)
	viper.SetDefault("bench.fib-iterative", 100000)
	viper.SetDefault("bench.matrix-mul", 100)
	viper.SetDefault("bench.prime-factors", 123456789012345)
	viper.SetDefault("bench.string-concat", 10000)

	// A missing config file is not an error; defaults apply.
	_ = viper.ReadInConfig()
}

// BenchArg returns the configured argument for a benchmark, falling
// back to the given default.
func BenchArg(name string, fallback int64) int64 {
	key := "bench." + name
	if viper.IsSet(key) {
		if v := viper.GetInt64(key); v != 0 {
			return v
		}
	}
	return fallback
}
