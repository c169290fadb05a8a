// Package config provides configuration management for the launcher.
//
// Configuration comes from three layers, lowest precedence first:
//   - defaults declared with `default:"..."` struct tags
//   - the optional .env file in the application directory (godotenv)
//   - the process environment (viper AutomaticEnv)
//
// Keys map to environment variables by replacing dots with underscores,
// so database.url is DATABASE_URL and layout.venv is LAYOUT_VENV.
//
// Load also captures an Environment snapshot (VIRTUAL_ENV, .env presence,
// the configured DATABASE_URL and the full environment list). The startup
// steps work from that snapshot only.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Database.URL)
package config
