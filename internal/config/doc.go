// Package config provides configuration management for hbs.
//
// Configuration is loaded from HBS_* environment variables and validated on
// startup. Every option has a default, so an empty environment is valid.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg)
package config
