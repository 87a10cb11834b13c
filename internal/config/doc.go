// Package config provides configuration management for the cooking assistant.
//
// Configuration is loaded from environment variables and validated on startup.
// Missing provider credentials are a startup failure, never a per-request one.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg)
package config
