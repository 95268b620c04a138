// Package config provides configuration management for asset-bridge.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live next to each setting as `default` struct
// tags.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and command route prefix
//   - Resources: dev mode, project root, packaged base directory, manifest
//   - Storage: S3/MinIO credentials, bucket and upload workers
//   - Log: level, format and optional rotating file
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Resources.BaseDir)
package config
