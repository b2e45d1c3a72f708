// Package config loads seqkit Settings.
//
// It uses Viper to read a YAML file, then layers environment variables and an
// optional .env file (via godotenv) on top. Environment variables map to
// nested keys by splitting on underscores, so JOIN_SEPARATOR sets
// join.separator.
//
// # Usage
//
//	settings, err := config.Load(config.WithConfigFile("seqkit.yml"))
//	if err != nil {
//	    return err
//	}
//	sequence.Configure(settings)
package config
