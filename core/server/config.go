package server

import "strings"

// Config holds configuration for the HTTP command server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Host restricts the listener to one interface. The shell talks to the
	// backend over loopback, so that is the default.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// Prefix is the route group the shell commands are mounted under.
	Prefix string `mapstructure:"prefix" default:"/commands"`
}

// Address returns the listen address.
func (c Config) Address() string {
	return c.Host + ":" + c.Port
}

// RoutePrefix returns Prefix with exactly one leading slash and no trailing
// slash. An empty or "/" prefix mounts commands at the root.
func (c Config) RoutePrefix() string {
	p := strings.Trim(c.Prefix, "/ ")
	if p == "" {
		return ""
	}
	return "/" + p
}
