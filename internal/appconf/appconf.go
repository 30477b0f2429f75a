// Package appconf holds the application-level configuration shared by the
// HTTP server, background jobs, and handlers.
package appconf

// Environment describes which mode the application is running in. Some
// behavior (the debug endpoint, log verbosity) depends on it.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment maps the -env command line flag to an Environment,
// defaulting to Development for unrecognized values.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}

// Config holds the settings read from flags and the environment at startup.
type Config struct {
	Env       Environment
	Port      int
	RateLimit int // requests per second per client, 0 disables all requests, <0 disables limiting
	Verbose   bool
}
