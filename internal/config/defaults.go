package config

const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8000
	DefaultMode        = ModeStdio
	DefaultEnvironment = "development"
	DefaultLogLevel    = "info"

	DefaultRateLimitPerMinute = 60

	DefaultNWSBaseURL   = "https://api.weather.gov"
	DefaultNWSUserAgent = "fletera-mcp/1.0"

	DefaultHTTPTimeoutSeconds = 10
)

var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8080",
}
