package conventions

import (
	"net/url"
	"time"
)

const (
	// EnvPrefix is the prefix of all the environment variables read by the client.
	EnvPrefix = "TAVOR"
	// EnvAPIKey is the environment variable holding the credential.
	EnvAPIKey = EnvPrefix + "_API_KEY"
	// EnvBaseURL is the environment variable holding the service base address.
	EnvBaseURL = EnvPrefix + "_BASE_URL"
	// EnvBoxTimeout is the environment variable holding the default managed box lifetime in seconds.
	EnvBoxTimeout = EnvPrefix + "_BOX_TIMEOUT"

	// DefaultBaseURL is the service address used when none is configured.
	DefaultBaseURL = "https://api.tavor.dev"
	// DefaultRequestTimeout is the per request timeout.
	DefaultRequestTimeout = 30 * time.Second
	// DefaultBoxTimeout is the managed box lifetime in seconds.
	DefaultBoxTimeout = 600

	// DefaultPollInterval is the time between box status checks while waiting.
	DefaultPollInterval = 1 * time.Second
	// DefaultMaxWait is the maximum time waiting for a box to become ready.
	DefaultMaxWait = 5 * time.Minute

	// HeaderAPIKey carries the credential on every request.
	HeaderAPIKey = "x-api-key"
	// HeaderRequestID carries a unique id per request for diagnostics.
	HeaderRequestID = "X-Request-Id"

	// BoxesPath is the boxes collection path.
	BoxesPath = "/api/v2/boxes"
)

// BoxPath returns the path of a single box.
func BoxPath(id string) string {
	return BoxesPath + "/" + url.PathEscape(id)
}
