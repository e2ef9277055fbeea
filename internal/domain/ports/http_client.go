package ports

import "net/http"

// HTTPClient is the transport the gateway adapters send requests through.
// TLS, timeouts and connection pooling are the implementation's concern;
// *http.Client satisfies it directly.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
