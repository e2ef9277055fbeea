package mocks

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"sync"
)

// MockHTTPClient is a mock implementation of HTTPClient for testing
type MockHTTPClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)

	mu     sync.Mutex
	Calls  []*http.Request
	Bodies []string
}

// NewMockHTTPClient creates a new mock HTTP client
func NewMockHTTPClient(doFunc func(req *http.Request) (*http.Response, error)) *MockHTTPClient {
	return &MockHTTPClient{
		DoFunc: doFunc,
		Calls:  []*http.Request{},
	}
}

// NewTextResponder returns a mock client that answers every request with a
// text/plain body and the given status code
func NewTextResponder(statusCode int, body string) *MockHTTPClient {
	return NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return TextResponse(statusCode, body), nil
	})
}

// TextResponse builds a text/plain response like the ones Zift returns
func TextResponse(statusCode int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "text/plain; charset=UTF-8")
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     header,
	}
}

// Do executes the mock function and captures the call and its body
func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	var body string
	if req.Body != nil {
		raw, _ := io.ReadAll(req.Body)
		req.Body.Close()
		req.Body = io.NopCloser(bytes.NewReader(raw))
		body = string(raw)
	}

	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	m.Bodies = append(m.Bodies, body)
	m.mu.Unlock()

	if m.DoFunc != nil {
		return m.DoFunc(req)
	}
	return TextResponse(http.StatusOK, ""), nil
}

// LastForm decodes the form body of the most recent call
func (m *MockHTTPClient) LastForm() url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Bodies) == 0 {
		return nil
	}
	form, _ := url.ParseQuery(m.Bodies[len(m.Bodies)-1])
	return form
}

// CallCount returns the number of captured calls
func (m *MockHTTPClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Reset clears captured calls
func (m *MockHTTPClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = []*http.Request{}
	m.Bodies = nil
}
