// Package provider defines the boundary between menu generation and the
// language model that produces the text.
//
// The model is an opaque collaborator: callers send a Request holding
// messages and receive the completion text in a Response. Backends register
// a Factory under a name and are created through the registry:
//
//	client, err := provider.New("gemini", provider.FromEnv())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	resp, err := client.Complete(ctx, provider.Request{
//	    Messages: []provider.Message{provider.NewTextMessage(provider.RoleUser, "Suggest a name")},
//	})
//
// # Available Providers
//
//   - "gemini": Google Gemini REST API (import the gemini package)
//
// MockClient is a test double usable anywhere a Client is accepted.
package provider

import "context"

// Client is the interface to a language model.
// Implementations must be safe for concurrent use.
type Client interface {
	// Complete sends a request and returns the full response.
	// The context controls cancellation and timeouts.
	Complete(ctx context.Context, req Request) (*Response, error)

	// Provider returns the provider name (e.g., "gemini").
	Provider() string

	// Close releases any resources held by the client.
	Close() error
}
