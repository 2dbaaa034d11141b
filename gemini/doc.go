// Package gemini implements provider.Client against the Google Gemini REST
// API (generateContent).
//
// # Basic Usage
//
//	client := gemini.New(
//	    gemini.WithAPIKey(os.Getenv("GEMINI_API_KEY")),
//	    gemini.WithModel("gemini-2.0-flash"),
//	)
//
//	resp, err := client.Complete(ctx, provider.Request{
//	    Messages: []provider.Message{
//	        provider.NewTextMessage(provider.RoleUser, "Suggest a restaurant name."),
//	    },
//	})
//
// # Provider Registry Usage
//
// Importing the package registers the "gemini" provider:
//
//	import _ "github.com/randalmurphal/culinary/gemini"
//
//	client, err := provider.New("gemini", provider.FromEnv())
//
// # Errors
//
// HTTP failures are returned as *provider.Error:
//
//   - 429: provider.ErrRateLimited (retryable)
//   - 5xx and transport failures: provider.ErrUnavailable (retryable)
//   - 401, 403: provider.ErrCredentialsNotFound
//   - other 4xx: provider.ErrInvalidRequest
//   - no candidate text: provider.ErrEmptyResponse
//
// Provider-specific options (provider.Config.Options):
//
//   - "api_version": string (default "v1beta")
package gemini
