/*
Package sdk provides a client for the SecureStory API together with the
request and response types shared with the server.

# Usage

Create a Client for public endpoints, log in, then derive an authenticated
client from the returned token:

	client := sdk.NewClient("https://securestory.example.com")

	login, err := client.Login(ctx, "alice@example.com", "correct horse")
	if err != nil {
		return err
	}
	authed := client.WithToken(login.Token)

	counts, err := authed.SeverityCounts(ctx, sdk.DashboardQuery{Project: "web", Days: 30})

# Errors

Non-2xx responses are returned as *APIError carrying the HTTP status, the
server's error message and, for validation failures, per-field details:

	var apiErr *sdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		// project already exists
	}
*/
package sdk
