// Package app provides the main application logic behind the CLI commands.
// It assembles the authorization credential, the API client, and the cached
// service layer, runs the requested operation, and prints the result.
package app
