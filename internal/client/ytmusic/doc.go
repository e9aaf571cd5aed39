// Package ytmusic provides a Go client for YouTube Music's internal
// InnerTube API, offering access to artists, albums, lyrics, search and
// the user's library. It handles cookie-signed and OAuth authentication
// with automatic token refresh, builds and signs the JSON request
// envelope, and decodes the deeply nested renderer responses into typed
// domain entities. Paginated endpoints expose opaque continuation tokens
// and a lazy page iterator, and every decode failure reports the exact
// JSON path where the response shape diverged from expectations.
package ytmusic
