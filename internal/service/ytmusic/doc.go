// Package ytmusic composes the low-level API client into the operations
// the application actually runs: searching, browsing artists and albums,
// fetching lyrics, and listing the user's library. Pages that change
// rarely within a session (artists, albums, lyrics) are held in bounded
// LRU caches.
package ytmusic
