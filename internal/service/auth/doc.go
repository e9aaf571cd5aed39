// Package auth provides browser-based credential capture.
//
// This package implements session cookie extraction using browser
// automation via go-rod. It opens a visible browser on YouTube Music,
// waits for the user to sign in to their Google account, and assembles
// the Cookie header (including the SAPISID cookie used for request
// signing) from the authenticated session.
package auth
