// Package google_tools registers the OAuth bootstrap tools: generating the
// authorization URL and exchanging the one-time code for a refresh token.
package google_tools
