// Package google provides OAuth2 configuration and token handling for the
// Google Calendar API.
package google
