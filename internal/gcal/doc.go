// Package gcal wraps the Google Calendar API for event CRUD against the
// user's primary calendar.
//
// Authentication is refresh-token based: the client builds a caching
// oauth2 token source from the configured refresh token at construction
// time and holds it for its lifetime. An expired credential surfaces as an
// upstream API error on the next call; there is no proactive expiry
// tracking or silent retry.
package gcal
