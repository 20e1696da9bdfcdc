// Package google provides OAuth2 authentication and token management for
// Google APIs.
//
// Tokens are stored per account as files in the user cache directory, so
// several Google accounts can be used side by side. The package exposes the
// installed-app OAuth flow: print an authorization URL, exchange the code
// the user receives, and persist the resulting token. Stored tokens are
// refreshed transparently through an oauth2.TokenSource.
//
// The requested scope is full Google Drive access, the only Google service
// this application talks to.
package google
