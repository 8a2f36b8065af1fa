// Package config manages application settings.
//
// Settings are persisted as JSON. Loading a path that does not exist
// returns the defaults, so a first run needs no setup.
package config
