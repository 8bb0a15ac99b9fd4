// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Parsing is driven by `env` struct tags (github.com/caarlos0/env). Each
// configuration type is loaded once per process and cached, so packages that
// share a config (for example the database settings used by both migration
// and pool setup) always observe identical values.
package config
