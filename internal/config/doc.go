// Package config handles configuration loading and validation from
// environment variables and an optional config file. It gives the server
// type-safe access to its settings while keeping configuration details out
// of the content packages.
package config
