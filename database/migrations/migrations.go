// Package migrations holds the schema migration files. Each file
// registers its migrations from init(), so importing this package from
// the CLI is enough to make them runnable.
package migrations
