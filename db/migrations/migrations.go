package migrations

import "embed"

// FS embeds the SQL migration files stored in this directory. The
// golang-migrate library reads them via the iofs driver when applying
// migrations at startup.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the runner migrates to. Bump it when adding
// a migration pair.
const Version = 1
