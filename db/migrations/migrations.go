package migrations

import "embed"

// FS holds the advertisement schema. Files follow golang-migrate naming,
// {version}_{name}.{up|down}.sql, and are read through the iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the newest schema; startup migrates exactly to it.
const Version uint = 1
