package store

// schemaSQL creates the document table on open. The ledger lives as one
// JSON document under a fixed key, so the schema is a plain key-value
// table.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`
