// Package assets carries files embedded into the binary.
package assets

import _ "embed"

//go:embed schema.sql
var schema string

// Schema returns the SQL statements that create the scheduling tables.
func Schema() string {
	return schema
}
