package store

import (
	_ "embed"
)

//go:embed sql/001_initial.sql
var initialSQL string
