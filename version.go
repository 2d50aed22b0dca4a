package memtreebench

import _ "embed"

// Version is the release of the harness, read from the VERSION file.
//
//go:embed VERSION
var Version string
