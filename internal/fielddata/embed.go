package fielddata

import "embed"

// Dataset JSON files generated by tools/generate-fielddata.
// Each file holds one Dataset document; the file stem matches the
// dataset name with dashes replaced by underscores.
//
//go:embed data/*.json
var datasetFS embed.FS
