// pkg/api/manifest_v1.go
package api

// ManifestV1 is the stable JSON schema for a generation run's provenance
// record. Keep fields, names, and types stable. Add new fields only with
// ",omitempty".
type ManifestV1 struct {
	Schema    string `json:"schema"` // "fqgen/manifest@1"
	RunID     string `json:"run_id"`
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	CreatedAt string `json:"created_at"` // RFC 3339

	Reads  int    `json:"reads"`
	Length int    `json:"length"`
	Seed   uint64 `json:"seed,omitempty"` // 0 = unseeded run
	Paired bool   `json:"paired,omitempty"`

	Files []ManifestFileV1 `json:"files"`
}

// ManifestFileV1 names one emitted artifact.
type ManifestFileV1 struct {
	Sample string `json:"sample,omitempty"` // sheet runs only
	Mate   int    `json:"mate,omitempty"`   // 1 or 2 for paired output
	Path   string `json:"path"`
}

// SchemaManifestV1 tags ManifestV1 payloads.
const SchemaManifestV1 = "fqgen/manifest@1"
