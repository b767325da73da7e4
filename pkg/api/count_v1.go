// pkg/api/count_v1.go
package api

// CountV1 is the stable JSON/JSONL schema for per-file FASTQ statistics.
type CountV1 struct {
	File    string  `json:"file"`
	Records int64   `json:"records"`
	Bases   int64   `json:"bases"`
	MinLen  int     `json:"min_len"`
	MaxLen  int     `json:"max_len"`
	MeanLen float64 `json:"mean_len"`
}
