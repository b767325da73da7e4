// Package writers turns tool results into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV tables, JSON/JSONL).
//   • core stays domain-only; apps stay orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
