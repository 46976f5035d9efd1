// Package writers turns results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, FASTA, JSON, JSONL).
//   - The core stays domain-only; the app layer only picks a format.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
