// Package writers turns merge results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text report, JSON report, map files).
//   - warnmap and coverage stay domain-only; app stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
