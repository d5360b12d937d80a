// Package engine contains the sequence checking core: the pair-sum anomaly
// detector and the contiguous range summer. It never imports app, writers,
// cli, records, or pipeline; keep it domain-only.
//
// External outputs must not depend on the internal shape here. Use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
