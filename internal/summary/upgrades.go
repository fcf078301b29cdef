package summary

import (
	"log/slog"
	"sort"
	"strings"
)

// upgradePathSeparator joins original and upgraded material names in the
// string-keyed upgrade shape, e.g. "18MR -> 18HDHMR".
const upgradePathSeparator = " -> "

// UpgradeRecord is one upgraded part occurrence: the ordered material and
// what the optimizer substituted for it.
type UpgradeRecord struct {
	Original string
	Upgraded string
}

// UpgradeTriple is a pre-counted upgrade pair. Solution files persist
// upgrades in this shape.
type UpgradeTriple struct {
	Original string `json:"original"`
	Upgraded string `json:"upgraded"`
	Count    int    `json:"count"`
}

// UpgradeRow is the canonical normalized form every upgrade shape reduces
// to: one row per distinct (original, upgraded) pair with its part count.
type UpgradeRow struct {
	Original string
	Upgraded string
	Count    int
}

type upgradeKind int

const (
	upgradeNone upgradeKind = iota
	upgradePathCounts
	upgradeRecords
	upgradeTriples
)

// UpgradeSummary holds material upgrade data in whichever of the three
// historically-grown shapes the optimizer produced it: a count map keyed by
// "<original> -> <upgraded>" path strings, a flat record list, or a list of
// pre-counted triples. Construct with one of the Upgrades* functions and
// call Normalize to reduce to canonical rows. The zero value is an empty
// summary.
type UpgradeSummary struct {
	kind       upgradeKind
	pathCounts map[string]int
	records    []UpgradeRecord
	triples    []UpgradeTriple
}

// UpgradesFromPathCounts wraps a count map keyed by upgrade path strings.
func UpgradesFromPathCounts(counts map[string]int) UpgradeSummary {
	return UpgradeSummary{kind: upgradePathCounts, pathCounts: counts}
}

// UpgradesFromRecords wraps a flat list of per-part upgrade records.
func UpgradesFromRecords(records []UpgradeRecord) UpgradeSummary {
	return UpgradeSummary{kind: upgradeRecords, records: records}
}

// UpgradesFromTriples wraps a list of pre-counted upgrade pairs.
func UpgradesFromTriples(triples []UpgradeTriple) UpgradeSummary {
	return UpgradeSummary{kind: upgradeTriples, triples: triples}
}

// Normalize reduces the summary to canonical rows, merging duplicate
// (original, upgraded) pairs by summing their counts. Entries that fail to
// parse — a path string without the " -> " separator, a blank material
// name, a non-positive count — are skipped with a warning rather than
// failing the whole report. Map-shaped input is walked in sorted key order
// so output is deterministic; list shapes keep first-seen order.
func (u UpgradeSummary) Normalize(log *slog.Logger) []UpgradeRow {
	if log == nil {
		log = slog.Default()
	}

	rows := make(map[UpgradeRecord]*UpgradeRow)
	var order []UpgradeRecord
	add := func(original, upgraded string, count int) {
		key := UpgradeRecord{Original: original, Upgraded: upgraded}
		row, ok := rows[key]
		if !ok {
			row = &UpgradeRow{Original: original, Upgraded: upgraded}
			rows[key] = row
			order = append(order, key)
		}
		row.Count += count
	}

	switch u.kind {
	case upgradePathCounts:
		keys := make([]string, 0, len(u.pathCounts))
		for k := range u.pathCounts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, path := range keys {
			count := u.pathCounts[path]
			original, upgraded, ok := strings.Cut(path, upgradePathSeparator)
			if !ok {
				log.Warn("skipping malformed upgrade path", "path", path)
				continue
			}
			original = strings.TrimSpace(original)
			upgraded = strings.TrimSpace(upgraded)
			if original == "" || upgraded == "" {
				log.Warn("skipping upgrade path with blank material", "path", path)
				continue
			}
			if count <= 0 {
				log.Warn("skipping upgrade path with non-positive count", "path", path, "count", count)
				continue
			}
			add(original, upgraded, count)
		}

	case upgradeRecords:
		for _, r := range u.records {
			original := strings.TrimSpace(r.Original)
			upgraded := strings.TrimSpace(r.Upgraded)
			if original == "" || upgraded == "" {
				log.Warn("skipping upgrade record with blank material", "original", r.Original, "upgraded", r.Upgraded)
				continue
			}
			add(original, upgraded, 1)
		}

	case upgradeTriples:
		for _, t := range u.triples {
			original := strings.TrimSpace(t.Original)
			upgraded := strings.TrimSpace(t.Upgraded)
			if original == "" || upgraded == "" {
				log.Warn("skipping upgrade entry with blank material", "original", t.Original, "upgraded", t.Upgraded)
				continue
			}
			if t.Count <= 0 {
				log.Warn("skipping upgrade entry with non-positive count", "original", original, "upgraded", upgraded, "count", t.Count)
				continue
			}
			add(original, upgraded, t.Count)
		}
	}

	out := make([]UpgradeRow, 0, len(order))
	for _, key := range order {
		out = append(out, *rows[key])
	}
	return out
}
