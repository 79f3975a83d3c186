package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ClusterSummary is the canonical, order-independent reduction of all tasks
// observed in one poll cycle. Two polls that return the same tasks in any
// order produce equal summaries.
//
// Equality is defined by Count and Digest. The digest covers, per task:
// TaskID, DefinitionVersion, DesiredStatus, LastStatus, Group, Images, and
// Health. Timestamps deliberately do not participate, so wall-clock drift
// between polls never registers as a change.
type ClusterSummary struct {
	// Count is the number of tasks observed.
	Count int
	// Digest is the xxhash fold of the per-task fingerprints in canonical
	// (TaskID-sorted) order.
	Digest uint64
	// Records holds the observed tasks in display order: oldest first,
	// ties broken by TaskID.
	Records []TaskRecord
	// PolledAt is when the cycle that produced this summary ran. It does
	// not participate in equality.
	PolledAt time.Time
}

// Summarize reduces one cycle's task records into a ClusterSummary.
// It is a pure function of its inputs: no I/O, deterministic, and
// insensitive to the ordering of records. An empty record set produces the
// well-defined empty-cluster summary, which is distinct from "no poll has
// succeeded yet" (a nil summary pointer in the watch loop).
func Summarize(polledAt time.Time, records []TaskRecord) ClusterSummary {
	canonical := slices.Clone(records)
	slices.SortFunc(canonical, func(a, b TaskRecord) int {
		return strings.Compare(a.TaskID, b.TaskID)
	})

	digest := xxhash.New()
	for _, r := range canonical {
		writeFingerprint(digest, r)
	}

	display := slices.Clone(records)
	slices.SortFunc(display, func(a, b TaskRecord) int {
		if c := a.StartedAt.Compare(b.StartedAt); c != 0 {
			return c
		}
		return strings.Compare(a.TaskID, b.TaskID)
	})

	return ClusterSummary{
		Count:    len(records),
		Digest:   digest.Sum64(),
		Records:  display,
		PolledAt: polledAt,
	}
}

// Equal reports whether two summaries describe the same cluster state.
func (s ClusterSummary) Equal(o ClusterSummary) bool {
	return s.Count == o.Count && s.Digest == o.Digest
}

// writeFingerprint writes one task's change-relevant fields into the digest.
// Fields are NUL-separated and sections are NUL-terminated so that adjacent
// values can never collide by concatenation.
func writeFingerprint(digest *xxhash.Digest, r TaskRecord) {
	_, _ = digest.WriteString(r.TaskID)
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(r.DefinitionVersion)
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(r.DesiredStatus)
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(r.LastStatus)
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(r.Group)
	_, _ = digest.Write([]byte{0})

	for _, image := range r.Images {
		_, _ = digest.WriteString(image)
		_, _ = digest.Write([]byte{0})
	}
	_, _ = digest.Write([]byte{0})

	_, _ = digest.WriteString(r.Health)
	_, _ = digest.Write([]byte{0})
}
