package types

import (
	"crypto/sha256"
	"encoding/binary"
	"sort"
)

// Computation kind names. These match the encrypted instruction names
// registered with the executor cluster; the numeric definition ID is
// derived from the name, so the set is closed and append-only.
const (
	KindInitEmissionsCertificate = "init_emissions_certificate"
	KindUpdateEmissions          = "update_emissions"
	KindProveThreshold           = "prove_threshold"
	KindInitSemaReport           = "init_sema_report"
	KindUpdateSemaReport         = "update_sema_report"
	KindProveSemaCompliance      = "prove_sema_compliance"
	KindCalculateOffsetPct       = "calculate_offset_percentage"
	KindAddTogether              = "add_together"
)

// Disclosure describes what part of a computation result crosses the
// trust boundary. Proof-style kinds disclose a derived predicate only;
// storage-initialization kinds disclose nothing beyond completion.
type Disclosure int32

const (
	DISCLOSURE_NONE Disclosure = iota
	DISCLOSURE_BOOL
	DISCLOSURE_UINT64
)

func (d Disclosure) String() string {
	switch d {
	case DISCLOSURE_NONE:
		return "none"
	case DISCLOSURE_BOOL:
		return "bool"
	case DISCLOSURE_UINT64:
		return "uint64"
	default:
		return "unknown"
	}
}

// KindSpec is the per-kind configuration record driving the generic
// queue/callback state machine. Kind-specific behavior lives here as
// data, not as per-kind code paths.
type KindSpec struct {
	Name       string
	Id         uint32
	Disclosure Disclosure
	EventType  string
}

// CompDefOffset derives the stable numeric identifier for a kind name:
// the first four bytes of SHA-256 of the name, big endian.
func CompDefOffset(name string) uint32 {
	h := sha256.Sum256([]byte(name))
	return binary.BigEndian.Uint32(h[:4])
}

var (
	kindsByName map[string]KindSpec
	kindsByID   map[uint32]KindSpec
)

func init() {
	specs := []KindSpec{
		{Name: KindInitEmissionsCertificate, Disclosure: DISCLOSURE_NONE, EventType: EventTypeEmissionsCertificateInitialized},
		{Name: KindUpdateEmissions, Disclosure: DISCLOSURE_NONE, EventType: EventTypeEmissionsUpdated},
		{Name: KindProveThreshold, Disclosure: DISCLOSURE_BOOL, EventType: EventTypeThresholdProved},
		{Name: KindInitSemaReport, Disclosure: DISCLOSURE_NONE, EventType: EventTypeSemaReportInitialized},
		{Name: KindUpdateSemaReport, Disclosure: DISCLOSURE_NONE, EventType: EventTypeSemaReportUpdated},
		{Name: KindProveSemaCompliance, Disclosure: DISCLOSURE_BOOL, EventType: EventTypeSemaComplianceProved},
		{Name: KindCalculateOffsetPct, Disclosure: DISCLOSURE_UINT64, EventType: EventTypeOffsetPercentageCalculated},
		{Name: KindAddTogether, Disclosure: DISCLOSURE_UINT64, EventType: EventTypeAdditionComputed},
	}

	kindsByName = make(map[string]KindSpec, len(specs))
	kindsByID = make(map[uint32]KindSpec, len(specs))
	for _, s := range specs {
		s.Id = CompDefOffset(s.Name)
		if _, exists := kindsByID[s.Id]; exists {
			panic("computation kind ID collision: " + s.Name)
		}
		kindsByName[s.Name] = s
		kindsByID[s.Id] = s
	}
}

// KindByName looks up a kind spec by its stable name.
func KindByName(name string) (KindSpec, bool) {
	s, ok := kindsByName[name]
	return s, ok
}

// KindByID looks up a kind spec by its derived numeric identifier.
func KindByID(id uint32) (KindSpec, bool) {
	s, ok := kindsByID[id]
	return s, ok
}

// Kinds returns all registered kind specs sorted by name.
func Kinds() []KindSpec {
	out := make([]KindSpec, 0, len(kindsByName))
	for _, s := range kindsByName {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
