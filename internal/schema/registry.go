package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Entity is one of the twelve BWARM record kinds.
type Entity int

const (
	Works Entity = iota
	AlternativeWorkTitles
	WorkIdentifiers
	Parties
	WorkRightShares
	Recordings
	AlternativeRecordingTitles
	RecordingIdentifiers
	Releases
	ReleaseIdentifiers
	WorkRecordings
	UnclaimedWorkRightShares
)

// ErrUnknownEntity is returned by Lookup for keys that name no entity.
var ErrUnknownEntity = errors.New("unknown entity")

var entityNames = [...]struct {
	name string
	key  string
}{
	Works:                      {"Works", "works"},
	AlternativeWorkTitles:      {"AlternativeWorkTitles", "workalternativetitles"},
	WorkIdentifiers:            {"WorkIdentifiers", "workidentifiers"},
	Parties:                    {"Parties", "parties"},
	WorkRightShares:            {"WorkRightShares", "workrightshares"},
	Recordings:                 {"Recordings", "recordings"},
	AlternativeRecordingTitles: {"AlternativeRecordingTitles", "recordingalternativetitles"},
	RecordingIdentifiers:       {"RecordingIdentifiers", "recordingidentifiers"},
	Releases:                   {"Releases", "releases"},
	ReleaseIdentifiers:         {"ReleaseIdentifiers", "releaseidentifiers"},
	WorkRecordings:             {"WorkRecordings", "worksrecordings"},
	UnclaimedWorkRightShares:   {"UnclaimedWorkRightShares", "unclaimedworkrightshares"},
}

func (e Entity) valid() bool {
	return e >= 0 && int(e) < len(entityNames)
}

// String returns the entity name, e.g. "WorkRightShares".
func (e Entity) String() string {
	if !e.valid() {
		return fmt.Sprintf("Entity(%d)", int(e))
	}
	return entityNames[e].name
}

// Key returns the file stem, which is also the "File" column of the logs.
func (e Entity) Key() string {
	if !e.valid() {
		return strings.ToLower(e.String())
	}
	return entityNames[e].key
}

// FileName returns the snapshot-relative file name, e.g. "works.tsv".
func (e Entity) FileName() string {
	return e.Key() + ".tsv"
}

var (
	registry   = make(map[Entity]*EntitySchema)
	registryMu sync.RWMutex
)

// register adds an entity schema. Panics if the entity is already registered.
func register(e Entity, fields ...FieldSpec) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[e]; exists {
		panic(fmt.Sprintf("schema already registered: %s", e))
	}
	registry[e] = newEntitySchema(e, fields)
}

// Get returns the schema for e.
func Get(e Entity) (*EntitySchema, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	s, ok := registry[e]
	return s, ok
}

// All returns every registered schema in entity order.
func All() []*EntitySchema {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]*EntitySchema, 0, len(registry))
	for _, s := range registry {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Entity < result[j].Entity
	})
	return result
}

// Lookup resolves a file key ("works") or entity name ("Works") to an Entity.
func Lookup(name string) (Entity, error) {
	for i := range entityNames {
		e := Entity(i)
		if name == e.Key() || strings.EqualFold(name, e.String()) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEntity, name)
}

// Count returns the number of registered schemas.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}
