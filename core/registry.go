package core

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Comparator orders two domain values of an object column's element type.
// It returns a negative number, zero, or a positive number as a < b, a == b,
// or a > b. Comparator is nil for object types that do not support Sort.
type Comparator func(a, b any) int

// ColumnType is the static, process-wide-immutable description of a Type:
// its category, an optional comparator (object types only; numeric,
// temporal and categorical types carry their own built-in ordering), and
// the capability bits computed from category and comparator presence.
type ColumnType struct {
	id           Type
	category     Category
	comparator   Comparator
	capabilities Capability
}

// ID returns the Type this ColumnType describes.
func (ct ColumnType) ID() Type { return ct.id }

// Category returns the broad family this Type belongs to.
func (ct ColumnType) Category() Category { return ct.category }

// Comparator returns the ordering function for this Type, or nil if Sort is
// unsupported (object types registered without one).
func (ct ColumnType) Comparator() Comparator { return ct.comparator }

// Capabilities returns the capability bits computed at registration time.
func (ct ColumnType) Capabilities() Capability { return ct.capabilities }

// Equal reports structural equality: two ColumnType values describe the same
// type iff their id, category and capabilities agree (comparators are
// functions and therefore excluded from equality by convention).
func (ct ColumnType) Equal(other ColumnType) bool {
	return ct.id == other.id && ct.category == other.category && ct.capabilities == other.capabilities
}

func capabilitiesFor(category Category, cmp Comparator) Capability {
	var caps Capability
	switch category {
	case CategoryNumeric:
		caps |= CapNumericReadable | CapSortable
	case CategoryCategorical:
		caps |= CapNumericReadable | CapObjectReadable | CapSortable
	case CategoryObject:
		caps |= CapObjectReadable
	}
	if cmp != nil {
		caps |= CapSortable
	}
	return caps
}

var (
	registryMu sync.RWMutex
	registry   = map[Type]ColumnType{
		TypeReal:         {id: TypeReal, category: CategoryNumeric, capabilities: capabilitiesFor(CategoryNumeric, nil)},
		TypeInteger53Bit: {id: TypeInteger53Bit, category: CategoryNumeric, capabilities: capabilitiesFor(CategoryNumeric, nil)},
		TypeTime:         {id: TypeTime, category: CategoryNumeric, capabilities: capabilitiesFor(CategoryNumeric, nil)},
		TypeDateTime:     {id: TypeDateTime, category: CategoryNumeric, capabilities: capabilitiesFor(CategoryNumeric, nil)},
		TypeNominal:      {id: TypeNominal, category: CategoryCategorical, capabilities: capabilitiesFor(CategoryCategorical, nil)},
		TypeText:         {id: TypeText, category: CategoryCategorical, capabilities: capabilitiesFor(CategoryCategorical, nil)},
		TypeTextSet:      {id: TypeTextSet, category: CategoryObject, capabilities: capabilitiesFor(CategoryObject, nil)},
		TypeTextList:     {id: TypeTextList, category: CategoryObject, capabilities: capabilitiesFor(CategoryObject, nil)},
	}
	customNames    sync.Map // Type -> string
	nextCustomType atomic.Uint32
)

func init() {
	nextCustomType.Store(uint32(firstCustomType))
}

// Lookup returns the ColumnType registered for t, or false if t is unknown.
// Complexity: O(1) (read-locked map access).
func Lookup(t Type) (ColumnType, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ct, ok := registry[t]
	return ct, ok
}

// MustLookup is Lookup but panics on an unregistered Type. Intended for
// internal call sites that only ever pass built-in or previously-registered
// custom types; an unregistered Type reaching here is a programmer error,
// not a user-triggered one.
func MustLookup(t Type) ColumnType {
	ct, ok := Lookup(t)
	if !ok {
		panic(fmt.Sprintf("core: unregistered column type %d", uint16(t)))
	}
	return ct
}

// RegisterObjectType allocates a fresh Type for an application-defined
// object column (spec §3: "plus custom object types") and registers it
// under CategoryObject with the given name and optional comparator. The
// returned Type is stable and distinct from every built-in and
// previously-registered custom type for the lifetime of the process.
//
// Complexity: O(1).
func RegisterObjectType(name string, cmp Comparator) Type {
	id := Type(nextCustomType.Add(1) - 1)
	customNames.Store(id, name)

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[id] = ColumnType{
		id:           id,
		category:     CategoryObject,
		comparator:   cmp,
		capabilities: capabilitiesFor(CategoryObject, cmp),
	}
	return id
}

func customTypeName(t Type) (string, bool) {
	v, ok := customNames.Load(t)
	if !ok {
		return "", false
	}
	return v.(string), true
}
