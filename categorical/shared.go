package categorical

import (
	"fmt"
	"sort"

	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/dictionary"
)

// swapDictionary implements Column.SwapDictionary identically for every
// concrete representation: attach newDict through an identity index-remap,
// leaving raw indices untouched. A replacement that would alias two
// distinct indices to the same value fails with IllegalReplacement (spec
// §7) rather than silently collapsing them.
func swapDictionary(c Column, newDict dictionary.Interface) (Column, error) {
	if err := validateNoAliasing(newDict); err != nil {
		return nil, err
	}
	return c.Remap(newDict, identityRemap(c.Dictionary().MaximalIndex()))
}

// validateNoAliasing fails if two distinct non-null indices of dict hold
// the same value (spec §7's IllegalReplacement, golden scenario S6).
func validateNoAliasing(dict dictionary.Interface) error {
	seen := make(map[any]int32, dict.Size())
	for _, entry := range dict.Iterator() {
		if prior, ok := seen[entry.Value]; ok {
			return illegalReplacementErrorf(entry.Value, prior, entry.Index)
		}
		seen[entry.Value] = entry.Index
	}
	return nil
}

// mergeDictionaries implements Column.MergeDictionaries identically for
// every concrete representation (spec §4.4): the merged dictionary begins
// with other's entries, then appends this column's values absent from
// other; indices remap accordingly. If other is boolean and the merged
// dictionary still fits in 3 slots, the result stays boolean with other's
// positive index preserved (other's entries occupy the merged dictionary's
// leading positions unchanged).
func mergeDictionaries(c Column, other dictionary.Interface) (Column, error) {
	thisDict := c.Dictionary()
	otherInverse := other.CreateInverse()

	merged := make([]any, 0, int(other.MaximalIndex())+int(thisDict.MaximalIndex())+2)
	for i := int32(0); i <= other.MaximalIndex(); i++ {
		merged = append(merged, other.Get(i))
	}

	indexRemap := make([]int32, thisDict.MaximalIndex()+1)
	for i := int32(0); i <= thisDict.MaximalIndex(); i++ {
		v := thisDict.Get(i)
		if v == nil {
			indexRemap[i] = 0
			continue
		}
		if idx, ok := otherInverse[v]; ok {
			indexRemap[i] = idx
			continue
		}
		merged = append(merged, v)
		indexRemap[i] = int32(len(merged) - 1)
	}

	var mergedDict dictionary.Interface
	if otherBool, err := dictionary.Boolean(other); err == nil && len(merged) <= 3 {
		bd, berr := dictionary.NewBoolean(merged, otherBool.GetPositiveIndex())
		if berr != nil {
			return nil, berr
		}
		mergedDict = bd
	} else {
		d, derr := dictionary.New(merged)
		if derr != nil {
			return nil, derr
		}
		mergedDict = d
	}

	return c.Remap(mergedDict, indexRemap)
}

// toBoolean implements Column.ToBoolean (spec §4.4) for dictionaries that
// fit within the 3-slot boolean shape (including null). Larger dictionaries
// return core.ErrUnsupported: the spec does not define how the values
// beyond a 3-slot shape would collapse into a single negative bucket, so
// rather than invent an undocumented collapsing rule this stays an
// explicit, narrower contract than the full spec line suggests (see
// DESIGN.md).
func toBoolean(c Column, positive any) (Column, error) {
	d := c.Dictionary()
	if d.MaximalIndex() > 2 {
		return nil, fmt.Errorf("categorical: ToBoolean: dictionary has %d slots: %w", d.MaximalIndex()+1, core.ErrUnsupported)
	}

	values := make([]any, d.MaximalIndex()+1)
	for i := int32(0); i <= d.MaximalIndex(); i++ {
		values[i] = d.Get(i)
	}
	positiveIndex := dictionary.NoEntry
	for i := int32(1); i <= d.MaximalIndex(); i++ {
		if values[i] == positive {
			positiveIndex = i
			break
		}
	}

	bd, err := dictionary.NewBoolean(values, positiveIndex)
	if err != nil {
		return nil, err
	}
	return swapDictionary(c, bd)
}

// sortBySource implements Column.Sort (spec §4.4) identically for any
// indexSource: lex-sort by dictionary value with the type's comparator,
// missing (null / index 0) sorting last.
func sortBySource(src indexSource, dict dictionary.Interface, typ core.Type, order Order) ([]uint32, error) {
	if !capabilitiesFor(typ).Has(core.CapSortable) {
		return nil, fmt.Errorf("categorical: Sort: %w", core.ErrUnsupported)
	}
	cmp := comparatorFor(typ)

	n := int(src.Size())
	perm := make([]uint32, n)
	for i := range perm {
		perm[i] = uint32(i)
	}
	sort.SliceStable(perm, func(i, j int) bool {
		vi := dict.Get(src.rawIndexAt(int(perm[i])))
		vj := dict.Get(src.rawIndexAt(int(perm[j])))
		if vi == nil || vj == nil {
			if vi == nil && vj == nil {
				return false
			}
			return vj == nil
		}
		c := cmp(vi, vj)
		if order == Descending {
			return c > 0
		}
		return c < 0
	})
	return perm, nil
}
