package store

// idSet is the value type of every partitioned secondary index: a set of
// entity ids keyed by the partition key in the owning map.
type idSet map[string]struct{}

func (s idSet) add(id string) {
	s[id] = struct{}{}
}

func (s idSet) remove(id string) {
	delete(s, id)
}

// addToIndex and removeFromIndex are the only ways mutations touch a
// partitioned index, so primary-map updates and index updates stay
// paired at every call site.

func addToIndex(idx map[string]idSet, key, id string) {
	if key == "" {
		return
	}
	set, ok := idx[key]
	if !ok {
		set = make(idSet)
		idx[key] = set
	}
	set.add(id)
}

func removeFromIndex(idx map[string]idSet, key, id string) {
	if set, ok := idx[key]; ok {
		set.remove(id)
		if len(set) == 0 {
			delete(idx, key)
		}
	}
}
