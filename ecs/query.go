package ecs

// intersect returns the ids of base (in base's dense order) that are present
// in every other set.
func intersect(base *SparseSet, others ...*SparseSet) []entityID {
	if base == nil {
		return nil
	}
	for _, o := range others {
		if o == nil || o.Len() == 0 {
			return nil
		}
	}
	out := make([]entityID, 0, base.Len())
	for _, id := range base.ids() {
		keep := true
		for _, o := range others {
			if !o.Has(id) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, id)
		}
	}
	return out
}
