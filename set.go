package vesting

// stringSet is a hash-set with O(1) membership and removal. The ledger keeps
// three of them: the global beneficiary set, the global assets-in-use set,
// and one per-beneficiary asset set.
type stringSet map[string]struct{}

func newStringSet() stringSet { return make(stringSet) }

func (s stringSet) add(v string)      { s[v] = struct{}{} }
func (s stringSet) remove(v string)   { delete(s, v) }
func (s stringSet) has(v string) bool { _, ok := s[v]; return ok }
func (s stringSet) empty() bool       { return len(s) == 0 }

// values returns the members in unspecified order.
func (s stringSet) values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}
