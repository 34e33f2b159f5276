package jmh

// Compare matches records of the old run against the new run and computes a
// Diff for each pair, in old-run order.
//
// Matching drives from old: for each old record the first new record with the
// same name and units wins, and the diff's mode is taken from the new side.
// Unmatched records in either run are dropped without error. The match is not
// one-to-one: duplicate old keys each search independently, so the same new
// record can back more than one diff, and for duplicate new keys the first in
// input order always wins. Downstream output depends on this shape, so it is
// kept as is.
//
// A zero old score makes Delta non-finite; see Diff.Finite.
func Compare(old, new []Record) []Diff {
	var diffs []Diff
	for _, o := range old {
		for _, n := range new {
			if n.Name != o.Name || n.Units != o.Units {
				continue
			}
			diffs = append(diffs, Diff{
				Name:     n.Name,
				Mode:     n.Mode,
				OldScore: o.Score,
				NewScore: n.Score,
				Units:    n.Units,
				Delta:    (n.Score - o.Score) / o.Score,
			})
			break
		}
	}
	return diffs
}
