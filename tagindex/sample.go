package tagindex

import "github.com/gfatag/maria/graphmodel"

// Samples holds the run-boundary-sampled tag array: sampled_sa[i] and
// sampled_tag[i] name the start or end of a maximal run of SA
// positions that all resolve to the same graph position.
type Samples struct {
	SA  []int
	Tag []graphmodel.Pos
}

// Sample runs C6 over a C5 SA-order triple stream and the graph's node
// index, producing the run-sampled arrays. Triples that land on a '$'
// path separator (graphmodel.NodeIndex.Locate returns OutOfRange) name
// the designated sentinel graph position and are excluded, exactly as
// if they were never in the stream.
func Sample(triples []Triple, ni *graphmodel.NodeIndex) (*Samples, error) {
	s := &Samples{}

	haveFirst := false
	var prevSA int
	var prevGP graphmodel.Pos

	for _, tr := range triples {
		gp, _, err := ni.Locate(tr.SA)
		if err != nil {
			continue
		}

		if !haveFirst {
			s.SA = append(s.SA, tr.SA)
			s.Tag = append(s.Tag, gp)
			prevSA, prevGP = tr.SA, gp
			haveFirst = true
			continue
		}

		if gp != prevGP {
			s.SA = append(s.SA, prevSA)
			s.Tag = append(s.Tag, prevGP)
			s.SA = append(s.SA, tr.SA)
			s.Tag = append(s.Tag, gp)
		}
		prevSA, prevGP = tr.SA, gp
	}

	if haveFirst {
		s.SA = append(s.SA, prevSA)
		s.Tag = append(s.Tag, prevGP)
	}

	return s, nil
}
