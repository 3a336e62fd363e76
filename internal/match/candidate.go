package match

import (
	"sort"
)

// Member is the part of a class member rename detection looks at: its
// name and a shape key that is equal for members that differ only by name
// (the member digest).
type Member struct {
	Name  string
	Shape string
}

// Candidate pairs a removed member with an added one that may be its rename.
type Candidate struct {
	Removed Member
	Added   Member

	NameScore  float64 // NameSimilarity of the two names
	ShapeMatch bool    // same shape key

	// Score ranks candidates, higher is better.
	Score float64
}

// CandidateList is a ranked list of candidates.
type CandidateList []Candidate

// Scoring weights and acceptance thresholds.
const (
	nameWeight  = 0.6
	shapeWeight = 0.4

	// DefaultMinScore is the minimum score for a pairing to be reported.
	DefaultMinScore = 0.7
	// DefaultMinGap is the minimum lead of the best candidate over the runner-up.
	DefaultMinGap = 0.1
)

// RankRenames scores every added member as a rename of removed and returns
// them by descending score, ties broken by name.
func RankRenames(removed Member, added []Member) CandidateList {
	candidates := make(CandidateList, 0, len(added))
	for _, a := range added {
		nameScore := NameSimilarity(removed.Name, a.Name)
		shape := removed.Shape != "" && removed.Shape == a.Shape

		score := nameScore * nameWeight
		if shape {
			score += shapeWeight
		}

		candidates = append(candidates, Candidate{
			Removed:    removed,
			Added:      a,
			NameScore:  nameScore,
			ShapeMatch: shape,
			Score:      score,
		})
	}
	sort.Sort(candidates)

	return candidates
}

// PairRenames pairs each removed member with at most one added member and
// each added member with at most one removed member. A pair needs the same
// shape and a confident score; removed members are visited in order.
func PairRenames(removed, added []Member, minScore, minGap float64) []Candidate {
	taken := make(map[string]bool, len(added))

	var pairs []Candidate
	for _, r := range removed {
		free := make([]Member, 0, len(added))
		for _, a := range added {
			if !taken[a.Name+"\x00"+a.Shape] {
				free = append(free, a)
			}
		}

		best := RankRenames(r, free).HighConfidence(minScore, minGap)
		if best == nil {
			continue
		}
		taken[best.Added.Name+"\x00"+best.Added.Shape] = true
		pairs = append(pairs, *best)
	}

	return pairs
}

func (c CandidateList) Len() int      { return len(c) }
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Added.Name < c[j].Added.Name
}

// Best returns the best candidate, or nil if the list is empty.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous reports whether the top two candidates are closer than threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	return len(c) >= 2 && c[0].Score-c[1].Score < threshold
}

// HighConfidence returns the best candidate when it has the same shape,
// reaches minScore and leads the runner-up by at least minGap.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	best := c.Best()
	if best == nil || !best.ShapeMatch || best.Score < minScore {
		return nil
	}
	if c.IsAmbiguous(minGap) {
		return nil
	}

	return best
}
