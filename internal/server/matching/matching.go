// Package matching ranks candidate users by how many of the subject's
// interests they share.
//
// The score is asymmetric: it answers "what fraction of my interests does
// this candidate share", so the denominator is always the subject's set size.
package matching

import (
	"math"
	"sort"

	"github.com/dmitrijs2005/campusmatch/internal/server/models"
)

// Match is one ranked candidate.
type Match struct {
	ID              int64
	Name            string
	Mission         string
	MatchPercent    float64
	SharedInterests []string
}

// Rank scores candidates against subject and returns those sharing at least
// one interest, sorted by MatchPercent descending. Candidates with equal
// percentages keep the order they were passed in.
//
// Rank does not filter by faculty or exclude the subject; callers pass an
// already partitioned candidate pool.
func Rank(subject *models.User, candidates []*models.User) []Match {
	n := subject.Interests.Len()
	if n == 0 {
		return []Match{}
	}

	result := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		shared := subject.Interests.Intersect(c.Interests)
		if len(shared) == 0 {
			continue
		}
		result = append(result, Match{
			ID:              c.ID,
			Name:            c.Name,
			Mission:         c.Mission,
			MatchPercent:    Percent(len(shared), n),
			SharedInterests: shared,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].MatchPercent > result[j].MatchPercent
	})

	return result
}

// Percent returns shared/total*100 rounded half-to-even to one decimal place.
// total must be positive.
func Percent(shared, total int) float64 {
	pct := float64(shared) / float64(total) * 100
	return math.RoundToEven(pct*10) / 10
}
