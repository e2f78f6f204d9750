package insights

import (
	"math"
	"strings"
	"time"

	"backstage/internal/domain"
)

const day = 24 * time.Hour

// Snapshot holds the records one scan looks at. A nil slice means the
// collection could not be read; checks that need it are skipped.
type Snapshot struct {
	Artists      []domain.Artist
	Contracts    []domain.Contract
	Releases     []domain.Release
	Transactions []domain.Transaction
	Projects     []domain.Project
	Works        []domain.Work
	Goals        []domain.Goal
	Events       []domain.Event
}

// Scan runs every check over snap and returns the findings. It never
// modifies snap and uses now as the single time reference of the run.
func Scan(snap Snapshot, now time.Time) domain.Analysis {
	s := &scan{now: now, snap: snap}
	s.out.Insights = []domain.Insight{}
	s.out.Inconsistencies = []domain.Insight{}
	s.out.Opportunities = []domain.Insight{}
	s.out.Alerts = []domain.Insight{}
	for _, check := range checks {
		check(s)
	}
	return s.out
}

type scan struct {
	now  time.Time
	snap Snapshot
	out  domain.Analysis

	// lazily built indexes
	indexed         bool
	releasesBy      map[string]int
	activeContracts map[string]int
	goalsBy         map[string]int
	projectsBy      map[string]int
}

var checks = []func(*scan){
	(*scan).contractsExpiring,
	(*scan).contractsMissingValue,
	(*scan).artistsWithoutActiveContract,
	(*scan).artistsWithoutGoals,
	(*scan).artistsIncompleteSocial,
	(*scan).artistsMisplacedLinks,
	(*scan).releasesMissingDate,
	(*scan).releasesUnprepared,
	(*scan).overdueTransactions,
	(*scan).worksMissingISRC,
	(*scan).worksMissingParticipants,
	(*scan).projectsMissingDeadline,
	(*scan).eventsMissingVenue,
	(*scan).releaseGrowth,
	(*scan).crossSell,
}

func (s *scan) add(in domain.Insight) {
	if in.RelatedEntities == nil {
		in.RelatedEntities = []domain.EntityRef{}
	}
	switch in.Category {
	case domain.CategoryAlert:
		s.out.Alerts = append(s.out.Alerts, in)
	case domain.CategoryInconsistency:
		s.out.Inconsistencies = append(s.out.Inconsistencies, in)
	case domain.CategoryOpportunity:
		s.out.Opportunities = append(s.out.Opportunities, in)
	default:
		s.out.Insights = append(s.out.Insights, in)
	}
	s.out.Summary.Total++
	switch in.Severity {
	case domain.SeverityCritical:
		s.out.Summary.Critical++
	case domain.SeverityWarning:
		s.out.Summary.Warning++
	default:
		s.out.Summary.Info++
	}
}

// index counts per-artist relations once per run.
func (s *scan) index() {
	if s.indexed {
		return
	}
	s.indexed = true
	s.releasesBy = map[string]int{}
	s.activeContracts = map[string]int{}
	s.goalsBy = map[string]int{}
	s.projectsBy = map[string]int{}
	for _, r := range s.snap.Releases {
		if r.ArtistID != nil {
			s.releasesBy[*r.ArtistID]++
		}
	}
	for _, c := range s.snap.Contracts {
		if c.ArtistID != nil && c.Status == domain.ContractStatusActive {
			s.activeContracts[*c.ArtistID]++
		}
	}
	for _, g := range s.snap.Goals {
		s.goalsBy[g.ArtistID]++
	}
	for _, p := range s.snap.Projects {
		if p.ArtistID != nil {
			s.projectsBy[*p.ArtistID]++
		}
	}
}

// daysUntil rounds the distance to d up to whole days: 0 is today,
// negative is past.
func daysUntil(d, now time.Time) int {
	return int(math.Ceil(float64(d.Sub(now)) / float64(day)))
}

func blank(p *string) bool {
	return p == nil || strings.TrimSpace(*p) == ""
}

func ref(typ, id, name string) []domain.EntityRef {
	return []domain.EntityRef{{Type: typ, ID: id, Name: name}}
}

func action(s string) *string { return &s }
