package insights

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"backstage/internal/domain"
)

const (
	expiryWindowDays   = 30
	expiryCriticalDays = 7
	releaseWindowDays  = 14
	eventWindowDays    = 7
)

func (s *scan) contractsExpiring() {
	for _, c := range s.snap.Contracts {
		if c.EndDate == nil {
			continue
		}
		days := daysUntil(*c.EndDate, s.now)
		if days <= 0 || days > expiryWindowDays {
			continue
		}
		sev := domain.SeverityWarning
		if days <= expiryCriticalDays {
			sev = domain.SeverityCritical
		}
		s.add(domain.Insight{
			ID:              "contract-expiring-" + c.ID,
			Category:        domain.CategoryAlert,
			Severity:        sev,
			Title:           "Contract expiring soon",
			Description:     fmt.Sprintf("Contract %q expires in %d days.", c.Title, days),
			Module:          "Contracts",
			Actionable:      true,
			SuggestedAction: action("Review the terms and start the renewal conversation."),
			RelatedEntities: ref("contract", c.ID, c.Title),
		})
	}
}

func (s *scan) contractsMissingValue() {
	for _, c := range s.snap.Contracts {
		if c.Status != domain.ContractStatusActive {
			continue
		}
		hasValue := c.Value != nil && !c.Value.IsZero()
		hasRate := c.RoyaltyRate != nil && *c.RoyaltyRate != 0
		if hasValue || hasRate {
			continue
		}
		s.add(domain.Insight{
			ID:              "contract-missing-value-" + c.ID,
			Category:        domain.CategoryInconsistency,
			Severity:        domain.SeverityWarning,
			Title:           "Active contract without financial terms",
			Description:     fmt.Sprintf("Contract %q is active but has neither a value nor a royalty rate.", c.Title),
			Module:          "Contracts",
			Actionable:      true,
			SuggestedAction: action("Fill in the contract value or royalty rate."),
			RelatedEntities: ref("contract", c.ID, c.Title),
		})
	}
}

func (s *scan) artistsWithoutActiveContract() {
	if s.snap.Artists == nil || s.snap.Releases == nil || s.snap.Contracts == nil {
		return
	}
	s.index()
	for _, a := range s.snap.Artists {
		if s.releasesBy[a.ID] == 0 || s.activeContracts[a.ID] > 0 {
			continue
		}
		s.add(domain.Insight{
			ID:              "artist-without-contract-" + a.ID,
			Category:        domain.CategoryInconsistency,
			Severity:        domain.SeverityWarning,
			Title:           "Artist with releases but no active contract",
			Description:     fmt.Sprintf("%s has %d release(s) and no active contract.", a.Name, s.releasesBy[a.ID]),
			Module:          "Artists",
			Actionable:      true,
			SuggestedAction: action("Register or renew the artist contract."),
			RelatedEntities: ref("artist", a.ID, a.Name),
		})
	}
}

func (s *scan) artistsWithoutGoals() {
	if s.snap.Artists == nil || s.snap.Contracts == nil || s.snap.Goals == nil {
		return
	}
	s.index()
	for _, a := range s.snap.Artists {
		if s.activeContracts[a.ID] == 0 || s.goalsBy[a.ID] > 0 {
			continue
		}
		s.add(domain.Insight{
			ID:              "artist-without-goals-" + a.ID,
			Category:        domain.CategoryOpportunity,
			Severity:        domain.SeverityInfo,
			Title:           "Contracted artist without goals",
			Description:     fmt.Sprintf("%s is under contract but has no career goals defined.", a.Name),
			Module:          "Artists",
			Actionable:      true,
			SuggestedAction: action("Define goals with the artist for the contract period."),
			RelatedEntities: ref("artist", a.ID, a.Name),
		})
	}
}

func (s *scan) artistsIncompleteSocial() {
	for _, a := range s.snap.Artists {
		if !blank(a.InstagramURL) || !blank(a.SpotifyURL) || !blank(a.YoutubeURL) {
			continue
		}
		s.add(domain.Insight{
			ID:              "artist-incomplete-social-" + a.ID,
			Category:        domain.CategoryInconsistency,
			Severity:        domain.SeverityInfo,
			Title:           "Incomplete social profile",
			Description:     fmt.Sprintf("%s has no Instagram, Spotify or YouTube link.", a.Name),
			Module:          "Artists",
			Actionable:      true,
			SuggestedAction: action("Add the artist's social and streaming links."),
			RelatedEntities: ref("artist", a.ID, a.Name),
		})
	}
}

func (s *scan) artistsMisplacedLinks() {
	for _, a := range s.snap.Artists {
		bad := misplacedLinks(a)
		if len(bad) == 0 {
			continue
		}
		s.add(domain.Insight{
			ID:              "artist-misplaced-links-" + a.ID,
			Category:        domain.CategoryInconsistency,
			Severity:        domain.SeverityInfo,
			Title:           "Social link points to the wrong platform",
			Description:     fmt.Sprintf("%s: %s.", a.Name, joinList(bad)),
			Module:          "Artists",
			Actionable:      true,
			SuggestedAction: action("Correct the artist's profile links."),
			RelatedEntities: ref("artist", a.ID, a.Name),
		})
	}
}

func (s *scan) releasesMissingDate() {
	for _, r := range s.snap.Releases {
		if r.ReleaseDate != nil || r.Status == domain.ReleaseStatusCancelled {
			continue
		}
		s.add(domain.Insight{
			ID:              "release-missing-date-" + r.ID,
			Category:        domain.CategoryInconsistency,
			Severity:        domain.SeverityWarning,
			Title:           "Release without a date",
			Description:     fmt.Sprintf("Release %q has no release date.", r.Title),
			Module:          "Releases",
			Actionable:      true,
			SuggestedAction: action("Schedule a release date."),
			RelatedEntities: ref("release", r.ID, r.Title),
		})
	}
}

func (s *scan) releasesUnprepared() {
	for _, r := range s.snap.Releases {
		if r.ReleaseDate == nil || r.Status != domain.ReleaseStatusPlanning {
			continue
		}
		days := daysUntil(*r.ReleaseDate, s.now)
		if days <= 0 || days > releaseWindowDays {
			continue
		}
		s.add(domain.Insight{
			ID:              "release-unprepared-" + r.ID,
			Category:        domain.CategoryAlert,
			Severity:        domain.SeverityCritical,
			Title:           "Release date close, still in planning",
			Description:     fmt.Sprintf("Release %q goes out in %d days and is still in planning.", r.Title, days),
			Module:          "Releases",
			Actionable:      true,
			SuggestedAction: action("Move production forward or reschedule the release."),
			RelatedEntities: ref("release", r.ID, r.Title),
		})
	}
}

func (s *scan) overdueTransactions() {
	var (
		total   decimal.Decimal
		related []domain.EntityRef
	)
	for _, t := range s.snap.Transactions {
		if t.Status != domain.TransactionStatusPending || !t.Date.Before(s.now) {
			continue
		}
		total = total.Add(t.Amount)
		related = append(related, domain.EntityRef{Type: "transaction", ID: t.ID, Name: t.Description})
	}
	if len(related) == 0 {
		return
	}
	s.add(domain.Insight{
		ID:              "overdue-transactions",
		Category:        domain.CategoryAlert,
		Severity:        domain.SeverityCritical,
		Title:           "Overdue transactions",
		Description:     fmt.Sprintf("%d pending transaction(s) past due, totalling %s.", len(related), total.StringFixed(2)),
		Module:          "Finance",
		Actionable:      true,
		SuggestedAction: action("Settle or reschedule the overdue transactions."),
		RelatedEntities: related,
	})
}

func (s *scan) worksMissingISRC() {
	for _, w := range s.snap.Works {
		if w.Status != domain.WorkStatusRegistered || !blank(w.ISRC) {
			continue
		}
		s.add(domain.Insight{
			ID:              "work-missing-isrc-" + w.ID,
			Category:        domain.CategoryInconsistency,
			Severity:        domain.SeverityWarning,
			Title:           "Registered work without ISRC",
			Description:     fmt.Sprintf("Work %q is registered but has no ISRC.", w.Title),
			Module:          "Registry",
			Actionable:      true,
			SuggestedAction: action("Request or fill in the ISRC code."),
			RelatedEntities: ref("work", w.ID, w.Title),
		})
	}
}

func (s *scan) worksMissingParticipants() {
	for _, w := range s.snap.Works {
		if len(w.Participants) > 0 {
			continue
		}
		s.add(domain.Insight{
			ID:              "work-missing-participants-" + w.ID,
			Category:        domain.CategoryInconsistency,
			Severity:        domain.SeverityWarning,
			Title:           "Work without participants",
			Description:     fmt.Sprintf("Work %q has no composers or performers registered.", w.Title),
			Module:          "Registry",
			Actionable:      true,
			SuggestedAction: action("Register the participants and their splits."),
			RelatedEntities: ref("work", w.ID, w.Title),
		})
	}
}

func (s *scan) projectsMissingDeadline() {
	for _, p := range s.snap.Projects {
		if p.Status != domain.ProjectStatusInProgress || p.EndDate != nil {
			continue
		}
		s.add(domain.Insight{
			ID:              "project-missing-deadline-" + p.ID,
			Category:        domain.CategoryInconsistency,
			Severity:        domain.SeverityInfo,
			Title:           "Project in progress without deadline",
			Description:     fmt.Sprintf("Project %q is in progress and has no end date.", p.Name),
			Module:          "Projects",
			Actionable:      true,
			SuggestedAction: action("Set a deadline for the project."),
			RelatedEntities: ref("project", p.ID, p.Name),
		})
	}
}

func (s *scan) eventsMissingVenue() {
	for _, e := range s.snap.Events {
		days := daysUntil(e.StartDate, s.now)
		if days < 0 || days > eventWindowDays {
			continue
		}
		if !blank(e.VenueName) && !blank(e.Location) {
			continue
		}
		s.add(domain.Insight{
			ID:              "event-missing-venue-" + e.ID,
			Category:        domain.CategoryInconsistency,
			Severity:        domain.SeverityWarning,
			Title:           "Upcoming event without venue",
			Description:     fmt.Sprintf("Event %q happens in %d days and has no venue or location.", e.Title, days),
			Module:          "Agenda",
			Actionable:      true,
			SuggestedAction: action("Confirm the venue and address."),
			RelatedEntities: ref("event", e.ID, e.Title),
		})
	}
}

func (s *scan) releaseGrowth() {
	now := s.now.UTC()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth := thisMonth.AddDate(0, -1, 0)
	nextMonth := thisMonth.AddDate(0, 1, 0)

	var current, previous int
	for _, r := range s.snap.Releases {
		if r.ReleaseDate == nil {
			continue
		}
		d := r.ReleaseDate.UTC()
		switch {
		case !d.Before(thisMonth) && d.Before(nextMonth):
			current++
		case !d.Before(lastMonth) && d.Before(thisMonth):
			previous++
		}
	}
	if previous == 0 || current <= previous {
		return
	}
	growth := float64(current-previous) / float64(previous) * 100
	s.add(domain.Insight{
		ID:          "release-growth-" + thisMonth.Format("2006-01"),
		Category:    domain.CategoryInsight,
		Severity:    domain.SeverityInfo,
		Title:       "Release volume growing",
		Description: fmt.Sprintf("%d releases this month against %d last month (+%.0f%%).", current, previous, growth),
		Module:      "Releases",
	})
}

func (s *scan) crossSell() {
	if s.snap.Artists == nil || s.snap.Releases == nil || s.snap.Projects == nil {
		return
	}
	s.index()
	for _, a := range s.snap.Artists {
		if s.releasesBy[a.ID] == 0 || s.projectsBy[a.ID] > 0 {
			continue
		}
		s.add(domain.Insight{
			ID:              "cross-sell-" + a.ID,
			Category:        domain.CategoryOpportunity,
			Severity:        domain.SeverityInfo,
			Title:           "Artist without projects",
			Description:     fmt.Sprintf("%s has releases but no project running.", a.Name),
			Module:          "Projects",
			Actionable:      true,
			SuggestedAction: action("Propose a new project: tour, music video or sync pitch."),
			RelatedEntities: ref("artist", a.ID, a.Name),
		})
	}
}
