package insights

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backstage/internal/domain"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func ids(in []domain.Insight) []string {
	out := make([]string, 0, len(in))
	for _, i := range in {
		out = append(out, i.ID)
	}
	return out
}

func allFindings(a domain.Analysis) []domain.Insight {
	var out []domain.Insight
	out = append(out, a.Insights...)
	out = append(out, a.Inconsistencies...)
	out = append(out, a.Opportunities...)
	out = append(out, a.Alerts...)
	return out
}

func find(a domain.Analysis, id string) (domain.Insight, bool) {
	for _, i := range allFindings(a) {
		if i.ID == id {
			return i, true
		}
	}
	return domain.Insight{}, false
}

func fixture() Snapshot {
	return Snapshot{
		Artists: []domain.Artist{
			{ID: "a1", Name: "Luna Vega", InstagramURL: ptr("https://instagram.com/lunavega")},
			{ID: "a2", Name: "Os Ruidos"},
			{ID: "a3", Name: "Marta Sol", SpotifyURL: ptr("https://open.spotify.com/artist/x"), YoutubeURL: ptr("https://instagram.com/martasol")},
		},
		Contracts: []domain.Contract{
			{ID: "c1", ArtistID: ptr("a1"), Title: "Luna recording deal", Status: domain.ContractStatusActive,
				Value: ptr(decimal.NewFromInt(50000)), EndDate: ptr(now.Add(5 * day))},
			{ID: "c2", ArtistID: ptr("a3"), Title: "Marta publishing", Status: domain.ContractStatusActive},
		},
		Releases: []domain.Release{
			{ID: "r1", ArtistID: ptr("a1"), Title: "Night Drive", Status: domain.ReleaseStatusPlanning, ReleaseDate: ptr(now.Add(10 * day))},
			{ID: "r2", ArtistID: ptr("a2"), Title: "Barulho", Status: "released", ReleaseDate: ptr(now.AddDate(0, -1, 0))},
			{ID: "r3", ArtistID: ptr("a2"), Title: "Untitled", Status: domain.ReleaseStatusPlanning},
			{ID: "r4", ArtistID: ptr("a2"), Title: "Shelved", Status: domain.ReleaseStatusCancelled},
		},
		Transactions: []domain.Transaction{
			{ID: "t1", Description: "Studio rent", Amount: decimal.RequireFromString("200.25"), Status: domain.TransactionStatusPending, Date: now.Add(-3 * day)},
			{ID: "t2", Description: "Mastering", Amount: decimal.RequireFromString("150.25"), Status: domain.TransactionStatusPending, Date: now.Add(-1 * time.Hour)},
			{ID: "t3", Description: "Merch", Amount: decimal.NewFromInt(90), Status: domain.TransactionStatusPending, Date: now.Add(day)},
			{ID: "t4", Description: "Royalties", Amount: decimal.NewFromInt(900), Status: "paid", Date: now.Add(-10 * day)},
		},
		Projects: []domain.Project{
			{ID: "p1", ArtistID: ptr("a1"), Name: "Summer tour", Status: domain.ProjectStatusInProgress},
		},
		Works: []domain.Work{
			{ID: "w1", Title: "Night Drive", Status: domain.WorkStatusRegistered, Participants: []domain.Participant{{Name: "Luna", Role: "composer", Share: 100}}},
			{ID: "w2", Title: "Barulho", Status: "pending", ISRC: ptr("BRXXX2600001")},
		},
		Goals: []domain.Goal{
			{ID: "g1", ArtistID: "a1", Title: "1M streams"},
		},
		Events: []domain.Event{
			{ID: "e1", Title: "Release party", StartDate: now.Add(3 * day), VenueName: ptr("Blue Note"), Location: ptr("Rio de Janeiro")},
			{ID: "e2", Title: "Festival", StartDate: now.Add(20 * day)},
		},
	}
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 0, daysUntil(now, now))
	assert.Equal(t, 1, daysUntil(now.Add(time.Minute), now))
	assert.Equal(t, 7, daysUntil(now.Add(7*day), now))
	assert.Equal(t, 0, daysUntil(now.Add(-time.Hour), now))
	assert.Equal(t, -1, daysUntil(now.Add(-25*time.Hour), now))
}

func TestContractExpiryBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		end      time.Time
		want     bool
		severity domain.Severity
	}{
		{name: "seven days is critical", end: now.Add(7 * day), want: true, severity: domain.SeverityCritical},
		{name: "eight days is warning", end: now.Add(8 * day), want: true, severity: domain.SeverityWarning},
		{name: "thirty days is warning", end: now.Add(30 * day), want: true, severity: domain.SeverityWarning},
		{name: "thirty one days is ignored", end: now.Add(31 * day), want: false},
		{name: "already expired is ignored", end: now.Add(-1 * day), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Snapshot{Contracts: []domain.Contract{
				{ID: "c1", Title: "Deal", Status: "draft", EndDate: ptr(tt.end)},
			}}
			res := Scan(snap, now)

			got, ok := find(res, "contract-expiring-c1")
			require.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, tt.severity, got.Severity)
				assert.Equal(t, domain.CategoryAlert, got.Category)
				assert.Equal(t, "Contracts", got.Module)
			}
		})
	}
}

func TestScanFixture(t *testing.T) {
	res := Scan(fixture(), now)

	assert.Equal(t, []string{
		"contract-expiring-c1",
		"release-unprepared-r1",
		"overdue-transactions",
	}, ids(res.Alerts))

	assert.Equal(t, []string{
		"contract-missing-value-c2",
		"artist-without-contract-a2",
		"artist-incomplete-social-a2",
		"artist-misplaced-links-a3",
		"release-missing-date-r3",
		"work-missing-isrc-w1",
		"work-missing-participants-w2",
		"project-missing-deadline-p1",
	}, ids(res.Inconsistencies))

	assert.Equal(t, []string{
		"artist-without-goals-a3",
		"cross-sell-a2",
	}, ids(res.Opportunities))

	assert.Empty(t, res.Insights)

	assert.Equal(t, domain.Summary{Total: 13, Critical: 3, Warning: 5, Info: 5}, res.Summary)
}

func TestScanIsIdempotent(t *testing.T) {
	snap := fixture()
	first := Scan(snap, now)
	second := Scan(snap, now)
	assert.Equal(t, first, second)
	assert.Equal(t, fixture(), snap, "scan must not modify its input")
}

func TestOverdueTransactionsAggregate(t *testing.T) {
	res := Scan(fixture(), now)

	got, ok := find(res, "overdue-transactions")
	require.True(t, ok)
	assert.Equal(t, domain.SeverityCritical, got.Severity)
	assert.Contains(t, got.Description, "2 pending")
	assert.Contains(t, got.Description, "350.50")
	assert.Equal(t, []domain.EntityRef{
		{Type: "transaction", ID: "t1", Name: "Studio rent"},
		{Type: "transaction", ID: "t2", Name: "Mastering"},
	}, got.RelatedEntities)
}

func TestAbsentCollectionsContributeNothing(t *testing.T) {
	snap := fixture()
	snap.Contracts = nil
	snap.Projects = nil

	res := Scan(snap, now)

	for _, id := range ids(allFindings(res)) {
		assert.NotContains(t, id, "artist-without-contract")
		assert.NotContains(t, id, "artist-without-goals")
		assert.NotContains(t, id, "cross-sell")
		assert.NotContains(t, id, "contract-")
		assert.NotContains(t, id, "project-")
	}
	_, ok := find(res, "release-unprepared-r1")
	assert.True(t, ok, "checks with their collections present still run")
}

func TestEmptySnapshot(t *testing.T) {
	res := Scan(Snapshot{}, now)
	assert.Equal(t, domain.Summary{}, res.Summary)
	assert.Empty(t, allFindings(res))

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	for _, bucket := range []string{"insights", "inconsistencies", "opportunities", "alerts"} {
		assert.Contains(t, string(raw), `"`+bucket+`":[]`)
	}
}

func TestReleaseGrowth(t *testing.T) {
	thisMonth := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)
	release := func(id string, d time.Time) domain.Release {
		return domain.Release{ID: id, Title: id, Status: "released", ReleaseDate: ptr(d)}
	}

	t.Run("more than last month", func(t *testing.T) {
		snap := Snapshot{Releases: []domain.Release{
			release("r1", thisMonth), release("r2", thisMonth), release("r3", thisMonth),
			release("r4", lastMonth), release("r5", lastMonth),
		}}
		res := Scan(snap, now)
		require.Len(t, res.Insights, 1)
		assert.Equal(t, "release-growth-2026-03", res.Insights[0].ID)
		assert.Contains(t, res.Insights[0].Description, "+50%")
		assert.False(t, res.Insights[0].Actionable)
	})

	t.Run("nothing last month", func(t *testing.T) {
		snap := Snapshot{Releases: []domain.Release{release("r1", thisMonth)}}
		assert.Empty(t, Scan(snap, now).Insights)
	})

	t.Run("flat volume", func(t *testing.T) {
		snap := Snapshot{Releases: []domain.Release{release("r1", thisMonth), release("r2", lastMonth)}}
		assert.Empty(t, Scan(snap, now).Insights)
	})
}

func TestEventsMissingVenue(t *testing.T) {
	snap := Snapshot{Events: []domain.Event{
		{ID: "e1", Title: "Showcase", StartDate: now.Add(2 * day), VenueName: ptr("Circo Voador")},
		{ID: "e2", Title: "Radio session", StartDate: now.Add(2 * day), VenueName: ptr("Radio"), Location: ptr("Rua A, 10")},
		{ID: "e3", Title: "Last week", StartDate: now.Add(-3 * day)},
		{ID: "e4", Title: "Next month", StartDate: now.Add(40 * day)},
	}}
	res := Scan(snap, now)
	assert.Equal(t, []string{"event-missing-venue-e1"}, ids(res.Inconsistencies))
}

func TestMisplacedLinks(t *testing.T) {
	a := domain.Artist{
		ID:           "a1",
		InstagramURL: ptr("www.instagram.com/someone"),
		SpotifyURL:   ptr("https://soundcloud.com/someone"),
		YoutubeURL:   ptr("https://youtu.be/abc"),
	}
	assert.Equal(t, []string{"Spotify link is not a Spotify address"}, misplacedLinks(a))
	assert.Empty(t, misplacedLinks(domain.Artist{ID: "a2"}))
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "", joinList(nil))
	assert.Equal(t, "a", joinList([]string{"a"}))
	assert.Equal(t, "a and b", joinList([]string{"a", "b"}))
	assert.Equal(t, "a, b and c", joinList([]string{"a", "b", "c"}))
}
