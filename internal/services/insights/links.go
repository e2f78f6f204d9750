package insights

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"backstage/internal/domain"
)

type platformLink struct {
	label   string
	value   *string
	domains []string
}

// misplacedLinks lists the profile links whose registrable domain does not
// belong to the platform the field is meant for.
func misplacedLinks(a domain.Artist) []string {
	links := []platformLink{
		{label: "Instagram", value: a.InstagramURL, domains: []string{"instagram.com"}},
		{label: "Spotify", value: a.SpotifyURL, domains: []string{"spotify.com", "spotify.link"}},
		{label: "YouTube", value: a.YoutubeURL, domains: []string{"youtube.com", "youtu.be"}},
	}
	var bad []string
	for _, l := range links {
		if blank(l.value) {
			continue
		}
		if !onPlatform(*l.value, l.domains) {
			bad = append(bad, l.label+" link is not a "+l.label+" address")
		}
	}
	return bad
}

func onPlatform(raw string, domains []string) bool {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		registrable = host
	}
	for _, d := range domains {
		if registrable == d {
			return true
		}
	}
	return false
}

func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
