package domain

import "strings"

// CollectContributors extracts the distinct commit authors from a commit
// list. Commits without a resolvable author are dropped, as is the excluded
// maintainer login. Logins are deduplicated case-insensitively (matching the
// hosting service's login semantics) preserving first-occurrence order.
func CollectContributors(commits []Commit, excludedLogin string) []Contributor {
	seen := make(map[string]bool)
	var contributors []Contributor

	for _, c := range commits {
		login := c.Author.Login
		if login == "" || strings.EqualFold(login, excludedLogin) {
			continue
		}

		key := strings.ToLower(login)
		if seen[key] {
			continue
		}
		seen[key] = true

		profile := c.Author.ProfileURL
		if profile == "" {
			profile = "https://github.com/" + login
		}
		contributors = append(contributors, Contributor{
			Handle:     login,
			ProfileURL: profile,
		})
	}

	return contributors
}
