package view

import "cnpj-lookup/internal/lookup"

// AllRolesLabel is the filter button that shows every shareholder.
const AllRolesLabel = "Todos"

// FilterByRole returns the shareholders holding role, in their original
// order. An empty role selects everyone. The input is never modified.
func FilterByRole(shareholders []lookup.Shareholder, role string) []lookup.Shareholder {
	if role == "" {
		return shareholders
	}
	matched := make([]lookup.Shareholder, 0, len(shareholders))
	for _, s := range shareholders {
		if s.Role == role {
			matched = append(matched, s)
		}
	}
	return matched
}

// DisplayedShareholders is FilterByRole with the screen's fallback: when
// nothing matches, the full roster is shown.
func DisplayedShareholders(shareholders []lookup.Shareholder, role string) []lookup.Shareholder {
	matched := FilterByRole(shareholders, role)
	if len(matched) == 0 {
		return shareholders
	}
	return matched
}

// activeFilter names the highlighted filter button: the role of the first
// match, or the "all" button when there is none.
func activeFilter(shareholders []lookup.Shareholder, role string) string {
	if role == "" {
		return AllRolesLabel
	}
	matched := FilterByRole(shareholders, role)
	if len(matched) == 0 {
		return AllRolesLabel
	}
	return matched[0].Role
}
