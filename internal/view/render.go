package view

import "cnpj-lookup/internal/lookup"

// Page is the typed projection of a State, ready for any presentation
// layer.
type Page struct {
	QueryInvalid bool              `json:"queryInvalid"`
	Error        *ErrorBanner      `json:"error,omitempty"`
	Tabs         TabBar            `json:"tabs"`
	Company      []Field           `json:"company"`
	Filters      []FilterButton    `json:"filters"`
	Shareholders []ShareholderCard `json:"shareholders"`
	EditButton   bool              `json:"editButton"`
	Editing      bool              `json:"editing"`
	Submitted    map[string]string `json:"submitted,omitempty"`
}

type ErrorBanner struct {
	Message string `json:"message"`
}

type TabBar struct {
	Enabled bool        `json:"enabled"`
	Buttons []TabButton `json:"buttons"`
	Panels  []TabPanel  `json:"panels"`
}

type TabButton struct {
	Tab    Tab    `json:"tab"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type TabPanel struct {
	Tab    Tab  `json:"tab"`
	Hidden bool `json:"hidden"`
}

// Field is one input of a form.
type Field struct {
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Type     string `json:"type"`
	Value    string `json:"value"`
	Editable bool   `json:"editable"`
}

type FilterButton struct {
	Label  string `json:"label"`
	Role   string `json:"role,omitempty"`
	Active bool   `json:"active"`
}

type ShareholderCard struct {
	Fields  []Field `json:"fields"`
	Confirm bool    `json:"confirm"`
}

var tabs = []TabButton{
	{Tab: TabCompany, Label: "Empresa"},
	{Tab: TabShareholders, Label: "Sócios"},
}

// Render projects s into a Page. While the error flag is set the company
// and roster panels are left out, even if an earlier result is still held.
func Render(s State, fb Feedback) Page {
	page := Page{
		QueryInvalid: fb.InputInvalid,
		Submitted:    fb.Submitted,
		Editing:      s.Editing,
		Company:      []Field{},
		Filters:      []FilterButton{},
		Shareholders: []ShareholderCard{},
	}

	if s.ErrorFlag {
		page.Error = &ErrorBanner{Message: s.ErrorMessage}
	}

	page.Tabs = renderTabs(s)
	if !s.Loaded() {
		return page
	}

	page.EditButton = true
	page.Company = renderCompany(*s.Company, s.Editing)
	page.Filters = renderFilters(s.Shareholders, s.ActiveRole)
	for _, sh := range DisplayedShareholders(s.Shareholders, s.ActiveRole) {
		page.Shareholders = append(page.Shareholders, renderShareholder(sh, s.Editing))
	}

	return page
}

func renderTabs(s State) TabBar {
	bar := TabBar{Enabled: s.TabsEnabled && !s.ErrorFlag}
	for _, t := range tabs {
		btn := t
		btn.Active = bar.Enabled && s.ActiveTab == t.Tab
		bar.Buttons = append(bar.Buttons, btn)
		bar.Panels = append(bar.Panels, TabPanel{
			Tab:    t.Tab,
			Hidden: !s.Loaded() || s.VisibleTab != t.Tab,
		})
	}
	return bar
}

func renderCompany(c lookup.Company, editing bool) []Field {
	return []Field{
		{Name: "company-name", Label: "Razão Social", Type: "text", Value: c.LegalName, Editable: editing},
		{Name: "company-cnpj", Label: "CNPJ", Type: "text", Value: c.Identifier, Editable: editing},
		{Name: "company-email", Label: "E-mail", Type: "email", Value: c.Email, Editable: editing},
		{Name: "company-debut", Label: "Início das atividades", Type: "date", Value: c.ActivityStartDate, Editable: editing},
		{Name: "company-activity", Label: "Atividade principal", Type: "text", Value: c.ActivityDescription, Editable: editing},
		{Name: "company-address", Label: "Endereço", Type: "text", Value: c.Address, Editable: editing},
		{Name: "company-cep", Label: "CEP", Type: "text", Value: c.PostalCode, Editable: editing},
		{Name: "company-phone", Label: "Telefone", Type: "tel", Value: c.Phone, Editable: editing},
	}
}

// renderFilters puts the "all" button first, then one button per distinct
// role in first-seen order.
func renderFilters(shareholders []lookup.Shareholder, role string) []FilterButton {
	active := activeFilter(shareholders, role)
	roles := lookup.RoleOptions(shareholders)

	buttons := make([]FilterButton, 0, len(roles)+1)
	buttons = append(buttons, FilterButton{Label: AllRolesLabel, Active: active == AllRolesLabel})
	for _, r := range roles {
		buttons = append(buttons, FilterButton{Label: r, Role: r, Active: active == r})
	}
	return buttons
}

func renderShareholder(sh lookup.Shareholder, editing bool) ShareholderCard {
	return ShareholderCard{
		Fields: []Field{
			{Name: "shareholder-occupation", Type: "text", Value: sh.Role, Editable: editing},
			{Name: "shareholder-name", Type: "text", Value: sh.Name, Editable: editing},
			{Name: "shareholder-entry-Date", Label: "Desde:", Type: "date", Value: sh.EntryDate, Editable: editing},
			{Name: "shareholder-age", Type: "text", Value: sh.AgeBracket, Editable: editing},
			{Name: "shareholder-id", Type: "text", Value: sh.PersonIdentifier, Editable: editing},
		},
		Confirm: editing,
	}
}
