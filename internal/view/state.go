// Package view holds the per-session lookup screen as an explicit state
// value, the table of handlers that move it between states and the
// renderer that projects it into typed view nodes.
package view

import "cnpj-lookup/internal/lookup"

type Tab string

const (
	TabCompany      Tab = "company-info"
	TabShareholders Tab = "shareholders-info"
)

// Messages shown in the error banner.
const (
	MsgNotFound         = "O CNPJ especificado não corresponde a nenhuma empresa"
	MsgTransportFailure = "Não foi possível consultar o CNPJ no momento. Tente novamente mais tarde."
)

// State is everything the screen shows for one session. Handlers receive it
// by value and return a new one; Shareholders is replaced, never edited in
// place.
type State struct {
	Company      *lookup.Company      `json:"company,omitempty"`
	Shareholders []lookup.Shareholder `json:"shareholders"`
	ErrorFlag    bool                 `json:"errorFlag"`
	ErrorMessage string               `json:"errorMessage,omitempty"`

	// ActiveRole is the last role filter clicked; empty means all.
	ActiveRole string `json:"activeRole,omitempty"`
	// TabsEnabled turns on after the first successful query.
	TabsEnabled bool `json:"tabsEnabled"`
	// VisibleTab is the panel on screen; empty hides both.
	VisibleTab Tab `json:"visibleTab,omitempty"`
	// ActiveTab is the highlighted tab button; empty highlights none.
	ActiveTab Tab  `json:"activeTab,omitempty"`
	Editing   bool `json:"editing"`
}

// NewState is the empty screen.
func NewState() State {
	return State{Shareholders: []lookup.Shareholder{}}
}

// Loaded reports whether a company is on screen.
func (s State) Loaded() bool {
	return s.Company != nil && !s.ErrorFlag
}
