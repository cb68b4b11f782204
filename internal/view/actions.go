package view

type ActionKind string

const (
	ActionSubmitQuery ActionKind = "submit-query"
	ActionFilterRole  ActionKind = "filter-role"
	ActionSelectTab   ActionKind = "select-tab"
	ActionToggleEdit  ActionKind = "toggle-edit"
	ActionSaveForm    ActionKind = "save-form"
)

// Action is one user interaction. Only the field matching Kind is read.
type Action struct {
	Kind   ActionKind  `json:"kind"`
	Query  string      `json:"query,omitempty"`
	Role   string      `json:"role,omitempty"`
	Tab    Tab         `json:"tab,omitempty"`
	Fields []FormField `json:"fields,omitempty"`
}

// Feedback carries results that are shown once and not kept in State.
type Feedback struct {
	// InputInvalid marks the query field after a malformed identifier.
	InputInvalid bool `json:"inputInvalid,omitempty"`
	// Submitted is the flat field mapping collected by a save.
	Submitted map[string]string `json:"submitted,omitempty"`
}

type Outcome struct {
	State    State    `json:"state"`
	Feedback Feedback `json:"feedback"`
}
