package lookup

// Company is the registry record reshaped for display.
type Company struct {
	Identifier          string `json:"identifier"`
	Email               string `json:"email"`
	LegalName           string `json:"legalName"`
	PostalCode          string `json:"postalCode"`
	ActivityDescription string `json:"activityDescription"`
	ActivityStartDate   string `json:"activityStartDate"`
	Address             string `json:"address"`
	Phone               string `json:"phone"`
}

// Shareholder is one QSA entry with its name title-cased.
type Shareholder struct {
	PersonIdentifier string `json:"personIdentifier"`
	Role             string `json:"role"`
	Name             string `json:"name"`
	AgeBracket       string `json:"ageBracket"`
	EntryDate        string `json:"entryDate"`
}

// Result is a successful lookup.
type Result struct {
	Identifier   string        `json:"identifier"`
	Company      Company       `json:"company"`
	Shareholders []Shareholder `json:"shareholders"`
	Roles        []string      `json:"roles"`
}
