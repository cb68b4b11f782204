// internal/workers/registry/cnpj-lookup/models.go
package cnpjlookup

import "cnpj-lookup/internal/lookup"

type Input struct {
	CNPJ string `json:"cnpj"`
}

// Output is merged into the process variables on completion.
type Output struct {
	Company      lookup.Company       `json:"company"`
	Shareholders []lookup.Shareholder `json:"shareholders"`
	Roles        []string             `json:"roles"`
}
