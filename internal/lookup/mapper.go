package lookup

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"cnpj-lookup/internal/common/errors"
	"cnpj-lookup/internal/registry"
)

// MapResponse reshapes a registry payload into the company record and its
// shareholders. identifier is the normalized value that was queried. A
// not-found payload yields ErrNotFound and no mapping is attempted.
func MapResponse(identifier string, p *registry.Payload) (Company, []Shareholder, error) {
	if p == nil {
		return Company{}, nil, errors.NewTransportFailureError(identifier, fmt.Errorf("empty registry payload"))
	}
	if p.NotFound() {
		return Company{}, nil, errors.NewNotFoundError(identifier, p.Name)
	}

	company := Company{
		Identifier:          identifier,
		Email:               p.Email,
		LegalName:           p.RazaoSocial,
		PostalCode:          p.CEP,
		ActivityDescription: p.CNAEFiscalDescricao,
		ActivityStartDate:   p.DataInicioAtividade,
		Address:             composeAddress(p),
		Phone:               p.DDDTelefone1,
	}

	shareholders := make([]Shareholder, 0, len(p.QSA))
	for _, partner := range p.QSA {
		shareholders = append(shareholders, Shareholder{
			PersonIdentifier: partner.CNPJCPFDoSocio,
			Role:             partner.QualificacaoSocio,
			Name:             FormatName(partner.NomeSocio),
			AgeBracket:       partner.FaixaEtaria,
			EntryDate:        partner.DataEntradaSociedade,
		})
	}

	return company, shareholders, nil
}

func composeAddress(p *registry.Payload) string {
	return fmt.Sprintf("%s %s, %s - %s, %s, %s",
		p.DescricaoTipoDeLogradouro, p.Logradouro, p.Numero, p.Bairro, p.Municipio, p.UF)
}

// FormatName title-cases each space-separated word: first letter upper,
// the rest lower. Connectives such as "da" are not special-cased and empty
// words from repeated spaces are kept.
func FormatName(name string) string {
	words := strings.Split(name, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}

// RoleOptions lists the distinct roles in first-seen order.
func RoleOptions(shareholders []Shareholder) []string {
	seen := make(map[string]struct{}, len(shareholders))
	roles := make([]string, 0, len(shareholders))
	for _, s := range shareholders {
		if _, ok := seen[s.Role]; ok {
			continue
		}
		seen[s.Role] = struct{}{}
		roles = append(roles, s.Role)
	}
	return roles
}
