package registry

// Payload is the registry's company document. Only the fields the lookup
// consumes are decoded. Name and Message are set on error responses.
type Payload struct {
	Name    string `json:"name,omitempty"`
	Message string `json:"message,omitempty"`

	CNPJ                      string    `json:"cnpj"`
	Email                     string    `json:"email"`
	RazaoSocial               string    `json:"razao_social"`
	CEP                       string    `json:"cep"`
	CNAEFiscalDescricao       string    `json:"cnae_fiscal_descricao"`
	DataInicioAtividade       string    `json:"data_inicio_atividade"`
	DDDTelefone1              string    `json:"ddd_telefone_1"`
	DescricaoTipoDeLogradouro string    `json:"descricao_tipo_de_logradouro"`
	Logradouro                string    `json:"logradouro"`
	Numero                    string    `json:"numero"`
	Bairro                    string    `json:"bairro"`
	Municipio                 string    `json:"municipio"`
	UF                        string    `json:"uf"`
	QSA                       []Partner `json:"qsa"`
}

// Partner is one entry of the shareholder roster (QSA).
type Partner struct {
	CNPJCPFDoSocio       string `json:"cnpj_cpf_do_socio"`
	QualificacaoSocio    string `json:"qualificacao_socio"`
	NomeSocio            string `json:"nome_socio"`
	FaixaEtaria          string `json:"faixa_etaria"`
	DataEntradaSociedade string `json:"data_entrada_sociedade"`
}

// Markers the registry puts in the name field when no company matches.
const (
	MarkerBadRequest = "BadRequestError"
	MarkerNotFound   = "NotFoundError"
)

// IsNotFoundMarker reports whether name flags a missing company.
func IsNotFoundMarker(name string) bool {
	return name == MarkerBadRequest || name == MarkerNotFound
}

// NotFound reports whether the payload is the registry's not-found answer.
func (p *Payload) NotFound() bool {
	return p != nil && IsNotFoundMarker(p.Name)
}
