package lookup

import (
	stderrors "errors"
	"testing"

	"cnpj-lookup/internal/common/errors"
	"cnpj-lookup/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPayload() *registry.Payload {
	return &registry.Payload{
		CNPJ:                      "12345678000195",
		Email:                     "contato@acme.com.br",
		RazaoSocial:               "ACME COMERCIO LTDA",
		CEP:                       "01310100",
		CNAEFiscalDescricao:       "Comercio varejista de mercadorias em geral",
		DataInicioAtividade:       "2005-03-14",
		DDDTelefone1:              "1133334444",
		DescricaoTipoDeLogradouro: "AVENIDA",
		Logradouro:                "PAULISTA",
		Numero:                    "1000",
		Bairro:                    "BELA VISTA",
		Municipio:                 "SAO PAULO",
		UF:                        "SP",
		QSA: []registry.Partner{
			{
				CNPJCPFDoSocio:       "***123456**",
				QualificacaoSocio:    "Sócio-Administrador",
				NomeSocio:            "MARIA DE SOUZA",
				FaixaEtaria:          "Entre 41 a 50 anos",
				DataEntradaSociedade: "2005-03-14",
			},
			{
				CNPJCPFDoSocio:       "***654321**",
				QualificacaoSocio:    "Sócio",
				NomeSocio:            "JOÃO DA SILVA",
				FaixaEtaria:          "Entre 31 a 40 anos",
				DataEntradaSociedade: "2010-07-01",
			},
		},
	}
}

func TestMapResponse_RoundTrip(t *testing.T) {
	payload := createPayload()

	company, shareholders, err := MapResponse("12.345.6780001-95", payload)
	require.NoError(t, err)

	assert.Equal(t, Company{
		Identifier:          "12.345.6780001-95",
		Email:               payload.Email,
		LegalName:           payload.RazaoSocial,
		PostalCode:          payload.CEP,
		ActivityDescription: payload.CNAEFiscalDescricao,
		ActivityStartDate:   payload.DataInicioAtividade,
		Address:             "AVENIDA PAULISTA, 1000 - BELA VISTA, SAO PAULO, SP",
		Phone:               payload.DDDTelefone1,
	}, company)

	require.Len(t, shareholders, 2)
	for i, partner := range payload.QSA {
		assert.Equal(t, partner.CNPJCPFDoSocio, shareholders[i].PersonIdentifier)
		assert.Equal(t, partner.QualificacaoSocio, shareholders[i].Role)
		assert.Equal(t, FormatName(partner.NomeSocio), shareholders[i].Name)
		assert.Equal(t, partner.FaixaEtaria, shareholders[i].AgeBracket)
		assert.Equal(t, partner.DataEntradaSociedade, shareholders[i].EntryDate)
	}
	assert.Equal(t, "Maria De Souza", shareholders[0].Name)
	assert.Equal(t, "João Da Silva", shareholders[1].Name)
}

func TestMapResponse_EmptyRoster(t *testing.T) {
	payload := createPayload()
	payload.QSA = nil

	_, shareholders, err := MapResponse("12345678000195", payload)
	require.NoError(t, err)
	assert.NotNil(t, shareholders)
	assert.Empty(t, shareholders)
}

func TestMapResponse_NotFound(t *testing.T) {
	for _, marker := range []string{registry.MarkerBadRequest, registry.MarkerNotFound} {
		t.Run(marker, func(t *testing.T) {
			payload := &registry.Payload{Name: marker, Message: "CNPJ inválido"}

			var (
				company      Company
				shareholders []Shareholder
				err          error
			)
			assert.NotPanics(t, func() {
				company, shareholders, err = MapResponse("12345678000195", payload)
			})

			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.ErrNotFound))
			assert.Equal(t, Company{}, company)
			assert.Nil(t, shareholders)
		})
	}
}

func TestMapResponse_NilPayload(t *testing.T) {
	_, _, err := MapResponse("12345678000195", nil)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrTransportFailure))
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"JOÃO DA SILVA", "João Da Silva"},
		{"maria de souza", "Maria De Souza"},
		{"ÉLCIO", "Élcio"},
		{"ana  luiza", "Ana  Luiza"},
		{"", ""},
		{"x", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatName(tt.input))
		})
	}
}

func TestRoleOptions(t *testing.T) {
	shareholders := []Shareholder{
		{Name: "A", Role: "Sócio"},
		{Name: "B", Role: "Administrador"},
		{Name: "C", Role: "Sócio"},
		{Name: "D", Role: "Diretor"},
	}

	assert.Equal(t, []string{"Sócio", "Administrador", "Diretor"}, RoleOptions(shareholders))
	assert.Empty(t, RoleOptions(nil))
}

func BenchmarkFormatName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FormatName("MARIA APARECIDA DOS SANTOS OLIVEIRA")
	}
}
