package registry

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cnpj-lookup/internal/common/errors"
	"cnpj-lookup/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyJSON = `{
	"cnpj": "12345678000195",
	"email": "contato@acme.com.br",
	"razao_social": "ACME COMERCIO LTDA",
	"cep": "01310100",
	"cnae_fiscal_descricao": "Comercio varejista",
	"data_inicio_atividade": "2005-03-14",
	"ddd_telefone_1": "1133334444",
	"descricao_tipo_de_logradouro": "AVENIDA",
	"logradouro": "PAULISTA",
	"numero": "1000",
	"bairro": "BELA VISTA",
	"municipio": "SAO PAULO",
	"uf": "SP",
	"capital_social": 1000000,
	"qsa": [
		{
			"cnpj_cpf_do_socio": "***123456**",
			"qualificacao_socio": "Sócio-Administrador",
			"nome_socio": "MARIA DE SOUZA",
			"faixa_etaria": "Entre 41 a 50 anos",
			"data_entrada_sociedade": "2005-03-14"
		}
	]
}`

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotPath
}

func newTestClient(t *testing.T, baseURL string) *Client {
	return NewClient(baseURL+"/api/cnpj/v1/", 2*time.Second, logger.NewTestLogger(t))
}

func TestClient_Fetch_Success(t *testing.T) {
	srv, gotPath := newTestServer(t, http.StatusOK, companyJSON)
	client := newTestClient(t, srv.URL)

	payload, err := client.Fetch(context.Background(), "12.345.6780001-95")
	require.NoError(t, err)

	assert.Equal(t, "/api/cnpj/v1/12.345.6780001-95", *gotPath)
	assert.False(t, payload.NotFound())
	assert.Equal(t, "ACME COMERCIO LTDA", payload.RazaoSocial)
	assert.Equal(t, "1000", payload.Numero)
	require.Len(t, payload.QSA, 1)
	assert.Equal(t, "MARIA DE SOUZA", payload.QSA[0].NomeSocio)
}

func TestClient_Fetch_NotFoundMarker(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"bad request marker", http.StatusBadRequest, `{"name":"BadRequestError","message":"CNPJ inválido","type":"bad_request"}`},
		{"not found marker", http.StatusNotFound, `{"name":"NotFoundError","message":"CNPJ não encontrado"}`},
		{"marker with ok status", http.StatusOK, `{"name":"BadRequestError"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)
			client := newTestClient(t, srv.URL)

			payload, err := client.Fetch(context.Background(), "12345678000195")
			require.NoError(t, err)
			assert.True(t, payload.NotFound())
		})
	}
}

func TestClient_Fetch_TransportFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error without marker", http.StatusInternalServerError, `{"message":"upstream down"}`},
		{"unknown error marker", http.StatusServiceUnavailable, `{"name":"InternalError"}`},
		{"html body", http.StatusBadGateway, `<html>bad gateway</html>`},
		{"empty body", http.StatusOK, ``},
		{"unexpected shape", http.StatusOK, `{"razao_social": 12, "qsa": "none"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)
			client := newTestClient(t, srv.URL)

			payload, err := client.Fetch(context.Background(), "12345678000195")
			require.Error(t, err)
			assert.Nil(t, payload)
			assert.True(t, stderrors.Is(err, errors.ErrTransportFailure))
		})
	}
}

func TestClient_Fetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	client := NewClient(baseURL, time.Second, logger.NewNoOpLogger())
	_, err := client.Fetch(context.Background(), "12345678000195")

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrTransportFailure))
}

func TestClient_Fetch_ContextCanceled(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, companyJSON)
	client := newTestClient(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Fetch(ctx, "12345678000195")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, context.Canceled))
}

func TestIsNotFoundMarker(t *testing.T) {
	assert.True(t, IsNotFoundMarker("BadRequestError"))
	assert.True(t, IsNotFoundMarker("NotFoundError"))
	assert.False(t, IsNotFoundMarker(""))
	assert.False(t, IsNotFoundMarker("badrequesterror"))

	var nilPayload *Payload
	assert.False(t, nilPayload.NotFound())
}
