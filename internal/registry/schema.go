package registry

import "cnpj-lookup/internal/common/validation"

// payloadSchema pins the types of the consumed fields. Nothing is required
// so error documents ({"name", "message"}) pass as well.
var payloadSchema = validation.MustCompile(`{
	"type": "object",
	"properties": {
		"name": {"type": ["string", "null"]},
		"message": {"type": ["string", "null"]},
		"cnpj": {"type": ["string", "null"]},
		"email": {"type": ["string", "null"]},
		"razao_social": {"type": ["string", "null"]},
		"cep": {"type": ["string", "null"]},
		"cnae_fiscal_descricao": {"type": ["string", "null"]},
		"data_inicio_atividade": {"type": ["string", "null"]},
		"ddd_telefone_1": {"type": ["string", "null"]},
		"descricao_tipo_de_logradouro": {"type": ["string", "null"]},
		"logradouro": {"type": ["string", "null"]},
		"numero": {"type": ["string", "null"]},
		"bairro": {"type": ["string", "null"]},
		"municipio": {"type": ["string", "null"]},
		"uf": {"type": ["string", "null"]},
		"qsa": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"properties": {
					"cnpj_cpf_do_socio": {"type": ["string", "null"]},
					"qualificacao_socio": {"type": ["string", "null"]},
					"nome_socio": {"type": ["string", "null"]},
					"faixa_etaria": {"type": ["string", "null"]},
					"data_entrada_sociedade": {"type": ["string", "null"]}
				}
			}
		}
	}
}`)
