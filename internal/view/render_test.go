package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldValue(fields []Field, name string) (string, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

func TestRender_EmptyState(t *testing.T) {
	page := Render(NewState(), Feedback{})

	assert.Nil(t, page.Error)
	assert.False(t, page.Tabs.Enabled)
	assert.False(t, page.EditButton)
	assert.Empty(t, page.Company)
	assert.Empty(t, page.Shareholders)
	assert.Empty(t, page.Filters)
	require.Len(t, page.Tabs.Panels, 2)
	for _, p := range page.Tabs.Panels {
		assert.True(t, p.Hidden)
	}
}

func TestRender_LoadedState(t *testing.T) {
	page := Render(loadedState(t), Feedback{})

	assert.True(t, page.Tabs.Enabled)
	assert.True(t, page.EditButton)
	assert.Equal(t, []TabPanel{
		{Tab: TabCompany, Hidden: false},
		{Tab: TabShareholders, Hidden: true},
	}, page.Tabs.Panels)
	for _, b := range page.Tabs.Buttons {
		assert.False(t, b.Active, "no tab button is highlighted after a query")
	}

	name, ok := fieldValue(page.Company, "company-name")
	require.True(t, ok)
	assert.Equal(t, "ACME COMERCIO LTDA", name)
	cnpj, _ := fieldValue(page.Company, "company-cnpj")
	assert.Equal(t, "12.345.6780001-95", cnpj)

	require.Len(t, page.Shareholders, 4)
	shName, _ := fieldValue(page.Shareholders[1].Fields, "shareholder-name")
	assert.Equal(t, "João Da Silva", shName)
}

func TestRender_FilterButtons(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantActive string
		wantCards  int
	}{
		{"all by default", "", AllRolesLabel, 4},
		{"matching role", "Administrador", "Administrador", 2},
		{"no match falls back", "Procurador", AllRolesLabel, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := loadedState(t)
			s.ActiveRole = tt.role
			page := Render(s, Feedback{})

			require.Len(t, page.Filters, 4)
			assert.Equal(t, AllRolesLabel, page.Filters[0].Label)
			assert.Empty(t, page.Filters[0].Role)
			assert.Equal(t, []string{"Administrador", "Sócio", "Diretor"},
				[]string{page.Filters[1].Label, page.Filters[2].Label, page.Filters[3].Label})

			var active []string
			for _, b := range page.Filters {
				if b.Active {
					active = append(active, b.Label)
				}
			}
			assert.Equal(t, []string{tt.wantActive}, active)
			assert.Len(t, page.Shareholders, tt.wantCards)
		})
	}
}

func TestRender_ErrorHidesStaleData(t *testing.T) {
	s := loadedState(t)
	s.ErrorFlag = true
	s.ErrorMessage = MsgNotFound

	page := Render(s, Feedback{})

	require.NotNil(t, page.Error)
	assert.Equal(t, MsgNotFound, page.Error.Message)
	assert.False(t, page.EditButton)
	assert.False(t, page.Tabs.Enabled)
	assert.Empty(t, page.Company)
	assert.Empty(t, page.Shareholders)
}

func TestRender_Editing(t *testing.T) {
	s := loadedState(t)
	s.Editing = true

	page := Render(s, Feedback{Submitted: map[string]string{"company-name": "Acme"}})

	assert.True(t, page.Editing)
	for _, f := range page.Company {
		assert.True(t, f.Editable, f.Name)
	}
	for _, card := range page.Shareholders {
		assert.True(t, card.Confirm)
	}
	assert.Equal(t, "Acme", page.Submitted["company-name"])
}

func TestRender_QueryInvalid(t *testing.T) {
	page := Render(NewState(), Feedback{InputInvalid: true})
	assert.True(t, page.QueryInvalid)
}
