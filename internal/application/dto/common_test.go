package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-invoice/internal/application/dto"
)

func TestFormValue_Unmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want dto.FormValue
	}{
		{`{"field":"quantity","value":2}`, "2"},
		{`{"field":"rate","value":2.50}`, "2.50"},
		{`{"field":"rate","value":"99.9"}`, "99.9"},
		{`{"field":"description","value":"Diseño web"}`, "Diseño web"},
		{`{"field":"description","value":null}`, ""},
	}
	for _, tt := range tests {
		var req dto.SetItemFieldRequest
		require.NoError(t, json.Unmarshal([]byte(tt.in), &req), tt.in)
		assert.Equal(t, tt.want, req.Value, tt.in)
	}
}

func TestFormValue_Invalido(t *testing.T) {
	var req dto.SetItemFieldRequest
	assert.Error(t, json.Unmarshal([]byte(`{"field":"rate","value":true}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"field":"rate","value":{"a":1}}`), &req))
}
