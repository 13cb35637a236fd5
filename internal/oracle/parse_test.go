package oracle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare object",
			raw:  `{"score": 7.5, "apto": 1, "justificacion": "bona"}`,
			want: `{"score": 7.5, "apto": 1, "justificacion": "bona"}`,
		},
		{
			name: "json code fence",
			raw:  "```json\n{\"score\": 5}\n```",
			want: `{"score": 5}`,
		},
		{
			name: "anonymous code fence",
			raw:  "```\n{\"score\": 5}\n```",
			want: `{"score": 5}`,
		},
		{
			name: "prose around the object",
			raw:  "Aquí tens la valoració:\n{\"score\": 3, \"apto\": 0}\nEspero que sigui útil.",
			want: `{"score": 3, "apto": 0}`,
		},
		{
			name: "nested braces stay balanced",
			raw:  `{"a": {"b": 1}, "c": 2}`,
			want: `{"a": {"b": 1}, "c": 2}`,
		},
		{
			name: "braces inside strings are ignored",
			raw:  `{"justificacion": "perfil {tècnic} adequat"}`,
			want: `{"justificacion": "perfil {tècnic} adequat"}`,
		},
		{
			name: "escaped quotes inside strings",
			raw:  `{"justificacion": "diu \"no\" al final"}`,
			want: `{"justificacion": "diu \"no\" al final"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestExtractJSON_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no object at all", "no puc valorar aquesta oferta"},
		{"unbalanced object", `{"score": 7, "apto": 1`},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractJSON(tt.raw)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestExtractJSON_VerdictRoundTrip(t *testing.T) {
	raw := "```json\n{\"score\": 8.5, \"apto\": 1, \"justificacion\": \"encaixa amb el perfil\"}\n```"

	payload, err := ExtractJSON(raw)
	require.NoError(t, err)

	var verdict domain.Verdict
	require.NoError(t, json.Unmarshal(payload, &verdict))
	assert.Equal(t, 8.5, verdict.Score)
	assert.Equal(t, 1, verdict.Fit)
	assert.Equal(t, "encaixa amb el perfil", verdict.Rationale)
}
