package shortcut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"www.example.com", "https://www.example.com"},
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EnsureURL(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	s := New("Mail", "", "mail.example.com", PositionLeft)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Mail", s.Name)
	assert.Equal(t, DefaultIconURL, s.IconURL)
	assert.Equal(t, "https://mail.example.com", s.URL)
	assert.Equal(t, PositionLeft, s.Position)
}

func TestNew_ids_are_unique(t *testing.T) {
	a := New("a", "", "a.com", PositionRight)
	b := New("b", "", "b.com", PositionRight)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestNormalize(t *testing.T) {
	in := []Shortcut{
		{Name: "no id or position", URL: "https://a.com"},
		{ID: "keep", Name: "complete", URL: "https://b.com", Position: PositionLeft},
	}

	out := Normalize(in)

	require.Len(t, out, 2)
	assert.NotEmpty(t, out[0].ID)
	assert.Equal(t, PositionRight, out[0].Position)
	assert.Equal(t, "keep", out[1].ID)
	assert.Equal(t, PositionLeft, out[1].Position)
}
