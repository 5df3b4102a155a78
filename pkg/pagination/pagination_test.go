package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/brands", nil)

	p := FromRequest(r, 10, 100)

	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 10, p.Limit)
}

func TestFromRequest_Explicit(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/brands?offset=4&limit=2", nil)

	p := FromRequest(r, 10, 100)

	assert.Equal(t, 4, p.Offset)
	assert.Equal(t, 2, p.Limit)
}

func TestFromRequest_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantOffset int
		wantLimit  int
	}{
		{"negative offset", "?offset=-1", 0, 10},
		{"zero limit", "?limit=0", 0, 10},
		{"limit above cap", "?limit=500", 0, 10},
		{"non-numeric", "?offset=abc&limit=xyz", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/v1/brands"+tt.query, nil)
			p := FromRequest(r, 10, 100)
			assert.Equal(t, tt.wantOffset, p.Offset)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestNewResult(t *testing.T) {
	data := []string{"a", "b"}

	res := NewResult(data, 5, Params{Offset: 0, Limit: 2})

	assert.Equal(t, 5, res.TotalCount)
	assert.True(t, res.HasNext)

	last := NewResult([]string{"e"}, 5, Params{Offset: 4, Limit: 2})
	assert.False(t, last.HasNext)
}

func TestNewResult_NilData(t *testing.T) {
	res := NewResult[string](nil, 0, Params{Offset: 0, Limit: 10})

	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
	assert.False(t, res.HasNext)
}
