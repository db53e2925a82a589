package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductUnmarshalAvailability(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"absent", `{"id":"a"}`, true},
		{"null", `{"id":"a","availability":null}`, true},
		{"true", `{"id":"a","availability":true}`, true},
		{"false", `{"id":"a","availability":false}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Product
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &p))
			assert.Equal(t, "a", p.ID)
			assert.Equal(t, tc.want, p.Availability)
		})
	}
}

func TestProductUnmarshalFields(t *testing.T) {
	raw := `{"id":"p1","name":"Lambo","price":2500,"category":"cars","img":"u","badge":null}`
	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, Product{ID: "p1", Name: "Lambo", Price: 2500, Category: "cars", Img: "u", Availability: true}, p)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"p1","name":"Lambo","price":2500,"category":"cars","img":"u","availability":true}`, string(out))
}

func TestErrorTaxonomy(t *testing.T) {
	var err error = &ValidationError{Field: "price", Reason: "must be a positive integer"}
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "invalid price: must be a positive integer", err.Error())

	err = &NotFoundError{ID: "p9"}
	assert.True(t, errors.Is(err, ErrNotFound))

	err = &LockedOutError{RemainingMinutes: 4}
	assert.True(t, errors.Is(err, ErrLockedOut))
	assert.Contains(t, err.Error(), "4 minutes")
}
