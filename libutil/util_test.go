package libutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name  string
	order *[]string
}

func (r *recorder) Delete() {
	*r.order = append(*r.order, r.name)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(89), Clamp(float32(120), -89, 89))
	assert.Equal(t, float32(-89), Clamp(float32(-90), -89, 89))
	assert.Equal(t, 3, Clamp(3, 1, 5))
}

func TestDeleteAllReverseOrder(t *testing.T) {
	order := []string{}
	a := &recorder{"a", &order}
	b := &recorder{"b", &order}
	DeleteAll(a, nil, b)
	assert.Equal(t, []string{"b", "a"}, order)
}
