package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideoOrderClause(t *testing.T) {
	tests := []struct {
		name  string
		order VideoOrder
		want  string
	}{
		{"insertion order", VideoOrder{}, "created_at ASC, id ASC"},
		{"views desc", VideoOrder{Column: "views", Desc: true}, "views DESC, id DESC"},
		{"title asc", VideoOrder{Column: "title"}, "title ASC, id ASC"},
		{"unknown column falls back", VideoOrder{Column: "password; DROP TABLE users", Desc: true}, "created_at ASC, id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.order.clause())
		})
	}
}
