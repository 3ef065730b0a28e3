package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pedidos-api/internal/domain"
)

func TestError_IsKind(t *testing.T) {
	err := domain.NewError(domain.ErrConflict, "El cliente ya existe")

	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "El cliente ya existe", err.Error())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("get order: %w", domain.ErrOrderNotFound)

	assert.Equal(t, domain.ErrNotFound, domain.KindOf(wrapped))
	assert.Equal(t, domain.ErrForbidden, domain.KindOf(domain.ErrNoCredentials))
	assert.Equal(t, domain.ErrInternal, domain.KindOf(errors.New("conn reset")))
}
