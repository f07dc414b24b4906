package nombres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartflow/smartflow-api/internal/domain/nombres"
)

func TestNormalizar(t *testing.T) {
	assert.Equal(t, "aqua di gio", nombres.Normalizar("  Aqua Di Gio "))
	assert.Equal(t, "chanel no 5", nombres.Normalizar("CHANEL No 5"))
	assert.Equal(t, "eden fantasia", nombres.Normalizar("Edén Fantasía"))
	assert.Equal(t, "", nombres.Normalizar("   "))
}
