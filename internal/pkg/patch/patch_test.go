//go:build unit

package patch_test

import (
	"testing"

	"retail-ops-core/internal/pkg/patch"
	"retail-ops-core/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 3, patch.Coalesce(ptr.To(3), 7))
	assert.Equal(t, 7, patch.Coalesce[int](nil, 7))
	assert.Equal(t, "", patch.Coalesce(ptr.To(""), "x"))
}

func TestCoalesceString(t *testing.T) {
	assert.Equal(t, "high", patch.CoalesceString(ptr.To(" high "), "normal"))
	assert.Equal(t, "normal", patch.CoalesceString(ptr.To("   "), "normal"))
	assert.Equal(t, "normal", patch.CoalesceString(nil, "normal"))
}
