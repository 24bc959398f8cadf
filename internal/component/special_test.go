// internal/component/special_test.go
package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBladeExtensionEnvelope(t *testing.T) {
	ext := &BladeExtension{BaseLength: 3.0, MaxLength: 2.0, Duration: 0.2}

	ext.Elapsed = 0
	assert.InDelta(t, 3.0, ext.CurrentLength(), 1e-9)

	// Пик длины в середине огибающей.
	ext.Elapsed = 0.1
	assert.InDelta(t, 5.0, ext.CurrentLength(), 1e-9)

	// К концу длина возвращается к базе.
	ext.Elapsed = 0.2
	assert.InDelta(t, 3.0, ext.CurrentLength(), 1e-9)
	assert.True(t, ext.Expired())
}

func TestBladeExtensionMonotonicHalves(t *testing.T) {
	ext := &BladeExtension{BaseLength: 1.0, MaxLength: 4.0, Duration: 0.2}

	prev := ext.CurrentLength()
	for e := 0.01; e <= 0.1; e += 0.01 {
		ext.Elapsed = e
		cur := ext.CurrentLength()
		assert.Greater(t, cur, prev)
		prev = cur
	}
	for e := 0.11; e <= 0.2; e += 0.01 {
		ext.Elapsed = e
		cur := ext.CurrentLength()
		assert.Less(t, cur, prev)
		prev = cur
	}
}

func TestBladeExtensionZeroDuration(t *testing.T) {
	ext := &BladeExtension{BaseLength: 2.0, MaxLength: 3.0}
	assert.Equal(t, 2.0, ext.CurrentLength())
	assert.True(t, ext.Expired())
}
