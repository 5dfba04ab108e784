package kerneltest_test

import (
	"testing"

	"deliveryops/internal/core/domain/model/kernel/kerneltest"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	assert.Equal(t, "12.50", kerneltest.Amount("12.5").String())
	assert.Panics(t, func() { kerneltest.Amount("-1") })
	assert.Panics(t, func() { kerneltest.Amount("abc") })
}
