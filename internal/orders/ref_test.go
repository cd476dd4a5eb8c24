package orders_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"diaa-designs-backend/internal/orders"
)

func TestNewRef(t *testing.T) {
	ref := orders.NewRef(orders.RefPrefixCV)
	assert.Regexp(t, regexp.MustCompile(`^CV-\d{13,}$`), ref)

	ref = orders.NewRef(orders.RefPrefixLogo)
	assert.Regexp(t, regexp.MustCompile(`^LOGO-\d{13,}$`), ref)
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		orders.StatusNew,
		orders.StatusInProgress,
		orders.StatusCompleted,
		orders.StatusCancelled,
	} {
		assert.True(t, orders.ValidStatus(s), s)
	}
	assert.False(t, orders.ValidStatus("done"))
	assert.False(t, orders.ValidStatus(""))
}

func TestPending(t *testing.T) {
	assert.True(t, orders.Pending(orders.StatusNew))
	assert.True(t, orders.Pending(orders.StatusInProgress))
	assert.False(t, orders.Pending(orders.StatusCompleted))
	assert.False(t, orders.Pending(orders.StatusCancelled))
}
