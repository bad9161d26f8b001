package intl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/intl/pkg/intl"
)

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Nil(t, intl.FromContext(ctx))
	assert.Empty(t, intl.LocaleFromContext(ctx))

	i := intl.New(newConfig(t).WithLocale("en"), nil)
	ctx = intl.NewContext(ctx, i)
	assert.Same(t, i, intl.FromContext(ctx))
	assert.Equal(t, "en", intl.LocaleFromContext(ctx))
}
