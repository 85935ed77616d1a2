package mread_test

import (
	"testing"

	"github.com/fwojciec/mread"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires body", func(t *testing.T) {
		t.Parallel()

		a := &mread.Article{Title: "Title"}
		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, mread.EEXTRACT, mread.ErrorCode(err))
	})

	t.Run("accepts article with only a body", func(t *testing.T) {
		t.Parallel()

		a := &mread.Article{Body: "<p>text</p>"}

		assert.NoError(t, a.Validate())
	})
}
