//go:build unit

package assignment_test

import (
	"testing"

	"cast-dispatch/internal/domain/assignment"

	"github.com/stretchr/testify/assert"
)

func TestResponse(t *testing.T) {
	t.Run("accept と decline だけが有効", func(t *testing.T) {
		assert.True(t, assignment.ResponseAccept.IsValid())
		assert.True(t, assignment.ResponseDecline.IsValid())
		assert.False(t, assignment.Response("maybe").IsValid())
		assert.False(t, assignment.Response("").IsValid())
	})

	t.Run("応答はステータスに写る", func(t *testing.T) {
		assert.Equal(t, assignment.StatusAccepted, assignment.ResponseAccept.ToStatus())
		assert.Equal(t, assignment.StatusDeclined, assignment.ResponseDecline.ToStatus())
	})
}
