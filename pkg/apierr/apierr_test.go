package apierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindInvalid, KindOf(Invalid("bad input")))
	assert.Equal(t, KindUnauthenticated, KindOf(Unauthenticated("no token")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("denied")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindConflict, KindOf(Conflict("duplicate")))
	assert.Equal(t, KindInternal, KindOf(Internal("boom")))

	// 未分类的错误按内部错误处理
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("issue %d not found", 42))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsNotFound(err))
}

func TestMessageFormatting(t *testing.T) {
	err := NotFound("issue %d not found", 42)
	assert.Equal(t, "issue 42 not found", err.Error())
	assert.False(t, IsNotFound(Invalid("nope")))
}
