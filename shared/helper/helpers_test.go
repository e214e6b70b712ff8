package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/memo_ive_go/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTypedValueOf(t *testing.T) {
	v, err := helper.GetTypedValueOf[int](func() (any, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = helper.GetTypedValueOf[string](func() (any, error) { return 7, nil })
	assert.ErrorContains(t, err, "unexpected type: int")

	_, err = helper.GetTypedValueOf[*int](func() (any, error) { return nil, nil })
	assert.ErrorContains(t, err, "unexpected type: <nil>")

	boom := errors.New("boom")
	_, err = helper.GetTypedValueOf[int](func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}
