package types_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storacha/daclient/pkg/types"
)

func TestErrorKinds(t *testing.T) {
	base := errors.New("connection refused")
	err := types.WrapError(types.KindUpload, "uploading content", base)

	require.Equal(t, "uploading content: connection refused", err.Error())
	require.ErrorIs(t, err, base)
	require.True(t, types.IsKind(err, types.KindUpload))
	require.False(t, types.IsKind(err, types.KindStatus))

	wrapped := fmt.Errorf("facade: %w", err)
	require.Equal(t, types.KindUpload, types.KindOf(wrapped))
	require.Equal(t, types.KindOther, types.KindOf(base))
	require.False(t, types.IsKind(nil, types.KindOther))
}

func TestParseStatus(t *testing.T) {
	st, err := types.ParseStatus("finalized")
	require.NoError(t, err)
	require.Equal(t, types.StatusFinalized, st)
	require.True(t, st.Terminal())
	require.False(t, st.Failed())

	require.False(t, types.StatusProcessing.Terminal())
	require.True(t, types.StatusFailed.Failed())

	_, err = types.ParseStatus("DONE")
	require.Error(t, err)
}
