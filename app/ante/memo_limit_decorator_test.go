package ante

import (
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"
)

func TestMemoLimitDecorator(t *testing.T) {
	decorator := NewMemoLimitDecorator(DefaultMaxMemoBytes)

	tests := []struct {
		name    string
		memo    string
		wantErr bool
	}{
		{name: "empty memo", memo: "", wantErr: false},
		{name: "short memo", memo: "ref-12345", wantErr: false},
		{name: "exactly at limit", memo: strings.Repeat("m", DefaultMaxMemoBytes), wantErr: false},
		{name: "one byte over", memo: strings.Repeat("m", DefaultMaxMemoBytes+1), wantErr: true},
		{name: "multibyte runes count in bytes", memo: strings.Repeat("é", DefaultMaxMemoBytes/2 + 1), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, called := recordingNext()
			_, err := decorator.AnteHandle(sdk.Context{}, mockMemoTx{memo: tc.memo}, false, next)
			if tc.wantErr {
				require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)
				require.False(t, *called)
				return
			}
			require.NoError(t, err)
			require.True(t, *called)
		})
	}
}

func TestMemoLimitDecoratorSkipsMemolessTx(t *testing.T) {
	decorator := NewMemoLimitDecorator(1)

	next, called := recordingNext()
	_, err := decorator.AnteHandle(sdk.Context{}, mockMsgTx{}, false, next)
	require.NoError(t, err)
	require.True(t, *called)
}
