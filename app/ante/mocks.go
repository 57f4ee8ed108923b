package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	proto "google.golang.org/protobuf/proto"
)

// mockMemoTx is a minimal tx implementing sdk.TxWithMemo for testing memo limits.
type mockMemoTx struct {
	memo string
}

func (m mockMemoTx) GetMsgs() []sdk.Msg                  { return nil }
func (m mockMemoTx) GetMsgsV2() ([]proto.Message, error) { return nil, nil }
func (m mockMemoTx) ValidateBasic() error                { return nil }
func (m mockMemoTx) GetMemo() string                     { return m.memo }

// mockMsgTx is a minimal tx carrying messages for decorator tests.
type mockMsgTx struct {
	msgs []sdk.Msg
}

func (m mockMsgTx) GetMsgs() []sdk.Msg                  { return m.msgs }
func (m mockMsgTx) GetMsgsV2() ([]proto.Message, error) { return nil, nil }
func (m mockMsgTx) ValidateBasic() error                { return nil }
