package types

import "context"

type callKey struct{}

// Call chứa thông tin của lệnh gọi hiện tại: người gọi và số tiền đính kèm
type Call struct {
	Caller AccountID
	Value  uint64
}

// WithCall gắn thông tin người gọi vào context
func WithCall(ctx context.Context, caller AccountID, value uint64) context.Context {
	return context.WithValue(ctx, callKey{}, Call{Caller: caller, Value: value})
}

// CallFrom đọc thông tin người gọi từ context.
// Nếu context không có, trả về ZeroAccount với value 0.
func CallFrom(ctx context.Context) Call {
	if call, ok := ctx.Value(callKey{}).(Call); ok {
		return call
	}
	return Call{Caller: ZeroAccount}
}
