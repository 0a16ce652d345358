package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// 一意制約違反（同じメール、など）
	ErrDuplicate = errors.New("duplicate")

	// 加算すると数量上限を超える
	ErrQuantityLimit = errors.New("quantity limit exceeded")
)
