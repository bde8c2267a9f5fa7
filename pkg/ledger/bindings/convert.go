package bindings

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

func abiConvert[T any](v interface{}) *T {
	return abi.ConvertType(v, new(T)).(*T)
}
