package seed

import "errors"

var (
	// ErrInvalidEmployeeCount は生成人数が 0 から MaxEmployeeCount の範囲外の場合に返却されます。
	ErrInvalidEmployeeCount = errors.New("seed: employee count must be between 0 and 100000")
	// ErrEmptyCatalog は部署カタログが空のまま社員生成を要求された場合に返却されます。
	ErrEmptyCatalog = errors.New("seed: catalog has no departments")
	// ErrIdentityExhausted は社員 ID やアカウントの衝突が規定回数続いた場合に返却されます。
	ErrIdentityExhausted = errors.New("seed: could not draw a unique employee identity")
)
