package font

import (
	"errors"
	"fmt"
)

var (
	ErrNoFontFileFound = errors.New("no font files found")
	ErrNoValidFontFace = errors.New("font contains no valid faces")
)

// CheckErrFn 接收扫描过程中的提示信息，返回 false 时中止
type CheckErrFn func(error) bool

type WarningMsg string

func NewWarningMsg(format string, a ...any) *WarningMsg {
	w := WarningMsg(fmt.Sprintf(format, a...))
	return &w
}

func (w WarningMsg) Error() string {
	return string(w)
}

type InfoMsg string

func NewInfoMsg(format string, a ...any) *InfoMsg {
	m := InfoMsg(fmt.Sprintf(format, a...))
	return &m
}

func (m InfoMsg) Error() string {
	return string(m)
}

var _ error = (*WarningMsg)(nil)
var _ error = (*InfoMsg)(nil)
