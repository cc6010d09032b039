package snes

import (
	"errors"
	"fmt"
)

var (
	ErrRomTooSmall  = errors.New("rom is smaller than one LoROM bank")
	ErrStateVersion = errors.New("unsupported save state version")
)

// ErrStateIO reports which save state step failed.
type ErrStateIO struct {
	Op  string
	Err error
}

func (err *ErrStateIO) Error() string {
	return fmt.Sprintf("save state %s: %v", err.Op, err.Err)
}

func (err *ErrStateIO) Unwrap() error {
	return err.Err
}
