package diag

import (
	"fmt"
)

// Code classifies a fatal error.
type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode         Code = 0
	InvalidRoot         Code = 1
	FileNotFound        Code = 2
	ReadFailure         Code = 3
	WriteFailure        Code = 4
	MalformedComment    Code = 5
	OutputAlreadyExists Code = 6
	InvalidConfig       Code = 7
	CycleDetected       Code = 8
)

var codeNames = map[Code]string{
	UnknownCode:         "UnknownError",
	InvalidRoot:         "InvalidRoot",
	FileNotFound:        "FileNotFound",
	ReadFailure:         "ReadFailure",
	WriteFailure:        "WriteFailure",
	MalformedComment:    "MalformedComment",
	OutputAlreadyExists: "OutputAlreadyExists",
	InvalidConfig:       "InvalidConfig",
	CycleDetected:       "CycleDetected",
}

// ID returns the stable identifier printed in error headers, e.g. "E0005".
func (c Code) ID() string {
	return fmt.Sprintf("E%04d", uint16(c))
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}
