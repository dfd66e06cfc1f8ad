// Package types contains the runtime data types exchanged by the mocked runtime queries.
package types

import (
	"fmt"

	"github.com/oasisprotocol/oasis-core/go/common/cbor"
)

// CallResult is the call result.
type CallResult struct {
	Ok     cbor.RawMessage   `json:"ok,omitempty"`
	Failed *FailedCallResult `json:"fail,omitempty"`
}

// IsSuccess checks whether the call result indicates success.
func (cr *CallResult) IsSuccess() bool {
	return cr.Failed == nil
}

// FailedCallResult is a failed call result.
type FailedCallResult struct {
	Module  string `json:"module"`
	Code    uint32 `json:"code"`
	Message string `json:"message,omitempty"`
}

// Error is a trivial implementation of error.
func (cr FailedCallResult) Error() string {
	return cr.String()
}

// String returns the string representation of a failed call result.
func (cr FailedCallResult) String() string {
	return fmt.Sprintf("module: %s code: %d message: %s", cr.Module, cr.Code, cr.Message)
}

// NewFailedCallResult creates a failed call result for the given module error.
func NewFailedCallResult(module string, code uint32, message string) *CallResult {
	return &CallResult{
		Failed: &FailedCallResult{
			Module:  module,
			Code:    code,
			Message: message,
		},
	}
}
