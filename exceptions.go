// MIT License

// Copyright (c) 2023 wetrycode

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package wirereply

import (
	"errors"
	"fmt"
)

var (
	ErrNilResponse  error = errors.New("serialize a nil response error")
	ErrMissingBody  error = errors.New("serialize a response without body error")
	ErrNilWriter    error = errors.New("send response to a nil writer error")
	ErrLimiterBlock error = errors.New("wait for limiter error")
)

// WriteError the sink failed while the response was written to it
type WriteError struct {
	Written  int
	Expected int
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write response error after %d of %d bytes: %s", e.Written, e.Expected, e.Err.Error())
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// LimiterError the limiter refused to let a response through
type LimiterError struct {
	Err error
}

func (e *LimiterError) Error() string {
	return ErrLimiterBlock.Error() + ": " + e.Err.Error()
}

func (e *LimiterError) Unwrap() error {
	return e.Err
}

// Is matches ErrLimiterBlock so callers need not know the limiter cause
func (e *LimiterError) Is(target error) bool {
	return target == ErrLimiterBlock
}
