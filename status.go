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
	"github.com/wxnacy/wgo/arrays"
)

const (
	// Version 响应使用的协议版本
	Version = "HTTP/1.1"

	StatusOK                  = "200"
	StatusBadRequest          = "400"
	StatusNotFound            = "404"
	StatusInternalServerError = "500"
)

// knownStatusCodes status codes which have their own status text
var knownStatusCodes = []string{StatusOK, StatusBadRequest, StatusNotFound, StatusInternalServerError}

// StatusText returns the reason phrase of code.
// Any code outside the known set is answered with "Not Found".
func StatusText(code string) string {
	switch code {
	case StatusOK:
		return "OK"
	case StatusBadRequest:
		return "Bad Request"
	case StatusNotFound:
		return "Not Found"
	case StatusInternalServerError:
		return "Internal Server Error"
	}
	return "Not Found"
}

// IsKnownStatus 判断状态码是否在固定的状态表中
func IsKnownStatus(code string) bool {
	return arrays.ContainsString(knownStatusCodes, code) != -1
}
