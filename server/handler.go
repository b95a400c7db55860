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

package server

import (
	"github.com/wetrycode/wirereply"
)

// NewStaticHandler answers GET requests from a fixed path to body table
func NewStaticHandler(routes map[string]string) Handler {
	return func(req *RequestLine) *wirereply.Response {
		header := wirereply.NewHeader()
		header.Set("Content-Type", "text/html")
		header.Set("X-Request-Id", wirereply.GetUUID())
		if req.Method != "GET" {
			return wirereply.NewResponse(wirereply.StatusBadRequest,
				wirereply.ResponseWithHeader(header),
				wirereply.ResponseWithBody(wirereply.StatusText(wirereply.StatusBadRequest)))
		}
		body, ok := routes[req.Path]
		if !ok {
			return wirereply.NewResponse(wirereply.StatusNotFound,
				wirereply.ResponseWithHeader(header),
				wirereply.ResponseWithBody(wirereply.StatusText(wirereply.StatusNotFound)))
		}
		return wirereply.NewResponse(wirereply.StatusOK,
			wirereply.ResponseWithHeader(header),
			wirereply.ResponseWithBody(body))
	}
}
