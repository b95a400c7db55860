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
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// Response a single HTTP/1.1 server reply.
// It is immutable once NewResponse returns.
type Response struct {
	version    string  // version protocol label, always HTTP/1.1
	statusCode string  // statusCode textual status code
	statusText string  // statusText derived from statusCode
	headers    *Header // headers response headers
	body       *string // body nil when no body was supplied
}

// ResponseOption NewResponse 可选参数
type ResponseOption func(r *Response)

var respLog *logrus.Entry = GetLogger("response")

// ResponseWithHeader use a copy of header as the response headers.
// A nil header leaves the headers unset so the default applies.
func ResponseWithHeader(header *Header) ResponseOption {
	return func(r *Response) {
		if header == nil {
			return
		}
		r.headers = header.Clone()
	}
}

// ResponseWithHeaderMap use m as the response headers, see HeaderFromMap
func ResponseWithHeaderMap(m map[string]string) ResponseOption {
	return func(r *Response) {
		if m == nil {
			return
		}
		r.headers = HeaderFromMap(m)
	}
}

// ResponseWithBody 设置响应体
func ResponseWithBody(body string) ResponseOption {
	return func(r *Response) {
		r.body = &body
	}
}

// ResponseWithBytesBody 设置bytes响应体
func ResponseWithBytesBody(body []byte) ResponseOption {
	return func(r *Response) {
		b := string(body)
		r.body = &b
	}
}

func defaultResponse() *Response {
	return &Response{
		version:    Version,
		statusCode: StatusOK,
		statusText: StatusText(StatusOK),
	}
}

func defaultHeader() *Header {
	h := NewHeader()
	h.Set("Content-Type", "text/html")
	return h
}

// NewResponse create a Response for statusCode.
// Without headers the response carries a single "Content-Type: text/html" entry.
func NewResponse(statusCode string, opts ...ResponseOption) *Response {
	r := defaultResponse()
	if statusCode != StatusOK {
		r.statusCode = statusCode
	}
	for _, o := range opts {
		o(r)
	}
	if r.headers == nil {
		r.headers = defaultHeader()
	}
	r.statusText = StatusText(r.statusCode)
	return r
}

// NewJSONResponse create a Response whose body is v encoded as json
func NewJSONResponse(statusCode string, v interface{}) (*Response, error) {
	body, err := jsoniter.Marshal(v)
	if err != nil {
		respLog.Errorf("marshal json response body error %s", err.Error())
		return nil, err
	}
	header := NewHeader()
	header.Set("Content-Type", "application/json")
	return NewResponse(statusCode, ResponseWithHeader(header), ResponseWithBytesBody(body)), nil
}

// Version protocol label of the status line
func (r *Response) Version() string {
	return r.version
}

// StatusCode 响应状态码
func (r *Response) StatusCode() string {
	return r.statusCode
}

// StatusText 响应状态描述
func (r *Response) StatusText() string {
	return r.statusText
}

// Headers a copy of the response headers
func (r *Response) Headers() *Header {
	return r.headers.Clone()
}

// Body response body, empty when none was supplied
func (r *Response) Body() string {
	if r.body == nil {
		return ""
	}
	return *r.body
}

// HasBody reports whether a body was supplied, an empty one included
func (r *Response) HasBody() bool {
	return r.body != nil
}

// String the wire form rendered by DefaultSerializer
func (r *Response) String() string {
	return DefaultSerializer.render(r)
}
