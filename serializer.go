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
	"strconv"
	"strings"
)

const crlf = "\r\n"

// Serializer renders a Response into its wire form
type Serializer struct {
	// standardTerminator end the Content-Length line with a bare CRLF
	// instead of the legacy ";\r\n"
	standardTerminator bool
	// strictBody refuse responses without body
	strictBody bool
}

// SerializerOption NewSerializer 可选参数
type SerializerOption func(s *Serializer)

// DefaultSerializer keeps the legacy Content-Length terminator and
// renders an absent body as an empty one
var DefaultSerializer *Serializer = NewSerializer()

// SerializerWithStandardTerminator write "Content-Length: <n>\r\n"
func SerializerWithStandardTerminator() SerializerOption {
	return func(s *Serializer) {
		s.standardTerminator = true
	}
}

// SerializerWithStrictBody fail with ErrMissingBody when the response has no body
func SerializerWithStrictBody() SerializerOption {
	return func(s *Serializer) {
		s.strictBody = true
	}
}

// NewSerializer 创建序列化器
func NewSerializer(opts ...SerializerOption) *Serializer {
	s := &Serializer{}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Serialize render r as
//
//	<version> <code> <text>\r\n<name>:<value>\r\n...Content-Length: <n>;\r\n\r\n<body>
func (s *Serializer) Serialize(r *Response) (string, error) {
	if r == nil {
		return "", ErrNilResponse
	}
	if s.strictBody && !r.HasBody() {
		return "", ErrMissingBody
	}
	return s.render(r), nil
}

// Bytes same as Serialize but returns bytes
func (s *Serializer) Bytes(r *Response) ([]byte, error) {
	text, err := s.Serialize(r)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

func (s *Serializer) render(r *Response) string {
	body := r.Body()
	var b strings.Builder
	b.WriteString(r.version)
	b.WriteByte(' ')
	b.WriteString(r.statusCode)
	b.WriteByte(' ')
	b.WriteString(r.statusText)
	b.WriteString(crlf)
	r.headers.Each(func(name, value string) {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(value)
		b.WriteString(crlf)
	})
	b.WriteString("Content-Length: ")
	b.WriteString(strconv.Itoa(len(body)))
	if !s.standardTerminator {
		b.WriteByte(';')
	}
	b.WriteString(crlf)
	b.WriteString(crlf)
	b.WriteString(body)
	return b.String()
}
