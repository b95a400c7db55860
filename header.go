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

import "sort"

// Header response header keeping the insertion order of its names.
// Names are unique, setting an existing name replaces its value in place.
type Header struct {
	names  []string
	values map[string]string
}

// NewHeader create an empty Header
func NewHeader() *Header {
	return &Header{
		names:  make([]string, 0),
		values: make(map[string]string),
	}
}

// HeaderFromMap builds a Header from m, names sorted so the wire order is stable
func HeaderFromMap(m map[string]string) *Header {
	h := NewHeader()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		h.Set(name, m[name])
	}
	return h
}

// Set 设置请求头
func (h *Header) Set(name, value string) {
	if h.values == nil {
		h.values = make(map[string]string)
	}
	if _, ok := h.values[name]; !ok {
		h.names = append(h.names, name)
	}
	h.values[name] = value
}

// Get 获取请求头的值
func (h *Header) Get(name string) (string, bool) {
	value, ok := h.values[name]
	return value, ok
}

// Len number of header entries
func (h *Header) Len() int {
	return len(h.names)
}

// Names header names in insertion order
func (h *Header) Names() []string {
	names := make([]string, len(h.names))
	copy(names, h.names)
	return names
}

// Each calls fn for every entry in insertion order
func (h *Header) Each(fn func(name, value string)) {
	if h == nil {
		return
	}
	for _, name := range h.names {
		fn(name, h.values[name])
	}
}

// Map returns the entries as a plain map, order is lost
func (h *Header) Map() map[string]string {
	m := make(map[string]string, len(h.names))
	for name, value := range h.values {
		m[name] = value
	}
	return m
}

// Clone deep copy of h
func (h *Header) Clone() *Header {
	if h == nil {
		return NewHeader()
	}
	c := &Header{
		names:  make([]string, len(h.names)),
		values: make(map[string]string, len(h.values)),
	}
	copy(c.names, h.names)
	for name, value := range h.values {
		c.values[name] = value
	}
	return c
}
