package wirereply

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestNewResponse(t *testing.T) {
	convey.Convey("test response struct creation 200", t, func() {
		resp := NewResponse("200", ResponseWithBody("xxx"))
		convey.So(resp.Version(), convey.ShouldEqual, "HTTP/1.1")
		convey.So(resp.StatusCode(), convey.ShouldEqual, "200")
		convey.So(resp.StatusText(), convey.ShouldEqual, "OK")
		convey.So(resp.Headers().Map(), convey.ShouldResemble, map[string]string{"Content-Type": "text/html"})
		convey.So(resp.Body(), convey.ShouldEqual, "xxx")
		convey.So(resp.HasBody(), convey.ShouldBeTrue)
	})
	convey.Convey("test status text follows status code", t, func() {
		cases := map[string]string{
			"200": "OK",
			"400": "Bad Request",
			"404": "Not Found",
			"500": "Internal Server Error",
			"302": "Not Found",
			"":    "Not Found",
		}
		for code, text := range cases {
			resp := NewResponse(code)
			convey.So(resp.StatusCode(), convey.ShouldEqual, code)
			convey.So(resp.StatusText(), convey.ShouldEqual, text)
		}
	})
	convey.Convey("test supplied headers are not merged with defaults", t, func() {
		h := NewHeader()
		h.Set("Server", "wirereply")
		resp := NewResponse("404", ResponseWithHeader(h))
		convey.So(resp.Headers().Map(), convey.ShouldResemble, map[string]string{"Server": "wirereply"})

		resp = NewResponse("404", ResponseWithHeaderMap(map[string]string{"X-A": "1", "X-B": "2"}))
		convey.So(resp.Headers().Names(), convey.ShouldResemble, []string{"X-A", "X-B"})
	})
	convey.Convey("test empty supplied headers stay empty", t, func() {
		resp := NewResponse("200", ResponseWithHeader(NewHeader()))
		convey.So(resp.Headers().Len(), convey.ShouldEqual, 0)
		resp = NewResponse("200", ResponseWithHeaderMap(map[string]string{}))
		convey.So(resp.Headers().Len(), convey.ShouldEqual, 0)
	})
	convey.Convey("test nil headers use default", t, func() {
		resp := NewResponse("200", ResponseWithHeader(nil))
		convey.So(resp.Headers().Map(), convey.ShouldResemble, map[string]string{"Content-Type": "text/html"})
		resp = NewResponse("200", ResponseWithHeaderMap(nil))
		convey.So(resp.Headers().Map(), convey.ShouldResemble, map[string]string{"Content-Type": "text/html"})
	})
	convey.Convey("test response is immutable", t, func() {
		h := NewHeader()
		h.Set("Server", "wirereply")
		resp := NewResponse("200", ResponseWithHeader(h))
		h.Set("Server", "changed")
		resp.Headers().Set("X-New", "1")
		convey.So(resp.Headers().Map(), convey.ShouldResemble, map[string]string{"Server": "wirereply"})

		body := []byte("abc")
		resp = NewResponse("200", ResponseWithBytesBody(body))
		body[0] = 'z'
		convey.So(resp.Body(), convey.ShouldEqual, "abc")
	})
	convey.Convey("test absent and empty body", t, func() {
		resp := NewResponse("200")
		convey.So(resp.HasBody(), convey.ShouldBeFalse)
		convey.So(resp.Body(), convey.ShouldEqual, "")
		resp = NewResponse("200", ResponseWithBody(""))
		convey.So(resp.HasBody(), convey.ShouldBeTrue)
		convey.So(resp.Body(), convey.ShouldEqual, "")
	})
}

func TestNewJSONResponse(t *testing.T) {
	convey.Convey("test json response", t, func() {
		resp, err := NewJSONResponse("200", map[string]interface{}{"key": "value"})
		convey.So(err, convey.ShouldBeNil)
		convey.So(resp.Body(), convey.ShouldEqual, `{"key":"value"}`)
		convey.So(resp.Headers().Map(), convey.ShouldResemble, map[string]string{"Content-Type": "application/json"})
	})
	convey.Convey("test json response marshal error", t, func() {
		resp, err := NewJSONResponse("200", make(chan int))
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(resp, convey.ShouldBeNil)
	})
}
