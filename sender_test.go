package wirereply

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

type failWriter struct {
	accept int
	err    error
}

func (f *failWriter) Write(p []byte) (int, error) {
	if len(p) <= f.accept {
		return len(p), nil
	}
	return f.accept, f.err
}

type countLimiter struct {
	calls int
	err   error
}

func (c *countLimiter) CheckAndWaitLimiterPass() error {
	c.calls++
	return c.err
}

func TestSendResponse(t *testing.T) {
	convey.Convey("test send response to buffer", t, func() {
		sender := NewSender()
		buf := new(bytes.Buffer)
		err := sender.SendResponse(context.Background(), NewResponse("200", ResponseWithBody("xxx")), buf)
		convey.So(err, convey.ShouldBeNil)
		convey.So(buf.String(), convey.ShouldEqual, "HTTP/1.1 200 OK\r\nContent-Type:text/html\r\nContent-Length: 3;\r\n\r\nxxx")

		stats := sender.GetStatistic()
		convey.So(stats.Get(ResponseStats), convey.ShouldEqual, 1)
		convey.So(stats.Get("200"), convey.ShouldEqual, 1)
		convey.So(stats.Get(BytesStats), convey.ShouldEqual, buf.Len())
	})
	convey.Convey("test send response shorthand", t, func() {
		buf := new(bytes.Buffer)
		err := NewResponse("404").SendResponse(buf)
		convey.So(err, convey.ShouldBeNil)
		convey.So(buf.String(), convey.ShouldEqual, "HTTP/1.1 404 Not Found\r\nContent-Type:text/html\r\nContent-Length: 0;\r\n\r\n")
	})
	convey.Convey("test send response propagates write error", t, func() {
		sender := NewSender()
		cause := errors.New("connection reset")
		resp := NewResponse("200", ResponseWithBody("xxx"))
		err := sender.SendResponse(context.Background(), resp, &failWriter{accept: 10, err: cause})
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(errors.Is(err, cause), convey.ShouldBeTrue)
		var writeErr *WriteError
		convey.So(errors.As(err, &writeErr), convey.ShouldBeTrue)
		convey.So(writeErr.Written, convey.ShouldEqual, 10)
		convey.So(writeErr.Expected, convey.ShouldEqual, len(resp.String()))
		convey.So(sender.GetStatistic().Get(WriteFailStats), convey.ShouldEqual, 1)
		convey.So(sender.GetStatistic().Get(ResponseStats), convey.ShouldEqual, 0)
	})
	convey.Convey("test send response short write", t, func() {
		sender := NewSender()
		err := sender.SendResponse(context.Background(), NewResponse("200"), &failWriter{accept: 4})
		convey.So(errors.Is(err, io.ErrShortWrite), convey.ShouldBeTrue)
	})
	convey.Convey("test send response strict body error", t, func() {
		sender := NewSender(SenderWithSerializer(NewSerializer(SerializerWithStrictBody())))
		buf := new(bytes.Buffer)
		err := sender.SendResponse(context.Background(), NewResponse("200"), buf)
		convey.So(err, convey.ShouldEqual, ErrMissingBody)
		convey.So(buf.Len(), convey.ShouldEqual, 0)
		convey.So(sender.GetStatistic().Get(ErrorStats), convey.ShouldEqual, 1)
	})
	convey.Convey("test send response with canceled context", t, func() {
		sender := NewSender()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		buf := new(bytes.Buffer)
		err := sender.SendResponse(ctx, NewResponse("200"), buf)
		convey.So(err, convey.ShouldEqual, context.Canceled)
		convey.So(buf.Len(), convey.ShouldEqual, 0)
	})
	convey.Convey("test send response to nil writer", t, func() {
		err := NewSender().SendResponse(context.Background(), NewResponse("200"), nil)
		convey.So(err, convey.ShouldEqual, ErrNilWriter)
	})
	convey.Convey("test send response waits for limiter", t, func() {
		limiter := &countLimiter{}
		sender := NewSender(SenderWithLimiter(limiter))
		for i := 0; i < 3; i++ {
			err := sender.SendResponse(context.Background(), NewResponse("500", ResponseWithBody("e")), io.Discard)
			convey.So(err, convey.ShouldBeNil)
		}
		convey.So(limiter.calls, convey.ShouldEqual, 3)
		convey.So(sender.GetStatistic().Get("500"), convey.ShouldEqual, 3)
	})
	convey.Convey("test send response limiter error", t, func() {
		cause := errors.New("closed")
		sender := NewSender(SenderWithLimiter(&countLimiter{err: cause}))
		err := sender.SendResponse(context.Background(), NewResponse("200"), io.Discard)
		convey.So(errors.Is(err, ErrLimiterBlock), convey.ShouldBeTrue)
		convey.So(errors.Is(err, cause), convey.ShouldBeTrue)
		var limiterErr *LimiterError
		convey.So(errors.As(err, &limiterErr), convey.ShouldBeTrue)
		convey.So(limiterErr.Err, convey.ShouldEqual, cause)
		convey.So(err.Error(), convey.ShouldEqual, "wait for limiter error: closed")
	})
	convey.Convey("test failed writes are not counted as sent bytes", t, func() {
		stats := NewDefaultStatistic()
		sender := NewSender(SenderWithStatistic(stats))
		buf := new(bytes.Buffer)
		err := sender.SendResponse(context.Background(), NewResponse("200", ResponseWithBody("abcd")), buf)
		convey.So(err, convey.ShouldBeNil)
		err = sender.SendResponse(context.Background(), NewResponse("200", ResponseWithBody("abcd")),
			&failWriter{accept: 20, err: errors.New("broken pipe")})
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(stats.Get(BytesStats), convey.ShouldEqual, buf.Len())
		convey.So(stats.Get(WriteFailStats), convey.ShouldEqual, 1)
		convey.So(AverageResponseSize(stats), convey.ShouldEqual, float64(buf.Len()))
	})
	convey.Convey("test send response counts unknown status", t, func() {
		stats := NewDefaultStatistic()
		sender := NewSender(SenderWithStatistic(stats))
		err := sender.SendResponse(context.Background(), NewResponse("302"), io.Discard)
		convey.So(err, convey.ShouldBeNil)
		convey.So(stats.Get(OtherStatusStats), convey.ShouldEqual, 1)
	})
}
