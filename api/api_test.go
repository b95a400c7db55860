package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/smartystreets/goconvey/convey"
	"github.com/wetrycode/wirereply"
)

type testStatusResp struct {
	APIVersion string `json:"api"`
	Code       int    `json:"code"`
	Message    string `json:"msg"`
	Data       struct {
		Stats       map[string]uint64 `json:"stats"`
		AverageSize float64           `json:"average_size"`
		ProcessId   string            `json:"process_id"`
	} `json:"data"`
}

func TestStatusAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	convey.Convey("test status api", t, func() {
		sender := wirereply.NewSender()
		buf := new(bytes.Buffer)
		err := sender.SendResponse(context.Background(), wirereply.NewResponse("200", wirereply.ResponseWithBody("xxx")), buf)
		convey.So(err, convey.ShouldBeNil)

		api := NewAPI(sender)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
		api.G.ServeHTTP(w, req)
		convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

		rsp := testStatusResp{}
		err = jsoniter.Unmarshal(w.Body.Bytes(), &rsp)
		convey.So(err, convey.ShouldBeNil)
		convey.So(rsp.Code, convey.ShouldEqual, SUCCESS)
		convey.So(rsp.Message, convey.ShouldEqual, "ok")
		convey.So(rsp.Data.Stats[wirereply.ResponseStats], convey.ShouldEqual, 1)
		convey.So(rsp.Data.Stats[wirereply.BytesStats], convey.ShouldEqual, buf.Len())
		convey.So(rsp.Data.AverageSize, convey.ShouldEqual, float64(buf.Len()))
		convey.So(rsp.Data.ProcessId, convey.ShouldEqual, wirereply.ProcessId)
	})
	convey.Convey("test unknown api route", t, func() {
		api := NewAPI(wirereply.NewSender())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
		api.G.ServeHTTP(w, req)
		convey.So(w.Code, convey.ShouldEqual, http.StatusNotFound)
		convey.So(w.Body.String(), convey.ShouldContainSubstring, "resource not found")
	})
	convey.Convey("test get msg", t, func() {
		convey.So(GetMsg(INVALID_PARAMS), convey.ShouldEqual, "bad request")
		convey.So(GetMsg(12345), convey.ShouldEqual, "fail")
	})
}
