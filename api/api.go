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

package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/wetrycode/wirereply"
)

var apiLog *logrus.Entry = wirereply.GetLogger("api")

// ReplyAPI exposes the sender statistics over http
type ReplyAPI struct {
	G      *gin.Engine
	Sender *wirereply.Sender
}

type statusResp struct {
	Stats       map[string]uint64 `json:"stats"`
	AverageSize float64           `json:"average_size"`
	ProcessId   string            `json:"process_id"`
}

func (t *ReplyAPI) status(ctx *gin.Context) {
	statistic := t.Sender.GetStatistic()
	rsp := statusResp{
		Stats:       statistic.GetAllStats(),
		AverageSize: wirereply.AverageResponseSize(statistic),
		ProcessId:   wirereply.ProcessId,
	}
	appG := Gin{Ctx: ctx}

	appG.Response(http.StatusOK, SUCCESS, rsp)

}

// Server 启动api服务,直到服务关闭
func (t *ReplyAPI) Server(addr string) *http.Server {
	server := &http.Server{
		Addr:         addr,
		Handler:      t.G,
		ReadTimeout:  time.Duration(10 * time.Second),
		WriteTimeout: time.Duration(10 * time.Second),
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			apiLog.Errorf("api server error %s", err.Error())
		}
	}()
	return server
}

func NewAPI(sender *wirereply.Sender) *ReplyAPI {
	API := &ReplyAPI{
		Sender: sender,
	}
	g := SetUp()

	v1Router := g.Group("/api/v1")
	v1Router.GET("/status", API.status)
	API.G = g
	return API

}
