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
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// Sender writes serialized responses into caller owned sinks.
// A Sender is safe for concurrent use when its components are.
type Sender struct {
	serializer *Serializer
	limiter    LimitInterface
	statistic  StatisticInterface
}

var sendLog *logrus.Entry = GetLogger("sender")

var defaultSender *Sender = NewSender()

// NewSender 创建发送器
func NewSender(opts ...SenderOption) *Sender {
	s := &Sender{
		serializer: DefaultSerializer,
		statistic:  NewDefaultStatistic(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GetStatistic 获取统计组件
func (s *Sender) GetStatistic() StatisticInterface {
	return s.statistic
}

// SendResponse serialize r and write it to w.
// Any error of the sink is returned as *WriteError.
func (s *Sender) SendResponse(ctx context.Context, r *Response, w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}
	payload, err := s.serializer.Serialize(r)
	if err != nil {
		sendLog.Errorf("serialize response error %s", err.Error())
		s.statistic.Incr(ErrorStats)
		return err
	}
	if s.limiter != nil {
		if err := s.limiter.CheckAndWaitLimiterPass(); err != nil {
			s.statistic.Incr(ErrorStats)
			return &LimiterError{Err: err}
		}
	}
	if err := ctx.Err(); err != nil {
		s.statistic.Incr(ErrorStats)
		return err
	}
	n, err := io.WriteString(w, payload)
	if err == nil && n < len(payload) {
		err = io.ErrShortWrite
	}
	if err != nil {
		sendLog.Errorf("write %s response error %s", r.StatusCode(), err.Error())
		s.statistic.Incr(WriteFailStats)
		return &WriteError{Written: n, Expected: len(payload), Err: err}
	}
	s.statistic.Add(BytesStats, uint64(n))
	s.statistic.Incr(ResponseStats)
	s.statistic.Incr(statusMetric(r.StatusCode()))
	sendLog.Debugf("sent %s response of %d bytes", r.StatusCode(), n)
	return nil
}

// SendResponse write r to w with the default sender
func (r *Response) SendResponse(w io.Writer) error {
	return defaultSender.SendResponse(context.Background(), r, w)
}
