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
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"
)

const (
	// ResponseStats 发送成功的响应总数
	ResponseStats string = "responses"
	// BytesStats 写入的字节总数
	BytesStats string = "bytes"
	// WriteFailStats 写入失败总数
	WriteFailStats string = "write_fail"
	// ErrorStats 错误总数
	ErrorStats string = "errors"
	// OtherStatusStats responses whose code is outside the status table
	OtherStatusStats string = "other"
)

// StatisticInterface 数据统计组件接口
type StatisticInterface interface {
	GetAllStats() map[string]uint64
	Incr(metric string)
	Add(metric string, delta uint64)
	Get(metric string) uint64
}

// DefaultStatistic 数据统计指标
type DefaultStatistic struct {
	Metrics  map[string]*uint64
	register sync.Map
}

// NewDefaultStatistic 默认统计数据组件构造函数
func NewDefaultStatistic() *DefaultStatistic {
	m := map[string]*uint64{
		ResponseStats:    new(uint64),
		BytesStats:       new(uint64),
		WriteFailStats:   new(uint64),
		ErrorStats:       new(uint64),
		OtherStatusStats: new(uint64),
	}
	for _, code := range knownStatusCodes {
		m[code] = new(uint64)
	}
	return &DefaultStatistic{
		Metrics:  m,
		register: sync.Map{},
	}
}

// Incr 新增一个指标值
func (s *DefaultStatistic) Incr(metric string) {
	s.Add(metric, 1)
}

// Add 指标值增加delta, unknown metrics are ignored
func (s *DefaultStatistic) Add(metric string, delta uint64) {
	v, ok := s.Metrics[metric]
	if !ok {
		return
	}
	atomic.AddUint64(v, delta)
	s.register.Store(metric, true)
}

// Get 获取某个指标的数值
func (s *DefaultStatistic) Get(metric string) uint64 {
	v, ok := s.Metrics[metric]
	if !ok {
		return 0
	}
	return atomic.LoadUint64(v)
}

// GetAllStats 格式化统计数据
func (s *DefaultStatistic) GetAllStats() map[string]uint64 {
	result := make(map[string]uint64)
	s.register.Range(func(key any, _ any) bool {
		k := key.(string)
		result[k] = s.Get(k)
		return true

	})
	return result
}

// AverageResponseSize 平均响应大小,保留两位小数
func AverageResponseSize(s StatisticInterface) float64 {
	count := s.Get(ResponseStats)
	if count == 0 {
		return 0
	}
	total := decimal.NewFromInt(int64(s.Get(BytesStats)))
	return total.Div(decimal.NewFromInt(int64(count))).Round(2).InexactFloat64()
}

// statusMetric 状态码对应的指标名
func statusMetric(code string) string {
	if IsKnownStatus(code) {
		return code
	}
	return OtherStatusStats
}
