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

// SenderOption Sender 构造过程中的可选参数
type SenderOption func(s *Sender)

// SenderWithSerializer 发送时使用的序列化器
func SenderWithSerializer(serializer *Serializer) SenderOption {
	return func(s *Sender) {
		s.serializer = serializer
	}
}

// SenderWithLimiter 发送前等待限速器
func SenderWithLimiter(limiter LimitInterface) SenderOption {
	return func(s *Sender) {
		s.limiter = limiter
	}
}

// SenderWithStatistic 统计组件
func SenderWithStatistic(statistic StatisticInterface) SenderOption {
	return func(s *Sender) {
		s.statistic = statistic
	}
}
