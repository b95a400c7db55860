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
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Settings interface {
	// GetValue 获取指定的参数值
	GetValue(key string) (interface{}, error)
}

type Configuration struct {
	*viper.Viper
}

var onceConfig sync.Once
var Config *Configuration = nil

func newConfiguration() *Configuration {
	c := &Configuration{viper.New()}
	c.SetDefault("log.level", "info")
	c.SetDefault("serializer.legacy_terminator", true)
	c.SetDefault("serializer.strict_body", false)
	c.SetDefault("sender.rate_limit", 0)
	c.SetDefault("server.addr", "127.0.0.1:8080")
	c.SetDefault("server.read_timeout", 10*time.Second)
	c.SetDefault("api.addr", "127.0.0.1:12138")
	return c
}

func newWirereplyConfig() {
	onceConfig.Do(func() {
		Config = newConfiguration()
	})
}

func (c *Configuration) GetValue(key string) (interface{}, error) {
	value := c.Get(key)
	return value, nil
}

// Section decode the sub tree under key into out
func (c *Configuration) Section(key string, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(c.sectionMap(key))
}

// sectionMap the sub tree under key with defaults merged in
func (c *Configuration) sectionMap(key string) map[string]interface{} {
	node := c.AllSettings()
	for _, part := range strings.Split(strings.ToLower(key), ".") {
		next, ok := node[part].(map[string]interface{})
		if !ok {
			return map[string]interface{}{}
		}
		node = next
	}
	return node
}

// SerializerOptions 根据配置生成序列化器参数
func (c *Configuration) SerializerOptions() []SerializerOption {
	opts := make([]SerializerOption, 0, 2)
	if !c.GetBool("serializer.legacy_terminator") {
		opts = append(opts, SerializerWithStandardTerminator())
	}
	if c.GetBool("serializer.strict_body") {
		opts = append(opts, SerializerWithStrictBody())
	}
	return opts
}

// SenderOptions 根据配置生成发送器参数
func (c *Configuration) SenderOptions() []SenderOption {
	opts := []SenderOption{
		SenderWithSerializer(NewSerializer(c.SerializerOptions()...)),
	}
	if rate := c.GetInt("sender.rate_limit"); rate > 0 {
		opts = append(opts, SenderWithLimiter(NewDefaultLimiter(rate)))
	}
	return opts
}

func (c *Configuration) load(dir string) bool {
	c.AddConfigPath(dir)
	c.SetConfigName("settings")
	c.SetConfigType("yaml")
	readErr := c.ReadInConfig()
	return readErr == nil
}
func initSettings() {
	newWirereplyConfig()
	wd, _ := os.Getwd()
	var abPath string

	_, filename, _, ok := runtime.Caller(0)
	if ok {
		abPath = path.Dir(filename)

	}
	Config.load(wd)
	Config.load(abPath)

}
