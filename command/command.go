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

package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wetrycode/wirereply"
	"github.com/wetrycode/wirereply/api"
	"github.com/wetrycode/wirereply/server"
)

var logger = wirereply.GetLogger("command")

type renderFlags struct {
	status   string
	headers  []string
	body     string
	noBody   bool
	standard bool
	strict   bool
}

type serveFlags struct {
	addr    string
	apiAddr string
	routes  map[string]string
}

// newRootCmd represents the base command when called without any subcommands
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wirereply",
		Short:         "wirereply renders and sends minimal HTTP/1.1 responses",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newRenderCmd(), newServeCmd())
	return rootCmd
}

func newRenderCmd() *cobra.Command {
	f := &renderFlags{}
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Write a serialized response to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := make([]wirereply.ResponseOption, 0, 2)
			if len(f.headers) > 0 {
				header, err := parseHeaders(f.headers)
				if err != nil {
					return err
				}
				opts = append(opts, wirereply.ResponseWithHeader(header))
			}
			if f.noBody && cmd.Flags().Changed("body") {
				return fmt.Errorf("--body and --no-body can not be used together")
			}
			if cmd.Flags().Changed("body") {
				opts = append(opts, wirereply.ResponseWithBody(f.body))
			}
			serializerOpts := wirereply.Config.SerializerOptions()
			if f.standard {
				serializerOpts = append(serializerOpts, wirereply.SerializerWithStandardTerminator())
			}
			if f.strict {
				serializerOpts = append(serializerOpts, wirereply.SerializerWithStrictBody())
			}
			sender := wirereply.NewSender(wirereply.SenderWithSerializer(wirereply.NewSerializer(serializerOpts...)))
			resp := wirereply.NewResponse(f.status, opts...)
			return sender.SendResponse(commandContext(cmd), resp, cmd.OutOrStdout())
		},
	}
	renderCmd.Flags().StringVarP(&f.status, "status", "s", wirereply.StatusOK, "status code of the response")
	renderCmd.Flags().StringArrayVarP(&f.headers, "header", "H", nil, "response header as Name:Value, repeatable")
	renderCmd.Flags().StringVarP(&f.body, "body", "b", "", "response body, omitted when not set")
	renderCmd.Flags().BoolVar(&f.noBody, "no-body", false, "send the response without body")
	renderCmd.Flags().BoolVar(&f.standard, "standard", false, "end Content-Length with a bare CRLF")
	renderCmd.Flags().BoolVar(&f.strict, "strict", false, "fail when no body is given")
	return renderCmd
}

func newServeCmd() *cobra.Command {
	f := &serveFlags{}
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve static responses and the status api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := server.Settings{}
			if err := wirereply.Config.Section("server", &settings); err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") || settings.Addr == "" {
				settings.Addr = f.addr
			}
			apiAddr := wirereply.Config.GetString("api.addr")
			if cmd.Flags().Changed("api-addr") || apiAddr == "" {
				apiAddr = f.apiAddr
			}
			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sender := wirereply.NewSender(wirereply.Config.SenderOptions()...)
			apiServer := api.NewAPI(sender).Server(apiAddr)
			defer apiServer.Shutdown(context.Background())
			logger.Infof("status api listening on %s", apiAddr)

			srv := server.NewServer(server.NewStaticHandler(f.routes),
				server.ServerWithSender(sender),
				server.ServerWithReadTimeout(settings.ReadTimeout))
			return srv.ListenAndServe(ctx, settings.Addr)
		},
	}
	serveCmd.Flags().StringVar(&f.addr, "addr", "127.0.0.1:8080", "address of the response server")
	serveCmd.Flags().StringVar(&f.apiAddr, "api-addr", "127.0.0.1:12138", "address of the status api")
	serveCmd.Flags().StringToStringVarP(&f.routes, "route", "r", map[string]string{"/": "<h1>wirereply</h1>"}, "path=body pairs served on GET")
	return serveCmd
}

// parseHeaders 解析 Name:Value 形式的响应头
func parseHeaders(raw []string) (*wirereply.Header, error) {
	header := wirereply.NewHeader()
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q, want Name:Value", h)
		}
		header.Set(name, value)
	}
	return header, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// ExecuteCmd run the command line with args
func ExecuteCmd(args []string) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		logger.Errorf("command error %s", err.Error())
	}
	return err
}
