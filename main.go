// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"
	"sigs.k8s.io/yaml"

	"github.com/wso2/ai-agent-management-platform/mlclient/config"
	"github.com/wso2/ai-agent-management-platform/mlclient/core"
	"github.com/wso2/ai-agent-management-platform/mlclient/logger"
	"github.com/wso2/ai-agent-management-platform/mlclient/ml"
	"github.com/wso2/ai-agent-management-platform/mlclient/wiring"
)

// optionalBool is a flag that remembers whether it was given at all.
type optionalBool struct {
	value *bool
}

func (b *optionalBool) String() string {
	if b == nil || b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = &v
	return nil
}

func (b *optionalBool) IsBoolFlag() bool { return true }

// optionalInt is an int flag that remembers whether it was given at all, so
// negative values still reach request validation.
type optionalInt struct {
	value *int
}

func (i *optionalInt) String() string {
	if i == nil || i.value == nil {
		return ""
	}
	return strconv.Itoa(*i.value)
}

func (i *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	i.value = &v
	return nil
}

type options struct {
	ids              string
	all              bool
	allowNoMatch     optionalBool
	excludeGenerated optionalBool
	from             optionalInt
	size             optionalInt
	output           string
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("mlclient", flag.ContinueOnError)
	fs.StringVar(&opts.ids, "ids", "", "comma separated data frame analytics ids or wildcard expressions")
	fs.BoolVar(&opts.all, "all", false, "get every data frame analytics job")
	fs.Var(&opts.allowNoMatch, "allow-no-match", "do not fail when a wildcard matches nothing (server default when omitted)")
	fs.Var(&opts.excludeGenerated, "exclude-generated", "strip generated fields from the configurations (server default when omitted)")
	fs.Var(&opts.from, "from", "skip this many jobs (server default when omitted)")
	fs.Var(&opts.size, "size", "return at most this many jobs (server default when omitted)")
	fs.StringVar(&opts.output, "output", "json", "output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.all && opts.ids != "" {
		return nil, fmt.Errorf("-all and -ids are mutually exclusive")
	}
	if opts.output != "json" && opts.output != "yaml" {
		return nil, fmt.Errorf("unsupported output format %q", opts.output)
	}
	return opts, nil
}

func buildRequest(opts *options) *ml.GetDataFrameAnalyticsRequest {
	var req *ml.GetDataFrameAnalyticsRequest
	if opts.all {
		req = ml.NewGetAllDataFrameAnalyticsRequest()
	} else {
		var ids []string
		for _, id := range strings.Split(opts.ids, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		req = ml.NewGetDataFrameAnalyticsRequest(ids...)
	}
	if opts.allowNoMatch.value != nil {
		req.SetAllowNoMatch(*opts.allowNoMatch.value)
	}
	if opts.excludeGenerated.value != nil {
		req.SetExcludeGenerated(*opts.excludeGenerated.value)
	}
	if opts.from.value != nil || opts.size.value != nil {
		req.SetPageParams(&core.PageParams{From: opts.from.value, Size: opts.size.value})
	}
	return req
}

func run(ctx context.Context, client ml.MachineLearningClient, opts *options, out io.Writer) error {
	resp, err := client.GetDataFrameAnalytics(ctx, buildRequest(opts))
	if err != nil {
		return err
	}

	var data []byte
	if opts.output == "yaml" {
		data, err = yaml.Marshal(resp)
	} else {
		data, err = json.MarshalIndent(resp, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func main() {
	cfg := config.GetConfig()

	// stdout carries the response
	logger.Setup(cfg.LogLevel, os.Stderr)

	if cfg.AutoMaxProcsEnabled {
		if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			// Convert printf-style format string to plain message for structured logging
			slog.Debug(fmt.Sprintf(format, args...))
		})); err != nil {
			slog.Error("Failed to set maxprocs", "error", err)
			os.Exit(1)
		}
	}

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		slog.Error("invalid arguments", "error", err)
		os.Exit(1)
	}

	dependencies, err := wiring.InitializeAppParams(cfg)
	if err != nil {
		slog.Error("failed to initialize app dependencies", "error", err)
		os.Exit(1)
	}

	ctx := logger.WithLogger(signals.SetupSignalHandler(), dependencies.Logger)
	if err := run(ctx, dependencies.MLClient, opts, os.Stdout); err != nil {
		slog.Error("failed to get data frame analytics", "error", err)
		os.Exit(1)
	}
}
