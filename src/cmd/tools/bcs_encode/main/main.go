// Copyright (c) 2021 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.


// bcs_encode loads a YAML document of value definitions and prints the BCS
// encoding of the values, concatenated in order, as hex.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/erikcasson/aptos-bcs/src/cmd/tools/bcs_encode/config"
	xconfig "github.com/erikcasson/aptos-bcs/src/x/config"
	"github.com/erikcasson/aptos-bcs/src/x/config/configflag"
	"github.com/erikcasson/aptos-bcs/src/x/instrument"

	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

func main() {
	var cfgOpts configflag.Options
	cfgOpts.Register()

	flag.Parse()

	var cfg config.Configuration
	if err := cfgOpts.MainLoad(&cfg, xconfig.Options{}); err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.Logging.BuildLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	iopts := instrument.NewOptions().
		SetLogger(logger).
		SetMetricsScope(tally.NoopScope)

	opts, err := cfg.NewOptions(iopts)
	if err != nil {
		logger.Fatal("invalid serializer options", zap.Error(err))
	}

	b, err := cfg.Encode(opts, cfg.NewSerializerPool(opts))
	if err != nil {
		logger.Fatal("unable to encode values", zap.Error(err))
	}

	logger.Debug("encoded values",
		zap.Int("values", len(cfg.Values)),
		zap.Int("bytes", len(b)))

	// Use fmt package so it goes to stdout instead of stderr
	fmt.Println(cfg.FormatHex(b))
}
