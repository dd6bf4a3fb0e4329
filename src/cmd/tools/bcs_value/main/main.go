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


// bcs_value prints the BCS encoding of a single value given on the command
// line, for example:
//
//	bcs_value -t u64 -v 9432012321182
//	bcs_value -t string -v potato --tag 0x1::string::String
package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/erikcasson/aptos-bcs/src/bcs/types"
	"github.com/erikcasson/aptos-bcs/src/bcs/valuedef"
	"github.com/erikcasson/aptos-bcs/src/x/bcs"
	"github.com/erikcasson/aptos-bcs/src/x/instrument"

	"github.com/pborman/getopt"
	"go.uber.org/zap"
)

func main() {
	var (
		optType   = getopt.StringLong("type", 't', "", "Value type [e.g. u64, string, bytes, address]")
		optValue  = getopt.StringLong("value", 'v', "", "Value [hex for bytes]")
		optTag    = getopt.StringLong("tag", 'g', "", "Move type tag to write before the value (optional)")
		optPrefix = getopt.BoolLong("prefix", 'p', "Prefix output with 0x")
		optDebug  = getopt.BoolLong("debug", 'd', "Debug logging")
	)
	getopt.Parse()

	if *optType == "" {
		getopt.Usage()
		os.Exit(1)
	}

	logCfg := zap.NewDevelopmentConfig()
	if !*optDebug {
		logCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	rawLogger, err := logCfg.Build()
	if err != nil {
		log.Fatalf("unable to create logger: %+v", err)
	}
	logger := rawLogger.Sugar()

	opts := bcs.NewOptions().
		SetInstrumentOptions(instrument.NewOptions().SetLogger(rawLogger))

	elem, err := valuedef.NewBuilder(opts).Build(valuedef.ValueConfiguration{
		Type:  valuedef.Type(*optType),
		Value: *optValue,
	})
	if err != nil {
		logger.Fatalf("invalid value: %v", err)
	}

	if *optTag != "" {
		tag, err := types.ParseTypeTag(*optTag)
		if err != nil {
			logger.Fatalf("invalid type tag: %v", err)
		}
		elem = types.NewValue(tag, elem).Tagged()
	}

	b, err := bcs.Marshal(elem, opts)
	if err != nil {
		logger.Fatalf("unable to encode value: %v", err)
	}

	out := hex.EncodeToString(b)
	if *optPrefix {
		out = "0x" + out
	}
	// Use fmt package so it goes to stdout instead of stderr
	fmt.Println(out)
}
