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


// Package configflag wires config file loading to command line flags.
package configflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erikcasson/aptos-bcs/src/x/config"
)

var _ flag.Value = (*FlagStringSlice)(nil)

var errNoConfigFiles = errors.New("-f is required (no config files provided)")

// Options holds the config related command line flags.
type Options struct {
	// ConfigFiles (-f) are loaded in order, later files override earlier ones.
	ConfigFiles FlagStringSlice

	// DumpAndExit (-d) prints the merged config to stdout and exits.
	DumpAndExit bool

	// ValidateAndExit (-z) exits with status zero once the config loads and
	// validates.
	ValidateAndExit bool

	flags  *flag.FlagSet
	stdout io.Writer
	exit   func(status int)
}

// Register registers the flags with the default flag set.
func (opts *Options) Register() {
	opts.RegisterFlagSet(flag.CommandLine)
}

// RegisterFlagSet registers the flags with the given flag set.
func (opts *Options) RegisterFlagSet(flags *flag.FlagSet) {
	opts.flags = flags

	flags.Var(&opts.ConfigFiles, "f", "Configuration files to load")
	flags.BoolVar(&opts.DumpAndExit, "d", false, "Dump configuration and exit")
	flags.BoolVar(&opts.ValidateAndExit, "z", false, "Validate configuration and exit")
}

// Load loads the files named by -f into target.
func (opts *Options) Load(target interface{}, loadOpts config.Options) error {
	files := opts.ConfigFiles.Value
	if len(files) == 0 {
		if opts.flags != nil {
			opts.flags.Usage()
		}
		return errNoConfigFiles
	}
	if err := config.LoadFiles(target, files, loadOpts); err != nil {
		return fmt.Errorf("unable to load config from %s: %v", files, err)
	}
	return nil
}

// MainLoad is intended for main(). It loads the config into target and then
// honors -d and -z, which both exit the process.
func (opts *Options) MainLoad(target interface{}, loadOpts config.Options) error {
	if err := opts.Load(target, loadOpts); err != nil {
		return err
	}

	switch {
	case opts.DumpAndExit:
		if err := config.Dump(target, opts.stdoutWriter()); err != nil {
			return fmt.Errorf("failed to dump config: %v", err)
		}
		opts.exitProcess(0)
	case opts.ValidateAndExit:
		opts.exitProcess(0)
	}
	return nil
}

func (opts *Options) stdoutWriter() io.Writer {
	if opts.stdout == nil {
		return os.Stdout
	}
	return opts.stdout
}

func (opts *Options) exitProcess(status int) {
	if opts.exit == nil {
		os.Exit(status)
	}
	opts.exit(status)
}

// FlagStringSlice is a repeatable string flag:
// 	./app -f file1.yaml -f file2.yaml
type FlagStringSlice struct {
	Value []string

	overridden bool
}

// String returns a string representation of the slice.
func (i *FlagStringSlice) String() string {
	if i == nil {
		return ""
	}
	return fmt.Sprintf("%v", i.Value)
}

// Set appends a value. The first call replaces any default values.
func (i *FlagStringSlice) Set(value string) error {
	if !i.overridden {
		i.overridden = true
		i.Value = nil
	}
	i.Value = append(i.Value, value)
	return nil
}
