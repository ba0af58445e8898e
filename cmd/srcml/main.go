// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command srcml translates one or more source files into srcML and
// writes the result to stdout or a named output file. It is a thin
// demonstration driver over package srcml, not the full command-line
// surface; flag handling deliberately stays direct rather than wrapping
// a generic CLI framework.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/srcml-go/srcml/archive"
	"github.com/srcml-go/srcml/srcml"
)

func main() {
	var (
		output       string
		configPath   string
		forceArchive bool
		language     string
	)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] file...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&output, "o", "", "output path (default: stdout)")
	flag.StringVar(&configPath, "config", "", "path to a YAML/TOML config file (default: ~/.srcmlrc.yaml)")
	flag.BoolVar(&forceArchive, "archive", false, "force archive framing even for a single input file")
	flag.StringVar(&language, "language", "", "force language for every input file (C, C++, C++11, Java, AspectJ, C#)")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(paths, output, configPath, language, forceArchive); err != nil {
		fmt.Fprintln(os.Stderr, "srcml:", err)
		os.Exit(1)
	}
}

func run(paths []string, output, configPath, language string, forceArchive bool) error {
	cfg, err := loadConfigOrDefault(configPath)
	if err != nil {
		return err
	}

	a, err := cfg.NewArchive()
	if err != nil {
		return err
	}
	if forceArchive || len(paths) > 1 {
		a.SetOptions(a.Options().With(srcml.OptionArchive))
	}
	if lang, ok := languageFlag(language); ok {
		a.SetDefaultLanguage(lang)
	}

	w := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("srcml: creating %q: %w", output, err)
		}
		defer f.Close()
		w = f
	}

	if err := a.OpenWrite(w, rootAttrsFor(paths)); err != nil {
		return err
	}

	ctx := context.Background()
	pool := srcml.NewPool(ctx, a, 0)
	for _, p := range paths {
		req := srcml.ParseRequest{Path: p}
		if lang, ok := languageFlag(language); ok {
			req.Language = lang
		}
		pool.Submit(req)
	}
	if err := pool.Wait(); err != nil {
		return err
	}
	return a.Close()
}

func loadConfigOrDefault(configPath string) (srcml.Config, error) {
	if configPath != "" {
		return srcml.LoadConfig(configPath)
	}
	if cfg, err := srcml.LoadConfig("~/.srcmlrc.yaml"); err == nil {
		return cfg, nil
	}
	return srcml.Config{Tabstop: 8}, nil
}

func languageFlag(name string) (srcml.Language, bool) {
	switch strings.ToUpper(name) {
	case "C":
		return srcml.C, true
	case "C++", "CXX":
		return srcml.CXX, true
	case "C++11", "CXX0X":
		return srcml.CXX0X, true
	case "JAVA":
		return srcml.JAVA, true
	case "ASPECTJ":
		return srcml.ASPECTJ, true
	case "C#", "CSHARP":
		return srcml.CSHARP, true
	default:
		return srcml.Unknown, false
	}
}

// rootAttrsFor names the collection-level directory attribute when every
// input file shares a common parent, matching the archive-mode root tag
// the reference implementation writes for directory translation.
func rootAttrsFor(paths []string) archive.UnitAttrs {
	if len(paths) == 0 {
		return archive.UnitAttrs{}
	}
	dir := filepath.Dir(paths[0])
	for _, p := range paths[1:] {
		if filepath.Dir(p) != dir {
			return archive.UnitAttrs{}
		}
	}
	return archive.UnitAttrs{Directory: dir}
}
