// Copyright 2025 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// cxxtags extracts macro tags from C-family sources: every #define (with
// its argument list, if parameterized), every #undef, and every
// `#pragma weak NAME` found
// while streaming each input through the preprocessing transducer. Inputs
// are named by doublestar glob patterns, e.g.
//
//	cxxtags 'src/**/*.{c,h}' 'vendor/**/*.cpp'
//
// Output is one tab-separated line per tag: name, file, kind, line,
// signature.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ctagsgo/cxxpp/internal/collections"
	"github.com/ctagsgo/cxxpp/internal/cpp"
)

func main() {
	cfg, patterns := parseFlags()
	if len(patterns) == 0 {
		fmt.Fprintln(os.Stderr, "usage: cxxtags [flags] pattern...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := NewApp(cfg).Run(patterns); err != nil {
		die(err)
	}
}

func die(err error) { fmt.Fprintln(os.Stderr, err); os.Exit(1) }

type Config struct {
	if0         bool
	braceFormat bool
	fileScope   bool
	sorted      bool
	output      string
}

func parseFlags() (Config, []string) {
	var cfg Config
	flag.BoolVar(&cfg.if0, "if0", false, "Scan #if 0 blocks instead of skipping them")
	flag.BoolVar(&cfg.braceFormat, "brace-format", false, "Assume a brace-counting downstream parser (disables single-branch heuristics)")
	flag.BoolVar(&cfg.fileScope, "file-scope", true, "Include file-scope macros from non-header files")
	flag.BoolVar(&cfg.sorted, "sort", true, "Sort output lines")
	flag.StringVar(&cfg.output, "o", "", "Output path (default stdout)")
	flag.Parse()
	return cfg, flag.Args()
}

type App struct {
	cfg Config
}

func NewApp(cfg Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Run(patterns []string) error {
	paths, err := expandPatterns(patterns)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files matched %s", strings.Join(patterns, ", "))
	}

	var tags []fileTag
	for _, path := range paths {
		fileTags, err := a.scanFile(path)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		tags = append(tags, fileTags...)
	}

	lines := collections.MapSlice(tags, formatTagLine)
	if a.cfg.sorted {
		slices.Sort(lines)
	}
	return a.writeLines(lines)
}

// expandPatterns resolves every doublestar glob into the deduplicated,
// sorted list of matched regular files.
func expandPatterns(patterns []string) ([]string, error) {
	matched := make(collections.Set[string])
	for _, pattern := range patterns {
		paths, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		matched.AddSlice(collections.FilterSlice(paths, isRegularFile))
	}
	return matched.SortedValues(strings.Compare), nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// fileTag pairs an emitted macro tag with the file it came from.
type fileTag struct {
	path string
	tag  cpp.MacroTag
}

// tagCollector is the cpp.TagSink wired into every per-file session.
type tagCollector struct {
	path string
	tags []fileTag
}

func (c *tagCollector) EmitMacroTag(tag cpp.MacroTag) {
	c.tags = append(c.tags, fileTag{path: c.path, tag: tag})
}

func (a *App) scanFile(path string) ([]fileTag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sink := &tagCollector{path: path}
	opts := cpp.Options{
		IncludeDefineTags: true,
		LineNumberEntries: true,
		FileScopeTags:     a.cfg.fileScope,
		IF0:               a.cfg.if0,
	}
	session := cpp.NewState(
		cpp.NewBufferReader(data),
		sink,
		func() bool { return isHeaderFile(path) },
		opts,
		a.cfg.braceFormat,
		hasAtLiteralStrings(path),
		hasRawLiteralStrings(path),
	)
	defer session.Terminate()

	for session.NextChar() != cpp.EOF {
	}
	return sink.tags, nil
}

func formatTagLine(ft fileTag) string {
	return fmt.Sprintf("%s\t%s\t%c\t%d\t%s",
		ft.tag.Name, ft.path, cpp.MacroKind, ft.tag.Line, ft.tag.Signature)
}

func (a *App) writeLines(lines []string) error {
	out := os.Stdout
	if a.cfg.output != "" {
		f, err := os.Create(a.cfg.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func isHeaderFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".h", ".hh", ".hpp", ".hxx", ".h++", ".inl":
		return true
	default:
		return false
	}
}

// hasAtLiteralStrings: @"..." verbatim strings exist in C# and Objective-C.
func hasAtLiteralStrings(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cs", ".m", ".mm":
		return true
	default:
		return false
	}
}

// hasRawLiteralStrings: R"delim(...)delim" literals exist in C++ (and its
// headers, which may be included from C++ either way).
func hasRawLiteralStrings(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cc", ".cpp", ".cxx", ".c++", ".hh", ".hpp", ".hxx", ".h++", ".h", ".inl":
		return true
	default:
		return false
	}
}
