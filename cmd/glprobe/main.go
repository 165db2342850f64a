// SPDX-License-Identifier: Unlicense OR MIT

// Command glprobe connects to the default display, chooses a
// framebuffer configuration and creates an OpenGL ES context, then
// prints what it found. No window is created.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gioui.org/glbind"
)

var (
	eglLibs   = flag.String("egl", "", "comma separated EGL library names to try, in order.")
	glLibs    = flag.String("gl", "", "comma separated GL library names to try, in order.")
	samples   = flag.Int("samples", 0, "request a multisampled configuration with this many samples.")
	depthBits = flag.Int("depth", 24, "minimum depth buffer size.")
	esVersion = flag.Int("version", 2, "requested OpenGL ES major version.")
	verbose   = flag.Bool("v", false, "log library loading and bootstrap steps to stderr.")
)

const mainUsage = `The glprobe command reports the OpenGL ES capabilities of the default display.

Usage:

	glprobe [flags]

The flags are:

	-egl <names>
		comma separated EGL library names to try, in order.
	-gl <names>
		comma separated GL library names to try, in order.
	-samples <n>
		request a multisampled configuration with n samples.
	-depth <bits>
		minimum depth buffer size. Default 24.
	-version <major>
		requested OpenGL ES major version. Default 2.
	-v
		log library loading and bootstrap steps to stderr.
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "glprobe: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if *samples < 0 || *depthBits < 0 {
		return fmt.Errorf("invalid -samples %d or -depth %d", *samples, *depthBits)
	}
	if *esVersion < 2 {
		return fmt.Errorf("invalid -version %d", *esVersion)
	}
	if *verbose {
		glbind.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	opts := []glbind.Option{
		glbind.Samples(*samples),
		glbind.DepthBits(*depthBits),
		glbind.ClientVersion(*esVersion),
	}
	if names := splitList(*eglLibs); len(names) > 0 {
		opts = append(opts, glbind.EGLLibraries(names...))
	}
	if names := splitList(*glLibs); len(names) > 0 {
		opts = append(opts, glbind.GLLibraries(names...))
	}
	b, visID, err := glbind.NewBuilder(opts...)
	if err != nil {
		return err
	}
	defer b.Release()
	printInfo(os.Stdout, visID, b.Info())
	return nil
}

func printInfo(w io.Writer, visID int, info glbind.DisplayInfo) {
	fmt.Fprintf(w, "visual id:      0x%x\n", visID)
	fmt.Fprintf(w, "vendor:         %s\n", info.Vendor)
	fmt.Fprintf(w, "version:        %s\n", info.Version)
	fmt.Fprintf(w, "client apis:    %s\n", info.ClientAPIs)
	fmt.Fprintf(w, "client version: %d\n", info.ClientVersion)
	fmt.Fprintf(w, "extensions:\n")
	for _, ext := range info.Extensions {
		fmt.Fprintf(w, "\t%s\n", ext)
	}
}

func splitList(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
