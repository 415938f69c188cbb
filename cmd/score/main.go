package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/golang/glog"
	flag "github.com/spf13/pflag"

	"github.com/kho/nspell"
)

func main() {
	modelPath := flag.String("model", "", "path to a trained model file")
	flag.Parse()

	if *modelPath == "" {
		glog.Fatal("-model is required")
	}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	model := nspell.NewModel()
	if !model.Load(*modelPath) {
		glog.Fatalf("loading model from %s", *modelPath)
	}

	runtime.GC()
	runtime.ReadMemStats(&after)
	glog.Infof("model memory overhead: %.2fMB", float64(after.Alloc-before.Alloc)/float64(1<<20))

	in := bufio.NewScanner(os.Stdin)
	var numLines int
	start := time.Now()
	for in.Scan() {
		line := in.Text()
		score := model.Score(line)
		fmt.Printf("%g\t%s\n", score, line)
		numLines++
	}
	if err := in.Err(); err != nil {
		glog.Fatalf("reading stdin: %v", err)
	}
	elapsed := time.Since(start)
	glog.Infof("scored %d lines in %v (%v/line)", numLines, elapsed, safeDiv(elapsed, numLines))
}

func safeDiv(d time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}
	return d / time.Duration(n)
}
