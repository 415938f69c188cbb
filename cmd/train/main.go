package main

import (
	"os"
	"time"

	"github.com/golang/glog"
	flag "github.com/spf13/pflag"

	"github.com/kho/nspell"
)

func main() {
	alphabet := flag.String("alphabet", "", "path to the alphabet file")
	text := flag.String("text", "", "path to the training text")
	pretrained := flag.String("pretrained", "", "optional path to a pre-trained model to augment")
	mergeWith := flag.String("merge", "", "optional path to a second trained model to merge with -pretrained")
	out := flag.String("out", "model.bin", "path to write the trained model")
	sqliteOut := flag.String("sqlite", "", "optional path to also export raw counts as SQLite")
	flag.Parse()

	if *alphabet == "" || *text == "" {
		glog.Fatal("-alphabet and -text are required")
	}

	textBytes, err := os.ReadFile(*text)
	if err != nil {
		glog.Fatalf("reading training text: %v", err)
	}

	var model *nspell.Model
	start := time.Now()

	switch {
	case *mergeWith != "":
		a := nspell.NewModel()
		if !a.Load(*pretrained) {
			glog.Fatalf("loading model A from %s", *pretrained)
		}
		b := nspell.NewModel()
		if !b.Load(*mergeWith) {
			glog.Fatalf("loading model B from %s", *mergeWith)
		}
		model = nspell.NewModel()
		if !model.Merge(a, b) {
			glog.Fatal("merge failed")
		}
	case *pretrained != "":
		pre := nspell.NewModel()
		if !pre.Load(*pretrained) {
			glog.Fatalf("loading pre-trained model from %s", *pretrained)
		}
		model = nspell.NewModel()
		if !model.TrainPretrained(*alphabet, string(textBytes), pre) {
			glog.Fatal("training failed")
		}
	default:
		model = nspell.NewModel()
		if !model.Train(*alphabet, string(textBytes)) {
			glog.Fatal("training failed")
		}
	}

	glog.Infof("training took %v; %d words, %d distinct unigrams, checksum=%#x",
		time.Since(start), model.TotalWords(), model.VocabSize(), model.Checksum())

	if !model.Dump(*out) {
		glog.Fatalf("writing model to %s", *out)
	}

	if *sqliteOut != "" {
		if !model.ConvertToSQLite(*sqliteOut) {
			glog.Fatalf("exporting SQLite diagnostic file to %s", *sqliteOut)
		}
	}
}
