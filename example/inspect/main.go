package main

import (
	"bufview"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Inspect prints a window of a file or hex string as hex rows and decodes every
// fixed-width value at -at.
func main() {
	hexIn := flag.String("hex", "", "input bytes as hex")
	file := flag.String("file", "", "input file path")
	offset := flag.Int("offset", 0, "window offset")
	length := flag.Int("length", -1, "window length, -1 for the rest of the input")
	chunk := flag.Int("chunk", 16, "bytes per printed row")
	at := flag.Int("at", 0, "decode position relative to the window")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	bufview.SetLogger(log)

	buf, err := load(*hexIn, *file)
	if err != nil {
		log.Errorf("load input: %v", err)
		os.Exit(1)
	}
	if *length < 0 {
		*length = len(buf) - *offset
	}
	v, err := bufview.WrapRange(buf, *offset, *length)
	if err != nil {
		log.Errorf("wrap: %v", err)
		os.Exit(1)
	}
	log.Infof("input %d bytes, window %s", len(buf), v)

	if err := dump(v, *chunk); err != nil {
		log.Errorf("dump: %v", err)
		os.Exit(1)
	}
	decodeAll(v, *at)
}

var (
	errBothInputs = errors.New("use either -hex or -file")
	errNoInput    = errors.New("no input: use -hex or -file")
)

func load(hexIn, file string) ([]byte, error) {
	switch {
	case hexIn != "" && file != "":
		return nil, errBothInputs
	case hexIn != "":
		return hex.DecodeString(strings.ReplaceAll(hexIn, " ", ""))
	case file != "":
		return os.ReadFile(file)
	default:
		return nil, errNoInput
	}
}

func dump(v bufview.View[byte], size int) error {
	rows, err := v.Chunks(size)
	if err != nil {
		return err
	}
	pos := v.Offset()
	for row := range rows {
		fmt.Printf("%08x  %s\n", pos, hex.EncodeToString(row.Slice()))
		pos += row.Len()
	}
	return nil
}

func decodeAll(v bufview.View[byte], at int) {
	show := func(name string, val interface{}, err error) {
		if err != nil {
			fmt.Printf("%-8s -\n", name)
			return
		}
		fmt.Printf("%-8s %v\n", name, val)
	}
	b, err := bufview.BoolAt(v, at)
	show("bool", b, err)
	c, err := bufview.CharAt(v, at)
	show("char", c, err)
	i16, err := bufview.Int16At(v, at)
	show("int16", i16, err)
	u16, err := bufview.Uint16At(v, at)
	show("uint16", u16, err)
	i32, err := bufview.Int32At(v, at)
	show("int32", i32, err)
	u32, err := bufview.Uint32At(v, at)
	show("uint32", u32, err)
	f32, err := bufview.Float32At(v, at)
	show("float32", f32, err)
	i64, err := bufview.Int64At(v, at)
	show("int64", i64, err)
	u64, err := bufview.Uint64At(v, at)
	show("uint64", u64, err)
	f64, err := bufview.Float64At(v, at)
	show("float64", f64, err)
}
