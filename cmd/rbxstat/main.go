// The rbxstat command displays stats for a binary place/model file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/robloxapi/rbxcore"
	"github.com/robloxapi/rbxcore/bin"
)

const usage = `usage: rbxstat [INPUT] [OUTPUT]

Reads a binary place/model file from INPUT, and writes to OUTPUT
statistics for the file.

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then
stdin is used. If OUTPUT is "-" or unspecified, then stdout is used.
Errors are written to stderr. Decode warnings are listed in the Warnings
field of the output.
`

// Stats summarizes the instance tree decoded from a file.
type Stats struct {
	InstanceCount    int
	ClassCount       map[string]int
	TypeCount        map[string]int
	SharedStringHits int `json:",omitempty"`
	Warnings         []string
}

func (s *Stats) fill(dom *rbxcore.DOM, result bin.Result) {
	s.ClassCount = map[string]int{}
	s.TypeCount = map[string]int{}

	dom.Walk(func(inst *rbxcore.Instance) bool {
		s.InstanceCount++
		s.ClassCount[inst.ClassName]++
		for _, v := range inst.Properties {
			s.TypeCount[v.Type().String()]++
			if _, ok := v.(rbxcore.ValueSharedString); ok {
				s.SharedStringHits++
			}
		}
		return true
	})

	for _, w := range result.Warnings {
		s.Warnings = append(s.Warnings, w.Error())
	}
}

func main() {
	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout

	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()
	args := flag.Args()
	if len(args) >= 1 && args[0] != "-" {
		in, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("open input: %w", err))
			return
		}
		input = in
		defer in.Close()
	}
	if len(args) >= 2 && args[1] != "-" {
		out, err := os.Create(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("create output: %w", err))
			return
		}
		defer out.Close()
		output = out
	}

	dom, result, err := bin.NewDecoder().Decode(input, bin.DecodeOptions{})
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("decode error: %w", err))
		return
	}

	var stats Stats
	stats.fill(dom, result)

	je := json.NewEncoder(output)
	je.SetEscapeHTML(false)
	je.SetIndent("", "\t")
	if err := je.Encode(stats); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("write error: %w", err))
	}
}
