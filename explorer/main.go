// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/apich238/cayleybfs/cayley"
	"github.com/apich238/cayleybfs/groups"
)

// rawModeWarnN is the state length above which running without bit packing
// deserves a warning: the raw codec burns a full word per element.
const rawModeWarnN = 32

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		// Enable timestamps + file:line to simplify debugging self-built binaries.
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "cayleybfs"
	myApp.Usage = "explorer(batched BFS over Cayley graphs)"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "family,f",
			Value: "lrx",
			Usage: "named generator family: lrx, top_spin, all_transpositions, pancake",
		},
		cli.IntFlag{
			Name:  "n",
			Value: 8,
			Usage: "state length",
		},
		cli.StringFlag{
			Name:  "central",
			Value: "",
			Usage: `central state as decimal digits, eg: "0110110110"; empty keeps the identity`,
		},
		cli.StringFlag{
			Name:  "bitwidth",
			Value: "",
			Usage: `bit encoding width: empty for raw words, "auto", or a width in bits`,
		},
		cli.IntFlag{
			Name:  "batchsize",
			Value: 0,
			Usage: "max frontier rows per neighbor-kernel call, 0 for the default",
		},
		cli.IntFlag{
			Name:  "hashchunk",
			Value: 0,
			Usage: "max rows hashed per tile, 0 for the default",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 0,
			Usage: "kernel parallelism, 0 for GOMAXPROCS",
		},
		cli.IntFlag{
			Name:  "maxdiameter",
			Value: 0,
			Usage: "stop after this many layers, 0 for unlimited",
		},
		cli.IntFlag{
			Name:  "maxexplore",
			Value: 0,
			Usage: "halt before expanding a layer larger than this, 0 for unlimited",
		},
		cli.IntFlag{
			Name:  "maxstore",
			Value: 0,
			Usage: "drop layers larger than this from the result store, 0 for the default",
		},
		cli.BoolFlag{
			Name:  "edges",
			Usage: "record the explored edges",
		},
		cli.BoolFlag{
			Name:  "hashes",
			Usage: "record vertex hashes and names",
		},
		cli.StringFlag{
			Name:  "csv",
			Value: "",
			Usage: "write the growth function to a csv file",
		},
		cli.StringFlag{
			Name:  "log",
			Value: "",
			Usage: "specify a log file to output, default goes to stderr",
		},
		cli.BoolFlag{
			Name:  "quiet",
			Usage: "to suppress the per-layer progress messages",
		},
		cli.StringFlag{
			Name:  "c",
			Value: "", // when set, the JSON file must exist on disk
			Usage: "config from json file, which will override the command from shell",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		config := Config{}
		config.Family = c.String("family")
		config.N = c.Int("n")
		config.Central = c.String("central")
		config.BitWidth = c.String("bitwidth")
		config.BatchSize = c.Int("batchsize")
		config.HashChunk = c.Int("hashchunk")
		config.Workers = c.Int("workers")
		config.MaxDiameter = c.Int("maxdiameter")
		config.MaxExplore = c.Int("maxexplore")
		config.MaxStore = c.Int("maxstore")
		config.Edges = c.Bool("edges")
		config.Hashes = c.Bool("hashes")
		config.CSV = c.String("csv")
		config.Log = c.String("log")
		config.Quiet = c.Bool("quiet")

		if c.String("c") != "" {
			// Only JSON configuration files are supported at the moment.
			err := parseJSONConfig(&config, c.String("c"))
			checkError(err)
		}

		// Redirect logs when the user supplied a dedicated log file.
		if config.Log != "" {
			f, err := os.OpenFile(config.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			checkError(err)
			defer f.Close()
			log.SetOutput(f)
		}

		def, err := buildGraphDef(&config)
		checkError(err)

		opts, err := buildOptions(&config)
		checkError(err)

		log.Println("version:", VERSION)
		log.Println("family:", config.Family, "n:", def.N())
		log.Println("generators:", len(def.Generators()))
		log.Println("central:", config.Central)
		log.Println("bitwidth:", config.BitWidth)
		log.Println("batchsize:", config.BatchSize)
		log.Println("hashchunk:", config.HashChunk)
		log.Println("workers:", config.Workers)
		log.Println("maxdiameter:", config.MaxDiameter)
		log.Println("maxexplore:", config.MaxExplore)
		log.Println("maxstore:", config.MaxStore)
		log.Println("edges:", config.Edges, "hashes:", config.Hashes)

		if def.N() > rawModeWarnN && opts.BitWidth == 0 && !opts.AutoWidth {
			color.Red("Memory Warning: n=%d without bit encoding spends %d words per state, consider -bitwidth auto", def.N(), def.N())
		}
		if !def.InverseClosed() {
			color.Red("Generator Warning: the set is not inverse-closed, BFS will refuse to run")
		}

		graph, err := cayley.NewGraph(def, opts)
		checkError(err)
		log.Println("codec:", graph.Mode(), "words per state:", graph.WordsPerState())

		start := time.Now()
		result, err := graph.BFS(cayley.BFSOptions{
			MaxDiameter:           config.MaxDiameter,
			MaxLayerSizeToExplore: config.MaxExplore,
			MaxLayerSizeToStore:   config.MaxStore,
			ReturnAllEdges:        config.Edges,
			ReturnAllHashes:       config.Hashes,
		})
		checkError(err)
		elapsed := time.Since(start)

		if !config.Quiet {
			for d, size := range result.LayerSizes {
				log.Println("layer:", d, "size:", size)
			}
		}
		log.Println("diameter:", result.Diameter())
		log.Println("vertices:", result.NumVertices())
		log.Println("completed:", result.Completed)
		if config.Edges {
			log.Println("recorded edges:", len(result.Edges))
		}
		log.Println("elapsed:", elapsed)

		if config.CSV != "" {
			checkError(writeGrowthCSV(config.CSV, result))
			log.Println("growth written to:", config.CSV)
		}
		return nil
	}
	myApp.Run(os.Args)
}

// buildGraphDef resolves the graph definition: explicit generators from the
// JSON config take precedence over the named-family catalog.
func buildGraphDef(config *Config) (cayley.GraphDef, error) {
	var def cayley.GraphDef
	var err error
	if len(config.Generators) > 0 {
		if len(config.GeneratorNames) > 0 {
			def, err = cayley.NewNamedGraphDef(config.Generators, config.GeneratorNames)
		} else {
			def, err = cayley.NewGraphDef(config.Generators)
		}
	} else {
		def, err = groups.Prepare(fmt.Sprintf("%s_%d", config.Family, config.N))
	}
	if err != nil {
		return cayley.GraphDef{}, err
	}
	if config.Central != "" {
		return def.WithCentralState(config.Central)
	}
	return def, nil
}

// buildOptions translates the flag-level encoding spec into engine options.
func buildOptions(config *Config) (cayley.Options, error) {
	opts := cayley.Options{
		BatchSize:     config.BatchSize,
		HashChunkSize: config.HashChunk,
		Workers:       config.Workers,
	}
	switch config.BitWidth {
	case "":
	case "auto":
		opts.AutoWidth = true
	default:
		width, err := strconv.Atoi(config.BitWidth)
		if err != nil {
			return cayley.Options{}, fmt.Errorf("invalid bitwidth %q", config.BitWidth)
		}
		opts.BitWidth = width
	}
	return opts, nil
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}
