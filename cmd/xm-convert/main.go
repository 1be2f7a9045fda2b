package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	xm "github.com/TheBrightSide/symphonia-xm-ext"
	"github.com/TheBrightSide/symphonia-xm-ext/version"
)

func main() {
	safe := flag.BoolP("no-overwrite", "n", false, "Never overwrite files; if a file already exists and would be overwritten, give an error.")
	list := flag.BoolP("list", "l", false, "Do not write files; just list the files that would be written instead.")
	stdout := flag.BoolP("stdout", "s", false, "Do not write files; write to standard output instead.")
	jsonOut := flag.BoolP("json", "j", false, "Output the module as a .json file instead of .yml.")
	yamlOut := flag.BoolP("yaml", "y", false, "Output the module as a .yml file. This is the default.")
	waveforms := flag.BoolP("waveforms", "w", false, "Include the decoded sample waveforms in the output. They are stripped by default to keep the dumps readable.")
	dump := flag.BoolP("dump", "d", false, "Dump the decoded module to standard error in Go syntax, for debugging.")
	outPath := flag.StringP("output", "o", "", "Directory or filename where to write the output. The directory and its parents are created if needed. By default, output is placed next to the original module file.")
	help := flag.BoolP("help", "h", false, "Show help.")
	versionFlag := flag.BoolP("version", "v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if flag.NArg() == 0 || *help {
		flag.Usage()
		os.Exit(0)
	}
	output := func(filename string, extension string, contents []byte) error {
		if *stdout {
			fmt.Print(string(contents))
			return nil
		}
		dir, name := filepath.Split(filename)
		if *outPath != "" {
			// if the output path is an existing directory, keep the
			// original file name and only switch the directory
			if info, err := os.Stat(*outPath); err == nil && info.IsDir() {
				dir = *outPath
			} else {
				outdir, outname := filepath.Split(*outPath)
				if outdir != "" {
					dir = outdir
				}
				if outname != "" {
					name = outname
				}
			}
		}
		name = strings.TrimSuffix(name, filepath.Ext(name)) + extension
		f := filepath.Join(dir, name)
		if original, err := os.ReadFile(f); err == nil {
			if bytes.Equal(original, contents) {
				return nil // no need to update
			}
			if !*list && *safe {
				return fmt.Errorf("file %v would be overwritten", f)
			}
		}
		if *list {
			fmt.Println(f)
			return nil
		}
		if dir != "" {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return fmt.Errorf("could not create output directory %v: %v", dir, err)
			}
		}
		if err := os.WriteFile(f, contents, 0644); err != nil {
			return fmt.Errorf("could not write file %v: %v", f, err)
		}
		return nil
	}
	process := func(filename string) error {
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("could not read file %v: %v", filename, err)
		}
		module, err := xm.Parse(data)
		if err != nil {
			return fmt.Errorf("could not decode %v: %v", filename, err)
		}
		if !*waveforms {
			for i := range module.Instruments {
				for j := range module.Instruments[i].Samples {
					module.Instruments[i].Samples[j].Data = nil
				}
			}
		}
		if *dump {
			spew.Fdump(os.Stderr, module)
		}
		if *jsonOut {
			contents, err := json.Marshal(module)
			if err != nil {
				return fmt.Errorf("could not marshal the module as json: %v", err)
			}
			if err := output(filename, ".json", contents); err != nil {
				return fmt.Errorf("error outputting json file: %v", err)
			}
		}
		if *yamlOut || !*jsonOut {
			contents, err := yaml.Marshal(module)
			if err != nil {
				return fmt.Errorf("could not marshal the module as yaml: %v", err)
			}
			if err := output(filename, ".yml", contents); err != nil {
				return fmt.Errorf("error outputting yaml file: %v", err)
			}
		}
		return nil
	}
	retval := 0
	for _, param := range flag.Args() {
		if info, err := os.Stat(param); err == nil && info.IsDir() {
			files, err := filepath.Glob(filepath.Join(param, "*.xm"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not glob the path %v for xm files: %v\n", param, err)
				retval = 1
				continue
			}
			upper, err := filepath.Glob(filepath.Join(param, "*.XM"))
			if err == nil {
				files = append(files, upper...)
			}
			for _, file := range files {
				if err := process(file); err != nil {
					fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", file, err)
					retval = 1
				}
			}
		} else {
			if err := process(param); err != nil {
				fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", param, err)
				retval = 1
			}
		}
	}
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "XM module converter. Inputs .xm modules, outputs decoded .yml or .json dumps.\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
