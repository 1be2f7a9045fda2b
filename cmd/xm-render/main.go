package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	xm "github.com/TheBrightSide/symphonia-xm-ext"
	"github.com/TheBrightSide/symphonia-xm-ext/render"
	"github.com/TheBrightSide/symphonia-xm-ext/version"
)

func main() {
	pattern := flag.IntP("pattern", "p", -1, "Render only the pattern with this index instead of the whole module.")
	outPath := flag.StringP("output", "o", "", "File to write instead of standard output.")
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
	renderer, err := render.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating renderer: %v\n", err)
		os.Exit(1)
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
		var sheet strings.Builder
		if *pattern >= 0 {
			err = renderer.Pattern(&sheet, module, *pattern)
		} else {
			err = renderer.Module(&sheet, module)
		}
		if err != nil {
			return fmt.Errorf("could not render %v: %v", filename, err)
		}
		if *outPath == "" {
			fmt.Print(sheet.String())
			return nil
		}
		if err := os.WriteFile(*outPath, []byte(sheet.String()), 0644); err != nil {
			return fmt.Errorf("could not write file %v: %v", *outPath, err)
		}
		return nil
	}
	retval := 0
	for _, param := range flag.Args() {
		if err := process(param); err != nil {
			fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", param, err)
			retval = 1
		}
	}
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "XM pattern sheet renderer. Inputs .xm modules, outputs readable pattern sheets.\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
