// This file is part of rtcseed.
//
// rtcseed is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rtcseed is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rtcseed.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/jetsetilly/rtcseed/batch"
	"github.com/jetsetilly/rtcseed/curated"
	"github.com/jetsetilly/rtcseed/digest"
	"github.com/jetsetilly/rtcseed/input"
	"github.com/jetsetilly/rtcseed/logger"
	"github.com/jetsetilly/rtcseed/modalflag"
	"github.com/jetsetilly/rtcseed/paths"
	"github.com/jetsetilly/rtcseed/prefs"
	"github.com/jetsetilly/rtcseed/report"
	"github.com/jetsetilly/rtcseed/statsview"
	"github.com/jetsetilly/rtcseed/terminal"
	"github.com/jetsetilly/rtcseed/terminal/colorterm"
	"github.com/jetsetilly/rtcseed/terminal/plainterm"
	"github.com/jetsetilly/rtcseed/version"
)

// exit codes.
const (
	exitParseError = 10
	exitModeError  = 20
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine.
func launch(sync *mainSync, args []string) {
	sync.state <- stateRequest{req: reqQuit, args: run(args, os.Stdout)}
}

// run the command with the arguments and return the exit code. all output is
// sent to output.
func run(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("TABLE", "SEED", "BATCH", "INTERACTIVE", "VERSION")
	md.AdditionalHelp("fields: YEAR MONTH DAY HOUR MINUTE [SEEDS]. missing fields take their default value")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "TABLE":
		err = table(md, output)

	case "SEED":
		err = single(md, output)

	case "BATCH":
		err = runBatch(md, output)

	case "INTERACTIVE":
		err = interactive(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.Describe())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return 0
}

// flags shared by the modes that use preferences.
type commonFlags struct {
	log      *bool
	save     *bool
	prefsStr *string
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		log:      md.AddBool("log", false, "echo log to stderr"),
		save:     md.AddBool("save", false, "save preferences, including changes made with flags"),
		prefsStr: md.AddString("prefs", "", "preferences for this run. eg. \"seeds.count::20; input.bcd::true\""),
	}
}

// preferences returns the preferences with the command line prefs applied.
// flags is a map of the flag values that have been set by the user and which
// map onto a preference value.
func (cf commonFlags) preferences(md *modalflag.Modes, flags map[string]any) (*preferences, error) {
	if *cf.log {
		logger.SetEcho(os.Stderr, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *cf.prefsStr != "" {
		prefs.PushCommandLineStack(*cf.prefsStr)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "rtcseed", "unused preferences: %s", unused)
			}
		}()
	}

	pr, err := newPreferences()
	if err != nil {
		return nil, err
	}

	// only flags that have been specified override preferences
	var set []string
	md.Visit(func(f string) {
		set = append(set, f)
	})

	for _, f := range set {
		switch f {
		case "bcd":
			err = pr.bcd.Set(flags[f])
		case "strict":
			err = pr.normalize.Set(!flags[f].(bool))
		case "seeds":
			err = pr.count.Set(flags[f])
		case "max":
			err = pr.maxSeeds.Set(flags[f])
		case "format":
			err = pr.format.Set(flags[f])
		}
		if err != nil {
			return nil, err
		}
	}

	if *cf.save {
		if err := pr.save(); err != nil {
			return nil, err
		}
	}

	return pr, nil
}

// requestFlags are the flags used by modes that evaluate a single request.
type requestFlags struct {
	commonFlags
	bcd    *bool
	strict *bool
	seeds  *int
	format *string
}

func addRequestFlags(md *modalflag.Modes) requestFlags {
	return requestFlags{
		commonFlags: addCommonFlags(md),
		bcd:         md.AddBool("bcd", false, "clock reports the time of day in BCD"),
		strict:      md.AddBool("strict", false, "do not correct a day that is too large for the month"),
		seeds:       md.AddInt("seeds", 0, "number of seeds in the table"),
		format:      md.AddString("format", "", "report format: PLAIN, COLOR, JSON, YAML"),
	}
}

func (rf requestFlags) preferences(md *modalflag.Modes) (*preferences, error) {
	return rf.commonFlags.preferences(md, map[string]any{
		"bcd":    *rf.bcd,
		"strict": *rf.strict,
		"seeds":  *rf.seeds,
		"format": *rf.format,
	})
}

// request parses the remaining arguments as input fields.
func request(md *modalflag.Modes, pr *preferences) (input.Request, error) {
	f, err := input.FromArgs(md.RemainingArgs())
	if err != nil {
		return input.Request{}, err
	}

	if strings.TrimSpace(f[input.Seeds]) == "" {
		f[input.Seeds] = pr.seeds()
	}

	return pr.policy().Parse(f)
}

func table(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	flgs := addRequestFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pr, err := flgs.preferences(md)
	if err != nil {
		return err
	}

	req, err := request(md, pr)
	if err != nil {
		return err
	}

	tab, err := report.NewTable("", req)
	if err != nil {
		return err
	}

	return report.Write(output, pr.formatValue, tab)
}

func single(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	flgs := addRequestFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pr, err := flgs.preferences(md)
	if err != nil {
		return err
	}

	req, err := request(md, pr)
	if err != nil {
		return err
	}

	return report.WriteSeed(output, pr.formatValue, req)
}

// file extensions for saved batch reports.
var extensions = map[report.Format]string{
	report.Plain: ".txt",
	report.Color: ".txt",
	report.JSON:  ".json",
	report.YAML:  ".yaml",
}

func runBatch(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	cf := addCommonFlags(md)
	maxSeeds := md.AddInt("max", 0, "maximum number of seeds in a request")
	format := md.AddString("format", "", "report format: PLAIN, COLOR, JSON, YAML")
	out := md.AddBool("out", false, "write report to a new file in the current directory")
	digests := md.AddBool("digest", false, "print the digest of each sequence instead of the report")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("batch file required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	pr, err := cf.preferences(md, map[string]any{
		"max":    *maxSeeds,
		"format": *format,
	})
	if err != nil {
		return err
	}

	f, err := batch.LoadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	tables, err := f.Run(pr.maxSeeds.Get().(int))
	if err != nil {
		return err
	}

	if *digests {
		for i, tab := range tables {
			name := tab.Name
			if name == "" {
				name = fmt.Sprintf("request %d", i)
			}
			fmt.Fprintf(output, "%s: %s\n", name, digest.Entries(tab.Entries))
		}
		return nil
	}

	if !*out {
		return report.Write(output, pr.formatValue, tables...)
	}

	name := strings.TrimSuffix(filepath.Base(md.GetArg(0)), filepath.Ext(md.GetArg(0)))
	fn := paths.UniqueFilename(version.ApplicationName, name) + extensions[pr.formatValue]

	fh, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("batch: %v", err)
	}
	defer fh.Close()

	if err := report.Write(fh, pr.formatValue, tables...); err != nil {
		return err
	}

	fmt.Fprintf(output, "report written to %s\n", fn)

	return nil
}

func interactive(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	flgs := addRequestFlags(md)
	termType := md.AddString("term", "AUTO", "terminal type to use: AUTO, COLOR, PLAIN")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	pr, err := flgs.preferences(md)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	var trm terminal.Terminal

	tt := strings.ToUpper(*termType)
	if tt == "AUTO" {
		tt = "PLAIN"
		if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
			tt = "COLOR"
		}
	}

	switch tt {
	case "COLOR":
		trm = &colorterm.ColorTerminal{}
	case "PLAIN":
		trm = plainterm.NewPlainTerminal(os.Stdin, output)
	default:
		return curated.Errorf("unknown terminal type: %s", *termType)
	}

	err = trm.Initialise()
	if err != nil {
		return err
	}
	defer trm.CleanUp()

	count := pr.count.Get().(int)
	frm := terminal.NewForm(pr.policy(), count)

	return frm.Run(trm)
}
