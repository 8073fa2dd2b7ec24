//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sfeldkamp/TopicRiver/internal/vv"
)

// CurrentConfiguration - the settings that govern a modeling run
type CurrentConfiguration struct {
	BlackAndWhite bool
	CorpusFile    string
	Iterations    int
	LogLevel      int
	OutputDir     string
	Palette       string
	PaletteSize   int
	QuietStart    bool
	ResultsDB     string
	Seed          int
	TopTerms      int
	TopicCount    int
	WorkerCount   int
}

var (
	Config = BuildDefaultConfig()
	msg    = sharedmsg
)

// BuildDefaultConfig - return a CurrentConfiguration filled out with the stock values
func BuildDefaultConfig() CurrentConfiguration {
	var c CurrentConfiguration
	c.BlackAndWhite = false
	c.CorpusFile = vv.DEFAULTCORPUSFILE
	c.Iterations = vv.LDAITER
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.OutputDir = vv.DEFAULTOUTPUTDIR
	c.Palette = vv.DEFAULTPALETTE
	c.PaletteSize = vv.DEFAULTPALETTESIZE
	c.QuietStart = false
	c.ResultsDB = ""
	c.Seed = vv.LDASEED
	c.TopTerms = vv.TOPTERMSPERTOPIC
	c.TopicCount = vv.LDATOPICS
	c.WorkerCount = vv.DEFAULTWORKERS
	return c
}

// ConfigAtLaunch - read the configuration values from JSON and/or the command line
func ConfigAtLaunch(palettenames string) {
	const (
		FAIL1 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		MSG1  = "'%s%s'%s loaded"
	)

	Config = BuildDefaultConfig()

	lookforconfigfile()

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	prolixcfg := h + vv.CONFIGPROLIX

	loadedcfg, e := os.Open(prolixcfg)
	var errc error
	if e == nil {
		decoderc := json.NewDecoder(loadedcfg)
		confc := CurrentConfiguration{}
		errc = decoderc.Decode(&confc)
		_ = loadedcfg.Close()
		if errc == nil {
			Config = confc
		} else {
			msg.CRIT(fmt.Sprintf(FAIL1, prolixcfg))
		}
	}

	args := os.Args[1:]

	grab := func(i int, flag string) string {
		v, err := flagvalue(args, i, flag)
		msg.EC(err)
		return v
	}

	for i, a := range args {
		switch a {
		case "-bw":
			Config.BlackAndWhite = true
		case "-cf":
			Config.CorpusFile = grab(i, a)
		case "-gl":
			ll, err := strconv.Atoi(grab(i, a))
			msg.EC(err)
			Config.LogLevel = ll
		case "-h":
			printversion()
			ht := msg.ColStyle(vv.TERMINALTEXT)
			fmt.Printf(ht, vv.MYNAME, vv.VERSION, vv.SHORTNAME, vv.DEFAULTCORPUSFILE, vv.LDATOPICS,
				vv.LDAMAXTOPICS, vv.LDAITER, vv.LDASEED, vv.TOPTERMSPERTOPIC, vv.DEFAULTOUTPUTDIR,
				palettenames, vv.DEFAULTPALETTE, vv.DEFAULTWORKERS, h, vv.CONFIGPROLIX, h, vv.CONFIGSTOPS)
			os.Exit(0)
		case "-it":
			it, err := strconv.Atoi(grab(i, a))
			msg.EC(err)
			Config.Iterations = it
		case "-od":
			Config.OutputDir = grab(i, a)
		case "-pl":
			Config.Palette = grab(i, a)
		case "-q":
			Config.QuietStart = true
		case "-sd":
			sd, err := strconv.Atoi(grab(i, a))
			msg.EC(err)
			Config.Seed = sd
		case "-sq":
			Config.ResultsDB = grab(i, a)
		case "-tp":
			tp, err := strconv.Atoi(grab(i, a))
			msg.EC(err)
			Config.TopicCount = tp
		case "-tt":
			tt, err := strconv.Atoi(grab(i, a))
			msg.EC(err)
			Config.TopTerms = tt
		case "-v":
			fmt.Println(vv.VERSION)
			os.Exit(0)
		case "-vv":
			printversion()
			fmt.Println(vv.PROJURL)
			os.Exit(0)
		case "-wc":
			wc, err := strconv.Atoi(grab(i, a))
			msg.EC(err)
			Config.WorkerCount = wc
		default:
			// do nothing
		}
	}

	RebindMessenger()

	y := ""
	if errc != nil || e != nil {
		y = " *not*"
	}
	msg.TMI(fmt.Sprintf(MSG1, h, vv.CONFIGPROLIX, y))

	msg.EC(SanityCheck(Config))
}

// flagvalue - the argument after a value-taking flag; trailing flags get a diagnostic, not a panic
func flagvalue(args []string, i int, flag string) (string, error) {
	const (
		NOVAL = "the '%s' flag wants a value and did not receive one"
	)
	if i+1 >= len(args) {
		return "", fmt.Errorf(NOVAL, flag)
	}
	return args[i+1], nil
}

// SanityCheck - refuse configurations the modeler cannot honor
func SanityCheck(c CurrentConfiguration) error {
	const (
		BADTOPICS = "topic count must lie in [1, %d]; you requested %d"
		BADITER   = "iteration count must be a positive integer; you requested %d"
		BADTERMS  = "top terms per label must be a positive integer; you requested %d"
		BADWORK   = "worker count must be a positive integer; you requested %d"
	)
	if c.TopicCount < 1 || c.TopicCount > vv.LDAMAXTOPICS {
		return fmt.Errorf(BADTOPICS, vv.LDAMAXTOPICS, c.TopicCount)
	}
	if c.Iterations < 1 {
		return fmt.Errorf(BADITER, c.Iterations)
	}
	if c.TopTerms < 1 {
		return fmt.Errorf(BADTERMS, c.TopTerms)
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf(BADWORK, c.WorkerCount)
	}
	return nil
}

// lookforconfigfile - if there is no config file, write one with the default values
func lookforconfigfile() {
	const (
		FYI = "\tC1Creating configuration directory: 'C3%sC1'C0"
		FNF = "\tC1Generating a default 'C3%sC1'C0"
		FWR = "\tC1Wrote configuration to 'C3%sC1'C0"
	)

	uh, e := os.UserHomeDir()
	if e != nil {
		// how likely is this...?
		return
	}
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)

	if _, err := os.Stat(h + vv.CONFIGPROLIX); err == nil {
		return
	}

	if _, err := os.Stat(h); err != nil {
		fmt.Println(msg.Color(fmt.Sprintf(FYI, h)))
		ee := os.MkdirAll(h, os.FileMode(0700))
		msg.EC(ee)
	}

	fmt.Println(msg.Color(fmt.Sprintf(FNF, vv.CONFIGPROLIX)))

	content, err := json.MarshalIndent(BuildDefaultConfig(), "", vv.JSONINDENT)
	msg.EC(err)

	err = os.WriteFile(h+vv.CONFIGPROLIX, content, vv.WRITEPERMS)
	msg.EC(err)

	fmt.Println(msg.Color(fmt.Sprintf(FWR, h+vv.CONFIGPROLIX)))
}

func printversion() {
	const (
		SN = ` [C4%sC0] `
	)
	v := fmt.Sprintf("C5S1%s v.%sC0S0", vv.MYNAME, vv.VERSION)
	v = v + fmt.Sprintf(SN, vv.SHORTNAME)
	fmt.Println(msg.ColStyle(strings.TrimSpace(v)))
}
