//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "TopicRiver"
	SHORTNAME = "TPR"
	VERSION   = "0.1.0"
	PROJURL   = "https://github.com/sfeldkamp/TopicRiver"

	CONFIGALTAPTH = "%s/.config/TopicRiver/"
	CONFIGPROLIX  = "tpr-conf.json"
	CONFIGSTOPS   = "tpr-stopwords.json"
	JSONINDENT    = "  "
	WRITEPERMS    = 0644

	DEFAULTCORPUSFILE = "corpus.csv"
	DEFAULTOUTPUTDIR  = "."
	BARCHARTFILE      = "topics-by-decade-bars.html"
	STREAMGRAPHFILE   = "topics-by-decade-stream.html"

	// the cataloguers promise nothing outside of [1500, 1800]
	FIRSTACCEPTABLEYEAR = 1500
	LASTACCEPTABLEYEAR  = 1800

	LDATOPICS        = 15
	LDAMAXTOPICS     = 30
	LDAITER          = 1000
	LDASEED          = 9161
	TOPTERMSPERTOPIC = 7

	DEFAULTPALETTE     = "spectral"
	DEFAULTPALETTESIZE = 15
	DEFAULTCHRTWIDTH   = "1500px"
	DEFAULTCHRTHEIGHT  = "900px"

	DEFAULTGOLOGLEVEL = 0
	DEFAULTWORKERS    = 1 // >1 will cost you run-to-run reproducibility
)

// TERMINALTEXT - the "-h" text; the Cn color codes are swapped out by the messenger
const TERMINALTEXT = `C1%s v.%sC0

    model the thematic drift of a historical corpus, decade by decade

    C3usageC0: %s [flags]

    C1-cfC0 path   corpus csv file: id, description, date (default "%s")
    C1-tpC0 int    number of topics to model (default %d; max %d)
    C1-itC0 int    sampling iterations (default %d)
    C1-sdC0 int    random seed for reproducible models (default %d)
    C1-ttC0 int    top terms used to label each topic (default %d)
    C1-odC0 path   output directory for the chart files (default "%s")
    C1-sqC0 path   also archive the run into a sqlite db at this path
    C1-plC0 name   color palette: %s (default "%s")
    C1-glC0 int    terminal log level: 0 is quiet; 5 is very noisy
    C1-wcC0 int    worker count handed to the modeler (default %d)
    C1-bwC0        disable color in the terminal
    C1-qC0         quiet start
    C1-vC0         print version and exit
    C1-vvC0        print version and project url, then exit
    C1-hC0         this message

    config file: '%s%s' (written with defaults on first run)
    stopword override: '%s%s' (a json list of strings)
`
