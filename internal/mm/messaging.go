//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

//
// TERMINAL OUTPUT/MESSAGES
//

const (
	MAND  = -1
	CRIT  = 0
	WARN  = 1
	NOTE  = 2
	FYI   = 3
	PEEK  = 4
	TMI   = 5
	RESET = "\033[0m"
	BLUE1 = "\033[38;5;38m"  // DeepSkyBlue2
	BLUE2 = "\033[38;5;68m"  // SteelBlue3
	CYAN2 = "\033[38;5;117m" // SkyBlue1
	GREEN = "\033[38;5;70m"  // Chartreuse3
	RED1  = "\033[38;5;160m" // Red3
	YEL1  = "\033[38;5;178m" // Gold3
	YEL2  = "\033[38;5;143m" // DarkKhaki
	GREY3 = "\033[38;5;242m" // Grey42
	WHITE = "\033[38;5;255m" // Grey93
	PANIC = "[%s%s v.%s%s] %sUNRECOVERABLE ERROR%s\n"
	PANC2 = "[%s%s v.%s%s] (%s%s%s) %sUNRECOVERABLE ERROR%s\n"

	timetrackerthreshold = FYI
)

// MessageMaker - the terminal messenger; one per package as a rule
type MessageMaker struct {
	Lnc  time.Time
	BW   bool
	LLvl int
	LNm  string
	SNm  string
	Ver  string
	Win  bool
}

// Emit - send a message to the terminal, perhaps adding color and style to it
func (m *MessageMaker) Emit(message string, threshold int) {
	// sample output: "[TPR] 681 documents loaded"

	if m.LLvl < threshold {
		return
	}

	if !m.Win && !m.BW {
		var color string

		switch threshold {
		case MAND:
			color = GREEN
		case CRIT:
			color = RED1
		case WARN:
			color = YEL2
		case NOTE:
			color = YEL1
		case FYI:
			color = CYAN2
		case PEEK:
			color = BLUE2
		case TMI:
			color = GREY3
		default:
			color = WHITE
		}
		fmt.Printf("[%s%s%s] %s%s%s\n", YEL1, m.SNm, RESET, color, message, RESET)
	} else {
		// terminal color codes not windows' friend
		fmt.Printf("[%s] %s\n", m.SNm, message)
	}
}

func (m *MessageMaker) MAND(s string) { m.Emit(s, MAND) }
func (m *MessageMaker) CRIT(s string) { m.Emit(s, CRIT) }
func (m *MessageMaker) WARN(s string) { m.Emit(s, WARN) }
func (m *MessageMaker) NOTE(s string) { m.Emit(s, NOTE) }
func (m *MessageMaker) FYI(s string)  { m.Emit(s, FYI) }
func (m *MessageMaker) PEEK(s string) { m.Emit(s, PEEK) }
func (m *MessageMaker) TMI(s string)  { m.Emit(s, TMI) }

// EC - check an error; report and exit if you have one
func (m *MessageMaker) EC(err error) {
	if err != nil {
		fmt.Printf(PANIC, YEL2, m.LNm, m.Ver, RESET, RED1, RESET)
		fmt.Println(err)
		m.ExitOrHang(1)
	}
}

// EF - check an error; report it and the guilty function, then exit
func (m *MessageMaker) EF(err error, fn string) {
	if err != nil {
		fmt.Printf(PANC2, YEL2, m.LNm, m.Ver, RESET, CYAN2, fn, RESET, RED1, RESET)
		fmt.Println(err)
		m.ExitOrHang(1)
	}
}

// Color - color text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Color(tagged string) string {
	// "config file: 'C3%sC0'" ==> blue text for the %s
	swap := strings.NewReplacer("C1", "", "C2", "", "C3", "", "C4", "", "C5", "", "C6", "", "C0", "")

	if !m.Win && !m.BW {
		swap = strings.NewReplacer("C1", YEL1, "C2", CYAN2, "C3", BLUE1, "C4", GREEN, "C5", RED1,
			"C6", GREY3, "C0", RESET)
	}
	return swap.Replace(tagged)
}

// Styled - style text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Styled(tagged string) string {
	const (
		BOLD  = "\033[1m"
		ITAL  = "\033[3m"
		UNDER = "\033[4m"
	)
	swap := strings.NewReplacer("S1", "", "S2", "", "S3", "", "S0", "")

	if !m.Win && !m.BW {
		swap = strings.NewReplacer("S1", BOLD, "S2", ITAL, "S3", UNDER, "S0", RESET)
	}
	return swap.Replace(tagged)
}

func (m *MessageMaker) ColStyle(tagged string) string {
	return m.Styled(m.Color(tagged))
}

// Timer - report how much time elapsed between A and B
func (m *MessageMaker) Timer(letter string, o string, start time.Time, previous time.Time) {
	// sample output: "[B1: 12.331s][Δ: 11.673s] topic model built"
	d := fmt.Sprintf("[Δ: %.3fs] ", time.Since(previous).Seconds())
	o = fmt.Sprintf("[%s: %.3fs]", letter, time.Since(start).Seconds()) + d + o
	m.Emit(o, timetrackerthreshold)
}

// ExitOrHang - Windows should hang to keep the error visible before the window closes and hides it
func (m *MessageMaker) ExitOrHang(e int) {
	const (
		HANG = `Execution suspended. %s is now frozen. Note any errors above. Execution will halt after %d seconds.`
		SUSP = 60
	)
	if !m.Win {
		os.Exit(e)
	} else {
		m.Emit(fmt.Sprintf(HANG, m.LNm, SUSP), MAND)
		time.Sleep(SUSP * time.Second)
		os.Exit(e)
	}
}
