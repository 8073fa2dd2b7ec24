//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"runtime"
	"time"

	"github.com/sfeldkamp/TopicRiver/internal/mm"
	"github.com/sfeldkamp/TopicRiver/internal/vv"
)

// every package chatters through one shared messenger; ConfigAtLaunch rebinds
// it in place, so a level raised on the command line reaches all of them

var sharedmsg = NewMessageMakerWithDefaults()

// SharedMessageMaker - the messenger the whole program writes to
func SharedMessageMaker() *mm.MessageMaker {
	return sharedmsg
}

// RebindMessenger - push the loaded configuration into the shared messenger
func RebindMessenger() {
	sharedmsg.BW = Config.BlackAndWhite
	sharedmsg.LLvl = Config.LogLevel
}

func NewMessageMakerWithDefaults() *mm.MessageMaker {
	w := false
	if runtime.GOOS == "windows" {
		w = true
	}
	return &mm.MessageMaker{
		Lnc:  time.Now(),
		BW:   false,
		LLvl: vv.DEFAULTGOLOGLEVEL,
		LNm:  vv.MYNAME,
		SNm:  vv.SHORTNAME,
		Ver:  vv.VERSION,
		Win:  w,
	}
}
