//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package bagging

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/sfeldkamp/TopicRiver/internal/gen"
	"github.com/sfeldkamp/TopicRiver/internal/lnch"
	"github.com/sfeldkamp/TopicRiver/internal/vv"
)

//
// STOPWORDS
//

// the catalogue entries are a western european polyglot mash; the combined set
// covers the five languages the descriptions actually turn up in

var (
	// EnglishStop - common low-information english words
	EnglishStop = []string{"a", "about", "after", "again", "against", "all", "also", "am", "an", "and", "any",
		"are", "as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but", "by",
		"can", "could", "did", "do", "does", "doing", "down", "during", "each", "few", "for", "from", "further",
		"had", "has", "have", "having", "he", "her", "here", "hers", "him", "his", "how", "i", "if", "in", "into",
		"is", "it", "its", "itself", "may", "me", "more", "most", "my", "no", "nor", "not", "now", "of", "off",
		"on", "once", "only", "or", "other", "our", "out", "over", "own", "per", "same", "shall", "she", "should",
		"so", "some", "such", "than", "that", "the", "their", "theirs", "them", "then", "there", "these", "they",
		"this", "those", "through", "to", "too", "under", "until", "up", "upon", "very", "was", "we", "were",
		"what", "when", "where", "which", "while", "who", "whom", "why", "with", "within", "without", "would",
		"you", "your", "yours"}
	// FrenchStop - common low-information french words
	FrenchStop = []string{"au", "aux", "avec", "ce", "ces", "cette", "chez", "dans", "de", "des", "du", "elle",
		"elles", "en", "entre", "et", "eux", "il", "ils", "je", "la", "le", "les", "leur", "leurs", "lui", "ma",
		"mais", "mes", "moi", "mon", "ne", "nos", "notre", "nous", "on", "ou", "où", "par", "pas", "pour", "qu",
		"que", "qui", "sa", "se", "ses", "son", "sont", "sur", "ta", "te", "tes", "toi", "ton", "tu", "un", "une",
		"vos", "votre", "vous", "à", "ça", "étaient", "était", "été", "être"}
	// SpanishStop - common low-information spanish words
	SpanishStop = []string{"al", "algo", "como", "con", "contra", "cual", "cuando", "de", "del", "desde", "donde",
		"durante", "el", "ella", "ellas", "ellos", "en", "entre", "era", "eran", "es", "esa", "esas", "ese",
		"eso", "esos", "esta", "estas", "este", "esto", "estos", "fue", "fueron", "ha", "había", "han", "hasta",
		"hay", "la", "las", "lo", "los", "más", "me", "mi", "mis", "mucho", "muy", "nada", "ni", "no", "nos",
		"nosotros", "o", "os", "otra", "otro", "para", "pero", "poco", "por", "porque", "qué", "se", "según",
		"ser", "si", "sin", "sobre", "son", "su", "sus", "también", "te", "tiene", "todo", "todos", "tras", "tu",
		"tus", "un", "una", "unas", "uno", "unos", "y", "ya", "yo"}
	// DutchStop - common low-information dutch words
	DutchStop = []string{"aan", "al", "alles", "als", "altijd", "andere", "ben", "bij", "daar", "dan", "dat",
		"de", "der", "deze", "die", "dit", "doch", "doen", "door", "dus", "een", "eens", "en", "er", "ge",
		"geen", "geweest", "haar", "had", "heb", "hebben", "heeft", "hem", "het", "hier", "hij", "hoe", "hun",
		"iemand", "iets", "ik", "in", "is", "ja", "je", "kan", "kon", "kunnen", "maar", "me", "meer", "men",
		"met", "mij", "mijn", "moet", "na", "naar", "niet", "niets", "nog", "nu", "of", "om", "omdat", "onder",
		"ons", "ook", "op", "over", "reeds", "te", "tegen", "toch", "toen", "tot", "u", "uit", "uw", "van",
		"veel", "voor", "want", "waren", "was", "wat", "werd", "wezen", "wie", "wil", "worden", "wordt", "zal",
		"ze", "zelf", "zich", "zij", "zijn", "zo", "zonder", "zou"}
	// LatinStop - common low-information latin words (the learned entries lapse into latin constantly)
	LatinStop = []string{"a", "ab", "ac", "ad", "apud", "atque", "aut", "autem", "cum", "de", "dum", "e", "enim",
		"ergo", "est", "et", "etiam", "ex", "haec", "hic", "hoc", "iam", "in", "inter", "ita", "nam", "nec",
		"neque", "non", "nunc", "ob", "per", "post", "pro", "quae", "quam", "qui", "quia", "quibus", "quod",
		"sed", "si", "sic", "sine", "sive", "sub", "sunt", "super", "tam", "tamen", "ubi", "ut", "vel"}
	// DutchKeep - members of DutchStop we will not toss: genuine catalogue vocabulary
	DutchKeep = []string{"werd", "wezen"}
)

// getbuiltinstops - the combined multilingual stop set
func getbuiltinstops() map[string]struct{} {
	du := gen.SetSubtraction(DutchStop, DutchKeep)

	var all []string
	all = append(all, EnglishStop...)
	all = append(all, FrenchStop...)
	all = append(all, SpanishStop...)
	all = append(all, du...)
	all = append(all, LatinStop...)
	return gen.ToSet(all)
}

var msg = lnch.SharedMessageMaker()

// GetStopSet - the combined stop set; an override file in the config directory replaces the built-ins
func GetStopSet() map[string]struct{} {
	const (
		ERR1 = "GetStopSet() cannot find UserHomeDir"
		ERR2 = "GetStopSet() failed to parse "
		MSG1 = "GetStopSet() wrote the stopword configuration file: "
	)

	builtin := getbuiltinstops()

	h, e := os.UserHomeDir()
	if e != nil {
		msg.MAND(ERR1)
		return builtin
	}

	cfg := fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGSTOPS

	if _, yes := os.Stat(cfg); yes != nil {
		// write the built-ins out so the curious can see and edit them
		stops := gen.StringMapKeysIntoSlice(builtin)
		sort.Strings(stops)
		content, err := json.MarshalIndent(stops, "", vv.JSONINDENT)
		msg.EC(err)

		if err = os.WriteFile(cfg, content, vv.WRITEPERMS); err == nil {
			msg.PEEK(MSG1 + vv.CONFIGSTOPS)
		}
		return builtin
	}

	loadedcfg, _ := os.Open(cfg)
	decoderc := json.NewDecoder(loadedcfg)
	var stp []string
	errc := decoderc.Decode(&stp)
	_ = loadedcfg.Close()
	if errc != nil {
		msg.CRIT(ERR2 + vv.CONFIGSTOPS)
		return builtin
	}

	return gen.ToSet(stp)
}
