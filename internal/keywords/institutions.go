package keywords

import "strings"

// Institution maps a sender short code to a human readable institution name
type Institution struct {
	Code string
	Name string
}

// Institutions is ordered: a code must come before any shorter code it contains
// so that e.g. SBICRD resolves to the card before SBI resolves to the bank.
var Institutions = []Institution{
	{"INDUSB", "IndusInd Bank"}, {"INDUSI", "IndusInd Bank"},
	{"HDFCBK", "HDFC Bank"}, {"HDFCBN", "HDFC Bank"},
	{"AXISBK", "Axis Bank"}, {"UTIBNK", "Axis Bank"}, {"AXISBN", "Axis Bank"},
	{"ICICIB", "ICICI Bank"}, {"ICICIP", "ICICI Bank"}, {"ICICIT", "ICICI Bank"}, {"ICIC", "ICICI Bank"},
	{"SBIN", "SBI"}, {"SBIINB", "SBI"}, {"SBIPS", "SBI"}, {"SBICRD", "SBI Credit Card"},
	{"JTEDGE", "Jupiter Bank"}, {"JUPITR", "Jupiter Bank"},
	{"KOTAKB", "Kotak Bank"}, {"KOTAKM", "Kotak Bank"},
	{"FDRL", "Federal Bank"}, {"FEDBNK", "Federal Bank"},
	{"IDFCBK", "IDFC FIRST Bank"}, {"IDFB", "IDFC FIRST Bank"}, {"IDFCFB", "IDFC FIRST Bank"},
	{"ONECRD", "One Card"},
	{"SLICEC", "Slice Card"}, {"SLCEIT", "Slice Account"}, {"SLCE", "Slice Card"}, {"SLICE", "Slice"},
	{"PAYTM", "Paytm"}, {"PYTM", "Paytm"},
	{"BARODA", "BOB"}, {"BOB", "BOB"},
	{"PUNBNB", "PNB"}, {"PNBSMS", "PNB"},
	{"CANBK", "Canara Bank"},
	{"YESBNK", "Yes Bank"},
	{"UBIN", "Union Bank"}, {"UBINBK", "Union Bank"},
	{"IDIBNK", "Indian Bank"},
	{"CBIN", "Central Bank"}, {"CBIND", "Central Bank"},
	{"BKID", "BOI"}, {"BOISMS", "BOI"},
	{"RBLBNK", "RBL Bank"}, {"RBLBK", "RBL Bank"},
	{"AUBNK", "AU Bank"}, {"AUFIRA", "AU Bank"},
	{"EQUTAS", "Equitas Bank"}, {"UJJIVN", "Ujjivan Bank"},
	{"DBSSMS", "DBS Bank"}, {"DBSBK", "DBS Bank"},
	{"SCBANK", "Standard Chartered"}, {"SCREDC", "Standard Chartered"}, {"STANCB", "Standard Chartered"},
	{"CITIBK", "Citi Bank"}, {"CITI", "Citi Bank"},
	{"HSBCBK", "HSBC Bank"}, {"HSBC", "HSBC Bank"}, {"HSBCIM", "HSBC Bank"},
	{"BAJAJF", "Bajaj Finance"}, {"BAJAJ", "Bajaj Finance"},
	{"AMEX", "American Express"}, {"AMEXIN", "American Express"},
	{"TIDEPF", "Tide Bank"},

	// Plain names as they appear in message bodies
	{"HDFC", "HDFC Bank"}, {"ICICI", "ICICI Bank"}, {"AXIS", "Axis Bank"},
	{"KOTAK", "Kotak Bank"}, {"IDFC", "IDFC FIRST Bank"}, {"SBI", "SBI"},
}

// Acronyms are spelled letter by letter when spoken
var Acronyms = map[string]bool{
	"HDFC": true, "SBI": true, "ICICI": true, "IDFC": true, "PNB": true, "BOB": true,
	"DBS": true, "HSBC": true, "RBL": true, "UCO": true, "IOB": true, "KVI": true,
	"UPI": true, "IMPS": true, "NEFT": true, "RTGS": true, "CSB": true, "BOI": true, "AU": true,
}

// minPrefixCodeLen is the shortest code allowed to match the start of a longer word in a body.
// Shorter codes ("BOB", "CITI") must match a whole word.
const minPrefixCodeLen = 5

// LookupSender finds the first institution whose code occurs anywhere in the sender address
func LookupSender(address string) (Institution, bool) {
	upper := strings.ToUpper(address)
	if upper == "" {
		return Institution{}, false
	}
	for _, inst := range Institutions {
		if strings.Contains(upper, inst.Code) {
			return inst, true
		}
	}
	return Institution{}, false
}

// LookupBody finds the first institution whose code starts a word in lower, which must be lower-cased
func LookupBody(lower string) (Institution, bool) {
	for _, inst := range Institutions {
		code := strings.ToLower(inst.Code)
		if containsCode(lower, code) {
			return inst, true
		}
	}
	return Institution{}, false
}

func containsCode(lower, code string) bool {
	offset := 0
	for {
		i := strings.Index(lower[offset:], code)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(code)
		if StartsWord(lower, start) && (len(code) >= minPrefixCodeLen || EndsWord(lower, end)) {
			return true
		}
		offset = start + 1
	}
}

// IsAcronym reports whether word is spelled out letter by letter when spoken
func IsAcronym(word string) bool {
	return Acronyms[strings.ToUpper(word)]
}
