package currency

import "sort"

// Default is the home display currency until the user picks another one.
const Default = "INR"

// symbols maps every supported code to its display symbol. Codes without a
// common glyph render as the code itself.
var symbols = map[string]string{
	"USD": "$", "EUR": "€", "GBP": "£", "JPY": "¥", "INR": "₹",
	"AED": "د.إ", "AFN": "؋", "ALL": "L", "AMD": "֏", "ANG": "ƒ",
	"AOA": "Kz", "ARS": "$", "AUD": "A$", "AWG": "ƒ", "AZN": "₼",
	"BAM": "KM", "BBD": "$", "BDT": "৳", "BGN": "лв", "BHD": ".د.ب",
	"BIF": "FBu", "BMD": "$", "BND": "$", "BOB": "Bs.", "BRL": "R$",
	"BSD": "$", "BTN": "Nu.", "BWP": "P", "BYN": "Br", "BZD": "BZ$",
	"CAD": "C$", "CDF": "FC", "CHF": "CHF", "CLP": "$", "CNY": "¥",
	"COP": "$", "CRC": "₡", "CUP": "$", "CVE": "$", "CZK": "Kč",
	"DJF": "Fdj", "DKK": "kr", "DOP": "RD$", "DZD": "دج", "EGP": "E£",
	"ERN": "Nfk", "ETB": "Br", "FJD": "FJ$", "FKP": "£", "FOK": "kr",
	"GEL": "₾", "GGP": "£", "GHS": "₵", "GIP": "£", "GMD": "D",
	"GNF": "FG", "GTQ": "Q", "GYD": "$", "HKD": "HK$", "HNL": "L",
	"HRK": "kn", "HTG": "G", "HUF": "Ft", "IDR": "Rp", "ILS": "₪",
	"IMP": "£", "IQD": "ع.د", "IRR": "﷼", "ISK": "kr", "JEP": "£",
	"JMD": "J$", "JOD": "د.ا", "KES": "KSh", "KGS": "лв", "KHR": "៛",
	"KMF": "CF", "KRW": "₩", "KWD": "د.ك", "KYD": "$", "KZT": "₸",
	"LAK": "₭", "LBP": "ل.ل", "LKR": "₨", "LRD": "$", "LSL": "L",
	"LYD": "ل.د", "MAD": "د.م.", "MDL": "L", "MGA": "Ar", "MKD": "ден",
	"MMK": "K", "MNT": "₮", "MOP": "MOP$", "MRU": "UM", "MUR": "₨",
	"MVR": "Rf", "MWK": "MK", "MXN": "$", "MYR": "RM", "MZN": "MT",
	"NAD": "$", "NGN": "₦", "NIO": "C$", "NOK": "kr", "NPR": "₨",
	"NZD": "NZ$", "OMR": "ر.ع.", "PAB": "B/.", "PEN": "S/", "PGK": "K",
	"PHP": "₱", "PKR": "₨", "PLN": "zł", "PYG": "₲", "QAR": "ر.ق",
	"RON": "lei", "RSD": "дин", "RUB": "₽", "RWF": "FRw", "SAR": "﷼",
	"SBD": "$", "SCR": "₨", "SDG": "ج.س.", "SEK": "kr", "SGD": "S$",
	"SHP": "£", "SLE": "Le", "SLL": "Le", "SOS": "S", "SRD": "$",
	"SSP": "£", "STN": "Db", "SYP": "£", "SZL": "L", "THB": "฿",
	"TJS": "SM", "TMT": "m", "TND": "د.ت", "TOP": "T$", "TRY": "₺",
	"TTD": "TT$", "TWD": "NT$", "TZS": "TSh", "UAH": "₴", "UGX": "USh",
	"UYU": "$U", "UZS": "so'm", "VES": "Bs.", "VND": "₫", "VUV": "VT",
	"WST": "WS$", "XAF": "FCFA", "XCD": "$", "XOF": "CFA", "XPF": "₣",
	"YER": "﷼", "ZAR": "R", "ZMW": "ZK", "ZWL": "$",
}

func Supported(code string) bool {
	_, ok := symbols[code]
	return ok
}

func Symbol(code string) string {
	if sym, ok := symbols[code]; ok {
		return sym
	}
	return code
}

// Codes returns the supported currency set in stable alphabetical order.
func Codes() []string {
	codes := make([]string, 0, len(symbols))
	for code := range symbols {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
