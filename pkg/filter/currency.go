package filter

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formats the digits typed in a value field as Brazilian reais.
// Digits are read as cents ("123456" is R$ 1.234,56); any other character
// is dropped. Input without digits yields "".
func FormatBRL(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		if strings.ContainsRune(raw, '0') {
			digits = "0"
		} else {
			return ""
		}
	}
	cents, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ""
	}
	return "R$ " + brl.Sprintf("%d", cents/100) + "," + leftPad2(cents%100)
}

func leftPad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
