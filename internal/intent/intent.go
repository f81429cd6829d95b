// Package intent turns free-form chat text into a structured engine request:
// a topic plus whatever numeric parameters the message yields to regex
// extraction. Classification is keyword-based and deterministic; anything
// unrecognized falls through to the general topic.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Sarvajith2007/FINBOT/internal/advisor"
)

var (
	dollarRegex      = regexp.MustCompile(`\$\s*(\d+(?:,\d{3})*(?:\.\d+)?)\s*(k)?`)
	suffixedRegex    = regexp.MustCompile(`\b(\d+(?:,\d{3})*(?:\.\d+)?)(k)\b`)
	bareNumberRegex  = regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d+)?`)
	percentRegex     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:%|percent)`)
	yearsRegex       = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:years?|yrs?)\b`)
	monthlyRegex     = regexp.MustCompile(`\$?\s*(\d+(?:,\d{3})*(?:\.\d+)?)\s*(?:a month|per month|monthly|/month|/mo)`)
	downAmountRegex  = regexp.MustCompile(`\$?\s*(\d+(?:,\d{3})*(?:\.\d+)?)(k)?\s*down`)
	downPercentRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:%|percent)\s*down`)
)

// Classify maps a message to the engine topic its keywords name. The scan
// order resolves overlaps: retirement before investment, calculations before
// budget, so "invest for retirement" plans retirement and "budget for a
// mortgage" runs the calculator.
func Classify(message string) advisor.Topic {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, "retire", "401k", "401(k)", "ira", "pension"):
		return advisor.TopicRetirement
	case containsAny(lower, "mortgage", "loan", "amortiz", "compound", "calculate", "interest on", "project"):
		return advisor.TopicCalculator
	case containsAny(lower, "invest", "portfolio", "stock", "bond", "rebalanc", "asset"):
		return advisor.TopicInvestment
	case containsAny(lower, "budget", "expense", "spending", "spend", "50/30/20"):
		return advisor.TopicBudget
	default:
		return advisor.TopicGeneral
	}
}

// Parse classifies a message and extracts the parameters the resulting topic
// can use. Missing parameters stay zero; the modules downstream reject what
// they cannot work with.
func Parse(message string) (advisor.Topic, advisor.Params) {
	topic := Classify(message)
	lower := strings.ToLower(message)

	var params advisor.Params
	switch topic {
	case advisor.TopicCalculator:
		params = parseCalculatorParams(lower)
	case advisor.TopicInvestment:
		params.DriftThreshold = parsePercent(lower)
	case advisor.TopicGeneral:
		params.Question = message
	}

	return topic, params
}

func parseCalculatorParams(lower string) advisor.Params {
	params := advisor.Params{
		Calculation:         parseCalculationKind(lower),
		AnnualRatePct:       parsePercent(lower),
		MonthlyContribution: parseMonthly(lower),
	}

	years := parseYears(lower)
	amount := parseAmount(lower)

	switch params.Calculation {
	case advisor.CalcMortgage:
		params.HomePrice = amount
		params.TermYears = years
		params.PaymentsPerYear = 12
		if m := downAmountRegex.FindStringSubmatch(lower); len(m) > 1 {
			params.DownPayment = parseNumber(m[1], m[2] != "")
		} else if m := downPercentRegex.FindStringSubmatch(lower); len(m) > 1 {
			pct := parseNumber(m[1], false)
			params.DownPayment = amount * pct / 100
		}
	case advisor.CalcLoan:
		params.Principal = amount
		params.TermYears = years
		params.PaymentsPerYear = 12
	case advisor.CalcProjection:
		params.Principal = amount
		params.Years = years
	case advisor.CalcCompound:
		params.Principal = amount
		params.Years = years
		params.CompoundsPerYear = 12
	}

	return params
}

// parseCalculationKind picks the calculator a message asks for. Mortgage and
// loan wording win over the generic interest keywords; a monthly contribution
// with no other signal reads as a projection.
func parseCalculationKind(lower string) advisor.CalculationKind {
	switch {
	case containsAny(lower, "mortgage", "house", "home"):
		return advisor.CalcMortgage
	case containsAny(lower, "loan", "amortiz", "car payment"):
		return advisor.CalcLoan
	case containsAny(lower, "compound", "interest"):
		return advisor.CalcCompound
	case containsAny(lower, "project", "contribut") || monthlyRegex.MatchString(lower):
		return advisor.CalcProjection
	default:
		return advisor.CalcCompound
	}
}

func parsePercent(text string) float64 {
	if m := percentRegex.FindStringSubmatch(text); len(m) > 1 {
		return parseNumber(m[1], false)
	}
	return 0
}

func parseYears(text string) float64 {
	if m := yearsRegex.FindStringSubmatch(text); len(m) > 1 {
		return parseNumber(m[1], false)
	}
	return 0
}

func parseMonthly(text string) float64 {
	if m := monthlyRegex.FindStringSubmatch(text); len(m) > 1 {
		return parseNumber(m[1], false)
	}
	return 0
}

// parseAmount finds the headline money figure: a dollar sign or a k suffix
// wins; otherwise the first bare number left after stripping rates, terms,
// and monthly amounts out of the text.
func parseAmount(text string) float64 {
	if m := dollarRegex.FindStringSubmatch(text); len(m) > 1 {
		return parseNumber(m[1], m[2] != "")
	}
	if m := suffixedRegex.FindStringSubmatch(text); len(m) > 1 {
		return parseNumber(m[1], true)
	}

	stripped := percentRegex.ReplaceAllString(text, "")
	stripped = yearsRegex.ReplaceAllString(stripped, "")
	stripped = monthlyRegex.ReplaceAllString(stripped, "")
	if m := bareNumberRegex.FindString(stripped); m != "" {
		return parseNumber(m, false)
	}
	return 0
}

func parseNumber(value string, thousands bool) float64 {
	value = strings.ReplaceAll(value, ",", "")
	num, _ := strconv.ParseFloat(value, 64)
	if thousands {
		num *= 1000
	}
	return num
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
