package lexical

import (
	"regexp"
	"strings"
)

// ComplianceIssue is one CAN-SPAM style finding.
type ComplianceIssue struct {
	Type     string   `json:"type"` // missing_unsubscribe | missing_address | misleading
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ComplianceResult reports opt-out and sender-identification findings.
type ComplianceResult struct {
	Issues           []ComplianceIssue `json:"issues"`
	HasUnsubscribe   bool              `json:"hasUnsubscribe"`
	HasPostalAddress bool              `json:"hasPostalAddress"`
}

// streetAddressPattern matches a numbered street line, e.g. "123 Main St".
var streetAddressPattern = regexp.MustCompile(`(?i)\b\d{1,6}\s+\w+(\s\w+)?\s+(street|st\.?|avenue|ave\.?|road|rd\.?|boulevard|blvd\.?|drive|dr\.?|lane|ln\.?|suite|ste\.?|floor|way)\b`)

// CheckCompliance flags missing unsubscribe language, a missing postal
// address, and a "Re:" subject on a message that is not actually a reply.
func CheckCompliance(subject, body string) ComplianceResult {
	res := ComplianceResult{Issues: []ComplianceIssue{}}
	lowerBody := strings.ToLower(body)

	for _, p := range unsubscribePhrases {
		if strings.Contains(lowerBody, p) {
			res.HasUnsubscribe = true
			break
		}
	}
	if !res.HasUnsubscribe {
		res.Issues = append(res.Issues, ComplianceIssue{
			Type:     "missing_unsubscribe",
			Severity: SeverityHigh,
			Message:  "No unsubscribe or opt-out language found",
		})
	}

	res.HasPostalAddress = streetAddressPattern.MatchString(body)
	if !res.HasPostalAddress {
		res.Issues = append(res.Issues, ComplianceIssue{
			Type:     "missing_address",
			Severity: SeverityMedium,
			Message:  "No physical mailing address found",
		})
	}

	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(subject)), "re:") {
		if ctx := DetectThreadContext(subject, body); !ctx.IsReply {
			res.Issues = append(res.Issues, ComplianceIssue{
				Type:     "misleading",
				Severity: SeverityMedium,
				Message:  `Subject uses "Re:" but the message is not a reply`,
			})
		}
	}

	return res
}
