package dart

import "strings"

// ownershipReportTitles are the known title variants of the executive /
// major-shareholder specific-security ownership status report. The same
// report appears with different middle-dot and spacing conventions across
// filers, so membership is substring containment, never equality. The
// alphabet is Hangul; matching is exact text with no case folding.
var ownershipReportTitles = []string{
	"임원ㆍ주요주주특정증권등소유상황보고서",
	"임원·주요주주특정증권등소유상황보고서",
	"임원특정증권등소유상황보고서",
	"주요주주특정증권등소유상황보고서",
}

// IsOwnershipReport reports whether a listing entry's report name is a
// qualifying ownership status report.
func IsOwnershipReport(reportName string) bool {
	for _, title := range ownershipReportTitles {
		if strings.Contains(reportName, title) {
			return true
		}
	}
	return false
}
