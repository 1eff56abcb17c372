package extract

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

// AwardLetterExtractor handles "Notification of Award" letters: winner name,
// awarded amount and award date on top of the shared contract header fields.
type AwardLetterExtractor struct{}

var (
	awardCompany = []*regexp.Regexp{
		regexp.MustCompile(`(?is)(?:NOTIFICATION OF AWARD|Award Letter).*?\n\n.*?\n\n(.*?)\n`),
		regexp.MustCompile(`(?is)pleased to inform you that\s+(.*?)\s+has been awarded`),
		regexp.MustCompile(`(?is)Dear\s+Sir/\s*Madam:.*?inform you that\s+(.*?)\s+has been awarded`),
	}
	awardAmount = []*regexp.Regexp{
		regexp.MustCompile(`(?i)in the amount of\s+\$\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)amount of\s+\$\s*([\d,]+\.?\d*)`),
	}
	awardDate = []*regexp.Regexp{
		regexp.MustCompile(`(?im)NOTIFICATION OF AWARD\s+([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
		regexp.MustCompile(`(?im)Award Letter\s+([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
		regexp.MustCompile(`(?im)^([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
	}
	awardWBSElement = []*regexp.Regexp{
		regexp.MustCompile(`(?i)WBS\s+Element:\s+([^\n]+)`),
	}
	awardCounties = []*regexp.Regexp{
		regexp.MustCompile(`(?i)County:\s+([^\n]+)`),
	}
	awardDescription = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Description:\s+([^\n]+(?:\n[^\n]+)?)`),
	}
)

func (e *AwardLetterExtractor) DocumentType() constants.DocumentType { return constants.AwardLetter }
func (e *AwardLetterExtractor) Name() string                         { return "award-letter-regex" }

func (e *AwardLetterExtractor) Extract(doc Document) (*entity.Record, Stats) {
	text := doc.Text
	c := entity.Contract{
		ContractNumber: extractContractNumber(text, filepath.Base(doc.Path)),
		AwardedTo:      cleanCompanyName(matchFirst(text, awardCompany)),
		AwardedAmount:  parseAmount(matchFirst(text, awardAmount)),
		AwardDate:      parseDate(matchFirst(text, awardDate)),
		WBSElement:     matchFirst(text, awardWBSElement),
		Counties:       matchFirst(text, awardCounties),
		Description:    cleanDescription(matchFirst(text, awardDescription)),
		SourceFilePath: doc.Path,
	}

	var stats Stats
	stats.countField(c.ContractNumber != "")
	stats.countField(c.AwardedTo != "")
	stats.countField(c.AwardedAmount != nil)
	stats.countField(c.AwardDate != nil)
	stats.countField(c.WBSElement != "")
	stats.countField(c.Counties != "")
	stats.countField(c.Description != "")

	return &entity.Record{Contract: c}, stats
}

// cleanCompanyName flattens the matched block to the name line and drops any
// trailing mailing-address fragment.
func cleanCompanyName(s string) string {
	s = normalizeSpace(strings.ReplaceAll(s, "\n", " "))
	if i := strings.Index(s, "P.O. Box"); i >= 0 {
		s = s[:i]
	} else if i := strings.Index(s, "PO Box"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
