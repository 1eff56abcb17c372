package extract

import (
	"path/filepath"
	"regexp"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

// InvitationExtractor handles "Invitation to Bid" letters: contract header
// fields, availability/completion dates, MBE/WBE participation goals and the
// bid-opening timestamp.
type InvitationExtractor struct{}

var (
	invWBSElement = []*regexp.Regexp{
		regexp.MustCompile(`(?i)WBS Element:\s*([^\n]+)`),
		regexp.MustCompile(`(?i)WBS\s*Element\s*:?\s*([^\n]+)`),
	}
	invCounties = []*regexp.Regexp{
		regexp.MustCompile(`(?i)in\s+([A-Za-z,\s&]+)\s+Count(?:y|ies)`),
		regexp.MustCompile(`(?i)County:\s*([^\n]+)`),
	}
	invDescription = []*regexp.Regexp{
		regexp.MustCompile(`(?i)DA\d{5}\s*[–-]\s*([^\n]+(?:\n[^\n]+)?)`),
		regexp.MustCompile(`(?i)Description:\s*([^\n]+)`),
	}
	invDateAvailable = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Date of Availability[^\n]*?is\s+([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
	}
	invCompletionDate = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Completion Date[^\n]*?is\s+([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
	}
	invMBEGoal = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Minority Business Enterprise Goal\s*=\s*(\d+\.?\d*)%?`),
		regexp.MustCompile(`(?i)MBE Goal\s*=\s*(\d+\.?\d*)%?`),
	}
	invWBEGoal = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Women Business Enterprise Goal\s*=\s*(\d+\.?\d*)%?`),
		regexp.MustCompile(`(?i)WBE Goal\s*=\s*(\d+\.?\d*)%?`),
	}
	invCombinedGoal = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Combined MBE/WBE Goal\s*=\s*(\d+\.?\d*)%?`),
	}
	invBidOpening = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Bid Opening will be at\s+(\d{1,2}:\d{2}\s*[ap]m)\s+on\s+[A-Za-z]+day\s+([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
		regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*[AP]M)\s+([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
	}
)

func (e *InvitationExtractor) DocumentType() constants.DocumentType { return constants.InvitationToBid }
func (e *InvitationExtractor) Name() string                         { return "invitation-regex" }

func (e *InvitationExtractor) Extract(doc Document) (*entity.Record, Stats) {
	text := doc.Text
	c := entity.Contract{
		ContractNumber: extractContractNumber(text, filepath.Base(doc.Path)),
		WBSElement:     matchFirst(text, invWBSElement),
		Counties:       matchFirst(text, invCounties),
		Description:    cleanDescription(matchFirst(text, invDescription)),
		MBEGoal:        parseAmount(matchFirst(text, invMBEGoal)),
		WBEGoal:        parseAmount(matchFirst(text, invWBEGoal)),
		CombinedGoal:   parseAmount(matchFirst(text, invCombinedGoal)),
		SourceFilePath: doc.Path,
	}
	c.DateAvailable = parseDate(matchFirst(text, invDateAvailable))
	c.CompletionDate = parseDate(matchFirst(text, invCompletionDate))

	for _, p := range invBidOpening {
		if m := p.FindStringSubmatch(text); m != nil {
			if ts := parseDateTime(m[2], m[1]); ts != nil {
				c.BidOpeningDate = ts
				break
			}
		}
	}

	var stats Stats
	stats.countField(c.ContractNumber != "")
	stats.countField(c.WBSElement != "")
	stats.countField(c.Counties != "")
	stats.countField(c.Description != "")
	stats.countField(c.DateAvailable != nil)
	stats.countField(c.CompletionDate != nil)
	stats.countField(c.MBEGoal != nil)
	stats.countField(c.WBEGoal != nil)
	stats.countField(c.CombinedGoal != nil)
	stats.countField(c.BidOpeningDate != nil)

	return &entity.Record{Contract: c}, stats
}
