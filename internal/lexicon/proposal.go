package lexicon

// proposalKeywords signal an intervention proposal in the closing paragraph.
// They are matched as plain substrings, so "medida" also matches "medidas".
var proposalKeywords = []string{
	"proposta",
	"solução",
	"medida",
	"resolver",
	"implementar",
	"desenvolver",
	"criar",
	"estabelecer",
}

// ProposalKeywords returns the intervention-proposal keywords in match order.
func ProposalKeywords() []string {
	out := make([]string, len(proposalKeywords))
	copy(out, proposalKeywords)
	return out
}
