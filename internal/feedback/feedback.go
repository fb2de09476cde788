// Package feedback renders the tiered Portuguese feedback text for a set of competency scores.
package feedback

import (
	"fmt"
	"strings"

	"github.com/jonathan/essay-grader/internal/types"
)

const header = "Análise da redação com base nas competências do ENEM:\n\n"

// Band thresholds. A score below thresholds[i] falls in band i; otherwise the last band.
var (
	competencyThresholds = [3]int{80, 120, 160}
	overallThresholds    = [3]int{500, 700, 900}
)

var competencyTemplates = [5][4]string{
	{
		"Demonstra domínio precário da modalidade escrita formal da língua portuguesa, com muitos desvios gramaticais e de convenções da escrita.",
		"Demonstra domínio mediano da modalidade escrita formal da língua portuguesa, com alguns desvios gramaticais e de convenções da escrita.",
		"Demonstra bom domínio da modalidade escrita formal da língua portuguesa, com poucos desvios gramaticais e de convenções da escrita.",
		"Demonstra excelente domínio da modalidade escrita formal da língua portuguesa, com pouquíssimos desvios gramaticais e de convenções da escrita.",
	},
	{
		"Desenvolve o tema recorrendo à cópia de trechos dos textos motivadores ou apresenta domínio insuficiente do texto dissertativo-argumentativo.",
		"Desenvolve o tema por meio de argumentação previsível e apresenta domínio mediano do texto dissertativo-argumentativo.",
		"Desenvolve o tema por meio de argumentação consistente e apresenta bom domínio do texto dissertativo-argumentativo.",
		"Desenvolve o tema por meio de argumentação consistente e apresenta excelente domínio do texto dissertativo-argumentativo.",
	},
	{
		"Apresenta informações, fatos e opiniões relacionados ao tema, mas desorganizados ou contraditórios.",
		"Apresenta informações, fatos e opiniões relacionados ao tema, mas limitados aos argumentos dos textos motivadores.",
		"Apresenta informações, fatos e opiniões relacionados ao tema, de forma organizada, com indícios de autoria.",
		"Apresenta informações, fatos e opiniões relacionados ao tema propostos, de forma consistente e organizada, configurando autoria.",
	},
	{
		"Articula as partes do texto de forma precária, com muitas inadequações, e apresenta repertório limitado de recursos coesivos.",
		"Articula as partes do texto com algumas inadequações e apresenta repertório pouco diversificado de recursos coesivos.",
		"Articula as partes do texto, com poucas inadequações, e apresenta repertório diversificado de recursos coesivos.",
		"Articula as partes do texto de maneira coesa e apresenta repertório diversificado de recursos coesivos.",
	},
	{
		"Apresenta proposta de intervenção vaga, precária ou relacionada apenas ao tema.",
		"Apresenta proposta de intervenção relacionada ao tema, mas pouco articulada com a discussão desenvolvida no texto.",
		"Apresenta proposta de intervenção relacionada ao tema e articulada à discussão desenvolvida no texto.",
		"Apresenta proposta de intervenção relacionada ao tema, bem articulada com a discussão desenvolvida no texto e bem detalhada.",
	},
}

var overallTemplates = [4]string{
	"No geral, sua redação apresenta muitos pontos a melhorar. Recomenda-se revisar os aspectos gramaticais e a estrutura argumentativa.",
	"No geral, sua redação está na média, mas pode melhorar em diversos aspectos. Trabalhe na coesão e na qualidade dos argumentos.",
	"No geral, sua redação está bem desenvolvida, mas ainda há espaço para aprimoramento, especialmente na proposta de intervenção.",
	"No geral, sua redação está muito bem desenvolvida, com boa estrutura argumentativa e poucos desvios gramaticais.",
}

// Tier returns the band (0-3) of a competency score.
func Tier(score int) int {
	return band(score, competencyThresholds)
}

// OverallTier returns the band (0-3) of a total score.
func OverallTier(total int) int {
	return band(total, overallThresholds)
}

func band(v int, thresholds [3]int) int {
	for i, limit := range thresholds {
		if v < limit {
			return i
		}
	}
	return len(thresholds)
}

// Sentence returns the template sentence for a competency (1-5) and score.
func Sentence(competency, score int) string {
	if competency < 1 || competency > len(competencyTemplates) {
		return ""
	}
	return competencyTemplates[competency-1][Tier(score)]
}

// Generate composes the feedback text. The output depends only on scores.
func Generate(scores types.CompetencyScores) string {
	var sb strings.Builder
	sb.WriteString(header)
	for i, score := range scores.Values() {
		fmt.Fprintf(&sb, "Competência %d (%d/200): %s\n\n", i+1, score, Sentence(i+1, score))
	}

	total := scores.Total()
	fmt.Fprintf(&sb, "Total: %d/1000 pontos.\n\n", total)
	sb.WriteString(overallTemplates[OverallTier(total)])
	return sb.String()
}
