// Package lexicon holds the fixed word lists used by the essay analysis.
package lexicon

// Category is the rhetorical role of a connective. Categories are informational;
// they are not scored separately.
type Category string

// Connective categories.
const (
	Additive     Category = "aditivo"
	Adversative  Category = "adversativo"
	Causal       Category = "causal"
	Conclusive   Category = "conclusivo"
	Explanatory  Category = "explicativo"
	Temporal     Category = "temporal"
	Conformative Category = "conformativo"
	Comparative  Category = "comparativo"
	Concessive   Category = "concessivo"
	Final        Category = "final"
)

// CorrelativeSeparator splits a correlative connective such as "não só... mas também"
// into its two halves.
const CorrelativeSeparator = "..."

// Entry is one connective phrase in the lexicon.
type Entry struct {
	Phrase   string
	Category Category
}

// connectiveGroups lists the phrases per category. A phrase present in more than one
// category (e.g. "como", "posto que") is counted once per listing.
var connectiveGroups = []struct {
	category Category
	phrases  []string
}{
	{Additive, []string{
		"além disso", "ademais", "também", "além do mais", "ainda", "e",
		"não só... mas também", "tanto... quanto", "não apenas... como também",
		"inclusive", "até mesmo", "igualmente", "do mesmo modo", "bem como",
	}},
	{Adversative, []string{
		"mas", "porém", "todavia", "contudo", "entretanto", "no entanto",
		"apesar de", "embora", "ainda que", "mesmo que", "posto que",
		"conquanto", "se bem que", "não obstante", "por outro lado",
	}},
	{Causal, []string{
		"porque", "pois", "já que", "uma vez que", "visto que", "devido a",
		"por causa de", "como", "sendo assim", "dado que", "considerando que",
		"tendo em vista que", "em virtude de", "haja vista", "posto que",
	}},
	{Conclusive, []string{
		"portanto", "logo", "por conseguinte", "por isso", "assim", "dessa forma",
		"desse modo", "então", "em conclusão", "consequentemente", "destarte",
		"em suma", "diante do exposto", "sendo assim", "por fim", "enfim",
	}},
	{Explanatory, []string{
		"ou seja", "isto é", "a saber", "em outras palavras", "quer dizer",
		"por exemplo", "vale ressaltar", "vale lembrar", "em especial",
		"assim", "com efeito", "naturalmente", "cabe destacar",
	}},
	{Temporal, []string{
		"quando", "enquanto", "antes que", "depois que", "logo que", "desde que",
		"até que", "sempre que", "assim que", "à medida que", "ao passo que",
		"no momento em que", "concomitantemente", "simultaneamente",
	}},
	{Conformative, []string{
		"conforme", "segundo", "consoante", "de acordo com", "como",
		"em conformidade com", "em consonância com", "em harmonia com",
	}},
	{Comparative, []string{
		"mais que", "menos que", "como", "assim como", "tal qual", "tanto quanto",
		"do mesmo modo que", "da mesma maneira que", "à semelhança de",
	}},
	{Concessive, []string{
		"embora", "apesar de", "mesmo que", "ainda que", "se bem que", "posto que",
		"conquanto", "não obstante", "malgrado", "em que pese", "por mais que",
	}},
	{Final, []string{
		"para que", "a fim de que", "com o intuito de", "com o propósito de",
		"para", "a fim de", "com o objetivo de", "visando a", "de modo a",
		"com vistas a", "objetivando", "intencionando", "tencionando",
	}},
}

var connectives = buildConnectives()

func buildConnectives() []Entry {
	var entries []Entry
	for _, g := range connectiveGroups {
		for _, p := range g.phrases {
			entries = append(entries, Entry{Phrase: p, Category: g.category})
		}
	}
	return entries
}

// Connectives returns a copy of the lexicon in declaration order, duplicates included.
func Connectives() []Entry {
	out := make([]Entry, len(connectives))
	copy(out, connectives)
	return out
}

// Categories returns the connective categories in declaration order.
func Categories() []Category {
	out := make([]Category, 0, len(connectiveGroups))
	for _, g := range connectiveGroups {
		out = append(out, g.category)
	}
	return out
}
