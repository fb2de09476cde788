package nlp

var determiners = []string{
	"o", "a", "os", "as", "um", "uma", "uns", "umas",
	"este", "esta", "estes", "estas", "esse", "essa", "esses", "essas",
	"aquele", "aquela", "aqueles", "aquelas", "isto", "isso", "aquilo",
	"meu", "minha", "meus", "minhas", "seu", "sua", "seus", "suas",
	"nosso", "nossa", "nossos", "nossas", "todo", "toda", "todos", "todas",
	"cada", "algum", "alguma", "alguns", "algumas", "nenhum", "nenhuma",
	"muito", "muita", "muitos", "muitas", "pouco", "pouca", "poucos", "poucas",
	"outro", "outra", "outros", "outras", "tal", "tais",
}

var adpositions = []string{
	"de", "da", "do", "das", "dos", "em", "na", "no", "nas", "nos",
	"por", "pela", "pelo", "pelas", "pelos", "para", "pra", "com", "sem",
	"sob", "sobre", "entre", "até", "após", "ante", "perante", "contra",
	"desde", "ao", "aos", "à", "às", "num", "numa", "dum", "duma",
	"neste", "nesta", "nesse", "nessa", "naquele", "naquela",
	"deste", "desta", "desse", "dessa", "daquele", "daquela",
}

var pronouns = []string{
	"eu", "tu", "ele", "ela", "nós", "vós", "eles", "elas", "você", "vocês",
	"me", "te", "se", "lhe", "lhes", "nos", "vos", "mim", "ti", "si",
	"quem", "qual", "quais", "cujo", "cuja", "cujos", "cujas", "onde",
	"algo", "alguém", "ninguém", "nada", "tudo",
}

var adverbs = []string{
	"não", "sim", "já", "ainda", "sempre", "nunca", "jamais", "também",
	"mais", "menos", "bem", "mal", "muito", "pouco", "aqui", "ali", "lá",
	"hoje", "ontem", "amanhã", "agora", "depois", "antes", "talvez", "apenas",
	"somente", "só", "quase", "tão", "assim", "então",
}

var coordinatingConjunctions = []string{
	"e", "mas", "ou", "nem", "porém", "contudo", "todavia", "entretanto",
	"portanto", "senão", "ora",
}

var subordinatingConjunctions = []string{
	"que", "porque", "pois", "embora", "quando", "enquanto", "conforme",
	"porquanto", "conquanto", "como", "consoante",
}

var adjectiveLexicon = []string{
	"bom", "boa", "bons", "boas", "mau", "má", "maus", "más",
	"grande", "grandes", "pequeno", "pequena", "pequenos", "pequenas",
	"novo", "nova", "novos", "novas", "velho", "velha", "velhos", "velhas",
	"importante", "importantes", "fundamental", "fundamentais",
	"necessário", "necessária", "necessários", "necessárias",
	"essencial", "essenciais", "social", "sociais", "atual", "atuais",
	"público", "pública", "públicos", "públicas",
	"brasileiro", "brasileira", "brasileiros", "brasileiras",
	"difícil", "difíceis", "fácil", "fáceis", "possível", "possíveis",
	"impossível", "impossíveis", "melhor", "melhores", "pior", "piores",
	"principal", "principais", "grave", "graves", "alto", "alta", "altos", "altas",
	"baixo", "baixa", "baixos", "baixas", "forte", "fortes", "fraco", "fraca",
	"rico", "rica", "ricos", "ricas", "pobre", "pobres", "ótimo", "ótima",
	"péssimo", "péssima", "justo", "justa", "injusto", "injusta",
	"eficaz", "eficazes", "eficiente", "eficientes", "digno", "digna",
	"contemporâneo", "contemporânea", "sério", "séria", "amplo", "ampla",
	"urgente", "urgentes", "claro", "clara", "real", "reais", "igual", "iguais",
	"desigual", "desiguais", "nacional", "nacionais", "mundial", "mundiais",
	"cultural", "culturais", "ambiental", "ambientais", "digital", "digitais",
	"azul", "verde", "vermelho", "branco", "preto",
}

var adjectiveSuffixes = []string{
	"oso", "osa", "osos", "osas",
	"ável", "áveis", "ível", "íveis",
	"ivo", "iva", "ivos", "ivas",
	"ico", "ica", "icos", "icas",
}

var gazetteer = []string{
	"brasil", "brasília", "amazônia", "nordeste", "onu", "unesco", "unicef",
	"oms", "ibge", "ipea", "stf", "enem", "mec", "sus",
	"platão", "aristóteles", "sócrates", "kant", "nietzsche", "sartre",
	"foucault", "marx", "hegel", "rousseau", "descartes", "bauman", "darwin",
	"einstein", "freud", "durkheim", "weber", "hobbes", "locke",
	"constituição", "drummond", "machado", "clarice",
}
