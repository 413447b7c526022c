package datagen

// 生成器的语料库：城市/街道、类别、标题与文案短语。
// 取值集合即管线独热编码的类别/城市空间，保持稳定。

var Categories = []string{
	"Sports", "Music", "Art", "Technology", "Food", "Health",
	"Education", "Networking", "Outdoors", "Entertainment",
}

var Cities = []string{
	"Athens", "Patras", "Thessaloniki", "Seattle", "Toronto", "Paris",
	"London", "Madrid", "Rome", "Berlin", "Amsterdam", "Sydney",
}

var CityStreets = map[string][]string{
	"Athens":       {"Sakkelariou", "Aigaiou", "Artakis", "Zografou", "Depasta", "Verras", "Byzantiou", "Kokkinopoulou", "Papagou", "Seleykeias"},
	"Patras":       {"Korinthou", "Kanari", "Saxtouri", "Lontou", "Skopa", "Lindou", "Souniou", "Leykas", "Aristotelous", "Pantokratoros"},
	"Thessaloniki": {"Kleanthous", "Papafi", "Byzantiou", "Tsimiski", "Katsimidi", "Marathonos", "Valtetsiou", "Kanari", "Apollonos", "Karakasi"},
	"Seattle":      {"South Portland Street", "53rd Avenue Northeast", "North 101st Street", "31st Avenue Southwest", "South Judkins Street", "Howell Place", "South Bateman Street", "West Blaine Street", "Post Alley", "9th Avenue West"},
	"Toronto":      {"Orphanage Mews", "Gardiner Expressway Collector", "Long Branch Loop", "Comrie Terrace", "Dog Pound", "Avondale Avenue", "Black Creek Boulevard", "Hove Street", "Grapevine Circle", "Wansey Road"},
	"Paris":        {"Voie E/8", "Esplanade André Chamson", "Accès Plateforme Logistique", "Rue Auguste Comte", "Chemin Baudin", "Villa Carnot", "Impasse des Deux Nèthes", "Rue de la Paix", "Rue Oberkampf", "Rue des Martyrs"},
	"London":       {"Victoria Embankment", "Northdene Gardens", "Rawson Street", "Chasemore Close", "Oakleigh Close", "Parkstone Avenue", "Agate Road", "Southbridge Place", "Oaks Road", "Kirkby Close"},
	"Madrid":       {"Calle Zubía", "Calle del Oboe", "Calle Benito Asenjo", "Calle Casanare", "Calle Puentecillo", "Callejón de la Luz", "Calle Hernández Rubín", "Calle Yeseros", "Calle de Josep Plá", "Calle de Aytona"},
	"Rome":         {"Via di Settebagni", "Via Cavalletti", "Via Mario De Dominicis", "Lungotevere Ripa", "Via dell'Aquilone", "Via Lorenzo Litta", "Via Castignano", "Via Vittorio Codeluppi", "Via Pietro Frattini", "Via Cesare Tallone"},
	"Berlin":       {"Heinz-Prillwitz-Weg", "Zernickstraße", "In der Halde", "Nagolder Pfad", "An der Brauerei", "Bollestraße", "Weilburgstraße", "Buchholzweg", "Daumstraße", "Kleinbauersweg"},
	"Amsterdam":    {"Kalverstraat", "Noordkaapstraat", "Cabralstraat", "Gabriela Mistralstraat", "Elementenstraat", "Ernest Staesstraat", "Vier Heemskinderenstraat", "Korte Water", "Nicolaas Witsenkade", "Nesserhoek"},
	"Sydney":       {"Brightmore Lane", "Hudson Avenue", "Medway Lane", "Dobson Street", "Zane Close", "Pippa's Pass", "Lowden Lane", "Boots Lane", "Iona Place", "Lister Avenue"},
}

var adjectives = []string{
	"Amazing", "Incredible", "Exciting", "Mystical", "Elegant", "Fancy", "Grand", "Classic",
	"Joyful", "Lively", "Magical", "Spectacular", "Vibrant", "Enchanting", "Glamorous", "Stunning",
}

var nouns = []string{
	"Gala", "Concert", "Festival", "Gathering", "Party", "Celebration", "Soiree", "Event",
	"Bash", "Extravaganza", "Affair", "Reception", "Function", "Banquet", "Ball", "Jamboree",
}

var themes = []string{
	"Night", "Music", "Dance", "Magic", "Mystery", "Fantasy", "Dream", "Adventure",
	"Stars", "Elegance", "Rhythm", "Harmony", "Jubilee", "Serenade", "Odyssey", "Voyage",
}

var actionWords = []string{"Discover", "Experience", "Celebrate", "Enjoy", "Explore", "Unveil", "Embrace", "Uncover"}

var eventPhrases = []string{"the Magic of", "the Wonders of", "a Night of", "the Secrets of", "an Evening of", "the Joy of"}

var specialWords = []string{"Elegance", "Mystery", "Excitement", "Entertainment", "Enchantment", "Melody", "Harmony", "Delight"}

var introPhrases = []string{
	"Join us for an unforgettable experience at",
	"Don't miss out on the spectacular event featuring",
	"Get ready to be amazed by",
	"Experience the ultimate celebration of",
}

var mainContent = []string{
	"a lineup of world-class performances.",
	"an evening filled with exciting activities and entertainment.",
	"a magical journey through music, dance, and art.",
	"exclusive access to gourmet food and exquisite drinks.",
}

var closingStatements = []string{
	"Book your tickets now and be part of something extraordinary.",
	"Reserve your spot today and create unforgettable memories.",
	"This is a once-in-a-lifetime event you won't want to miss.",
	"Join us for a night of celebration, joy, and wonder.",
}

var overviewKeywords = []string{
	"Exciting", "Elegant", "Innovative", "Inspiring", "Festive", "Iconic",
	"Spectacular", "Creative", "Dynamic", "Thrilling",
}

var overviewPhrases = []string{
	"cultural extravaganza", "musical journey", "artistic display",
	"culinary adventure", "night of fun", "celebration of talent",
	"fusion of styles", "evening of wonders", "display of skills", "showcase of creativity",
}

var overviewSentences = []string{
	"Join us for this unforgettable experience.",
	"Be part of a journey that excites and inspires.",
	"Immerse yourself in an event like no other.",
	"Let your senses be captivated by our unique attractions.",
	"Witness a spectacle that will leave you spellbound.",
}
