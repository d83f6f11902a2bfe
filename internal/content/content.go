package content

import "trivia-night/internal/domain"

// Avatars offered on the profile screen.
var Avatars = []string{"🧕", "🧔‍♂️", "👳‍♀️", "👨‍🦰"}

// OptionStyle decorates an answer slot.
type OptionStyle struct {
	Color string
	Shape string
}

// OptionStyles is indexed by answer slot.
var OptionStyles = []OptionStyle{
	{Color: "#DC2626", Shape: "▲"},
	{Color: "#2563EB", Shape: "◆"},
	{Color: "#EAB308", Shape: "●"},
	{Color: "#16A34A", Shape: "■"},
}

const defaultPoints = 1000

// Catalog returns a fresh copy of the built-in packs and seed bots.
func Catalog() domain.Catalog {
	return domain.Catalog{
		Packs: packs(),
		Bots: []domain.BotSeed{
			{Name: "Salah", Avatar: Avatars[1]},
			{Name: "Fatima", Avatar: Avatars[0]},
		},
	}
}

func q(text string, correct int, options ...string) domain.Question {
	return domain.Question{
		Text:               text,
		Options:            options,
		CorrectAnswerIndex: correct,
		Points:             defaultPoints,
	}
}

func packs() []domain.Pack {
	return []domain.Pack{
		{
			ID:          "seerah",
			Title:       "Seerah Basics",
			Description: "Test your knowledge on the life of Prophet Muhammad (ﷺ).",
			Color:       "#2563EB",
			Questions: []domain.Question{
				q("What was the name of the Prophet Muhammad's (ﷺ) mother?", 2,
					"Fatimah", "Khadijah", "Aminah", "Aisha"),
				q("In which cave did the Prophet Muhammad (ﷺ) receive the first revelation?", 1,
					"Cave of Thawr", "Cave of Hira", "Cave of Uhud", "Cave of Badr"),
				q("What is the name of the journey the Prophet (ﷺ) took from Makkah to Jerusalem in one night?", 3,
					"Hijrah", "Hajj", "Mi'raj", "Isra'"),
				q("Who was the first Caliph after the Prophet's (ﷺ) death?", 3,
					"Umar ibn Al-Khattab", "Ali ibn Abi Talib", "Uthman ibn Affan", "Abu Bakr As-Siddiq"),
			},
		},
		{
			ID:          "pillars",
			Title:       "Pillars of Islam",
			Description: "How well do you know the five fundamental pillars of Islam?",
			Color:       "#16A34A",
			Questions: []domain.Question{
				q("What is the first Pillar of Islam?", 1,
					"Salat (Prayer)", "Shahadah (Faith)", "Zakat (Charity)", "Sawm (Fasting)"),
				q("How many times a day are Muslims required to perform Salat (prayer)?", 2,
					"3", "4", "5", "6"),
				q("In which month do Muslims perform Sawm (fasting)?", 3,
					"Shawwal", "Dhul Hijjah", "Rajab", "Ramadan"),
			},
		},
		{
			ID:          "ramadan",
			Title:       "Ramadan Facts",
			Description: "Questions about the blessed month of Ramadan.",
			Color:       "#CA8A04",
			Questions: []domain.Question{
				q("What is the meal eaten before dawn during Ramadan called?", 1,
					"Iftar", "Suhoor", "Tarawih", "Eid"),
				q("What is the night better than a thousand months in Ramadan?", 0,
					"Laylat al-Qadr", "Laylat al-Isra", "Laylat al-Miraj", "Laylat al-Bara'at"),
				q("What is the charity given at the end of Ramadan called?", 2,
					"Zakat al-Mal", "Sadaqah", "Zakat al-Fitr", "Waqf"),
			},
		},
		{
			ID:          "hajj",
			Title:       "The Hajj",
			Description: "Learn about the pilgrimage to Makkah.",
			Color:       "#6B7280",
			Questions: []domain.Question{
				q("In which city is the Kaaba located, the focal point of Hajj?", 2,
					"Madinah", "Jerusalem", "Makkah", "Jeddah"),
				q("What is the act of walking seven times between the hills of Safa and Marwah called?", 1,
					"Tawaf", "Sa'i", "Rami", "Wuquf"),
				q("On which day of Dhul Hijjah is the Day of Arafat?", 1,
					"8th", "9th", "10th", "1st"),
			},
		},
		{
			ID:          "prayer",
			Title:       "Prayer (Salat)",
			Description: "Essentials of the second pillar of Islam.",
			Color:       "#9333EA",
			Questions: []domain.Question{
				q("What is the direction Muslims face during prayer?", 0,
					"Qibla", "Kaaba", "East", "West"),
				q("How many Rak'at (units) are in the Fajr prayer?", 0,
					"2", "3", "4", "1"),
				q("What is the congregational prayer on Friday called?", 1,
					"Eid Salah", "Jumu'ah", "Tarawih", "Witr"),
			},
		},
		{
			ID:          "hadith",
			Title:       "Hadith Sciences",
			Description: "Explore the sayings and traditions of the Prophet (ﷺ).",
			Color:       "#DB2777",
			Questions: []domain.Question{
				q("Which of these is one of the two most authentic collections of Hadith?", 0,
					"Sahih Muslim", "Sunan Abu Dawood", "Musnad Ahmad", "Muwatta Malik"),
				q("The chain of narrators of a hadith is called the...?", 1,
					"Matn", "Isnad", "Riwayah", "Sanad"),
				q("A hadith reported by a huge number of narrators at each stage is called?", 2,
					"Ahad", "Mashhur", "Mutawatir", "Gharib"),
			},
		},
		{
			ID:          "fiqh",
			Title:       "Fiqh Essentials",
			Description: "Learn about Islamic jurisprudence.",
			Color:       "#0D9488",
			Questions: []domain.Question{
				q("What does 'Fiqh' literally mean in Arabic?", 2,
					"Law", "Path", "Understanding", "Tradition"),
				q("Which of these is NOT one of the four main Sunni schools of Fiqh?", 3,
					"Hanafi", "Maliki", "Shafi'i", "Ja'fari"),
				q("The state of ritual purity required for prayer is called...?", 3,
					"Wudu", "Ghusl", "Tayammum", "Tahara"),
			},
		},
	}
}
